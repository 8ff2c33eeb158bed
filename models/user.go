package models

// User represents an end-user profile. The ID is the subject id issued by
// the identity provider at registration; it is the join key between the
// auth account and this record.
type User struct {
	ID     string `gorm:"primaryKey" json:"id"`
	Email  string `gorm:"not null" json:"email"`
	Nama   string `json:"nama"`
	Alamat string `json:"alamat"`
	Role   string `gorm:"not null;default:'user'" json:"role"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
