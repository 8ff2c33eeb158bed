package models

// Technician represents a technician profile. Like User, the ID is the
// identity-provider subject id. JenisKeahlian is the skill category used
// as the equality-filter key for technician search.
type Technician struct {
	ID              string `gorm:"primaryKey" json:"id"`
	Nama            string `json:"nama"`
	Email           string `gorm:"not null" json:"email"`
	NoHandphone     string `json:"noHandphone"`
	Keahlian        string `json:"keahlian"`
	LinkSertifikasi string `json:"linkSertifikasi"`
	LinkPortofolio  string `json:"linkPortofolio"`
	JenisKeahlian   string `gorm:"index" json:"jenisKeahlian"`
	Role            string `gorm:"not null;default:'technician'" json:"role"`
}

// TableName specifies the table name for the Technician model
func (Technician) TableName() string {
	return "technicians"
}
