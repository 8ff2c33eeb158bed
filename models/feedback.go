package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback represents a feedback submission. Image holds the public download
// URL of the uploaded image, or the empty string when no image was supplied.
type Feedback struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Image   string `json:"image"`
	Message string `gorm:"type:text" json:"message"`
}

// TableName specifies the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedbacks"
}

// BeforeCreate assigns a generated id when none is set
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
