package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRequest stores a caller-supplied request body verbatim. The payload
// is an unvalidated JSON document; no shape is enforced on it.
type ServiceRequest struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Payload string `gorm:"type:text" json:"-"`
}

// TableName specifies the table name for the ServiceRequest model
func (ServiceRequest) TableName() string {
	return "service_requests"
}

// BeforeCreate assigns a generated id when none is set
func (r *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
