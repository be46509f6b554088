package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_professional_phone,priority:1,where:deleted_at IS NULL"`

	Name     string `gorm:"not null"`
	Phone    string `gorm:"not null;uniqueIndex:idx_professional_phone,priority:2"`
	WhatsApp string
	Email    string
	Birthday *time.Time
	Notes    string

	// Set when a public booking is made by an authenticated end user,
	// linking the client record to that account.
	LinkedUserID *uuid.UUID `gorm:"type:uuid;index"`

	TotalVisits int        `gorm:"default:0"`
	LastVisit   *time.Time
	IsActive    bool `gorm:"default:true"`

	Appointments []Appointment `gorm:"foreignKey:ClientID"`

	gorm.Model
}

func (cl *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return
}
