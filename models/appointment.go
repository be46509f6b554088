package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Appointment occupies a single (professional, date, time) slot. The partial
// unique index is the authoritative double-booking guard: cancelled rows do
// not occupy the slot, so they are excluded from the constraint.
type Appointment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProfessionalID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_professional_slot,priority:1,where:status <> 'cancelled' AND deleted_at IS NULL" json:"professional_id"`
	ClientID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"client_id"`
	ProcedureID    *uuid.UUID `gorm:"type:uuid;index" json:"procedure_id,omitempty"`

	Date time.Time `gorm:"type:date;not null;index;uniqueIndex:idx_professional_slot,priority:2" json:"date"`
	Time string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_professional_slot,priority:3" json:"time"`

	Status        string  `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	PaymentStatus string  `gorm:"type:varchar(20);not null;default:'unpaid'" json:"payment_status"`
	Price         float64 `gorm:"type:decimal(10,2);default:0.0" json:"price"`
	Notes         string  `gorm:"type:text" json:"notes"`

	Client    *Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Procedure *Procedure `gorm:"foreignKey:ProcedureID" json:"procedure,omitempty"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// ValidStatusTransition reports whether the professional may move an
// appointment from one status to another. Terminal states stay terminal.
func ValidStatusTransition(from, to string) bool {
	if from != AppointmentScheduled {
		return false
	}
	switch to {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}
