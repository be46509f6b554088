package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderTemplate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null"`
	Type           string    `gorm:"type:varchar(20);not null"` // appointment
	Message        string    `gorm:"type:text;not null"`
	IsActive       bool      `gorm:"default:true"`
	gorm.Model
}
