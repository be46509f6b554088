package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Procedure struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Description string
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Duration    int     // in minutes
	Category    string  `gorm:"default:'General'"`
	IsActive    bool    `gorm:"default:true"`

	Appointments []Appointment `gorm:"foreignKey:ProcedureID"`

	gorm.Model
}

func (p *Procedure) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
