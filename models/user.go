package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the professional who owns clients, procedures and appointments.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string

	ClinicName    string
	ClinicAddress string

	// Generic appointment length in minutes; used as the slot duration
	// fallback when booking_settings does not set one.
	AppointmentDuration int `gorm:"default:30"`

	// Raw booking policy blob (working days/hours, advance-notice bounds).
	// Validated into a scheduling.Policy before any slot arithmetic.
	BookingSettings JSONB `gorm:"type:jsonb;default:'{}'"`

	BookingEnabled bool   `gorm:"default:false"`
	BookingSlug    string `gorm:"uniqueIndex"`

	AppointmentReminders  bool `gorm:"default:true"`
	WhatsAppNotifications bool `gorm:"default:false"`
	SMSNotifications      bool `gorm:"default:false"`

	Clients      []Client      `gorm:"foreignKey:ProfessionalID"`
	Procedures   []Procedure   `gorm:"foreignKey:ProfessionalID"`
	Appointments []Appointment `gorm:"foreignKey:ProfessionalID"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Custom JSONB type for booking settings
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
