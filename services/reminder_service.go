// services/reminder_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/models"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders notifies every client with a scheduled appointment
// tomorrow, per professional.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var professionals []models.User
	if err := s.db.Find(&professionals, "is_active = ? AND appointment_reminders = ?", true, true).Error; err != nil {
		log.Printf("Failed to fetch professionals: %v", err)
		return
	}

	for _, professional := range professionals {
		s.ProcessProfessionalReminders(professional)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) ProcessProfessionalReminders(professional models.User) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	date := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())

	var appointments []models.Appointment
	err := s.db.Where("professional_id = ? AND date = ? AND status = ?",
		professional.ID, date, models.AppointmentScheduled).
		Preload("Client").Preload("Procedure").
		Order("time").
		Find(&appointments).Error
	if err != nil {
		log.Printf("Professional %s: Failed to get tomorrow's appointments: %v", professional.ID, err)
		return
	}
	if len(appointments) == 0 {
		return
	}

	// Get the active appointment template
	var template models.ReminderTemplate
	if err := s.db.Where("professional_id = ? AND type = ? AND is_active = true", professional.ID, "appointment").
		First(&template).Error; err != nil {
		log.Printf("Professional %s: No active appointment template: %v", professional.ID, err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Client == nil {
			continue
		}
		s.sendReminder(professional, template, appointment)
	}
}

func (s *ReminderService) sendReminder(professional models.User, template models.ReminderTemplate, appointment models.Appointment) {
	client := appointment.Client

	// Replace placeholders in the template
	message := strings.ReplaceAll(template.Message, "[ClientName]", client.Name)
	message = strings.ReplaceAll(message, "[Time]", appointment.Time)
	procedureName := ""
	if appointment.Procedure != nil {
		procedureName = appointment.Procedure.Name
	}
	message = strings.ReplaceAll(message, "[Procedure]", procedureName)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	to := client.Phone
	if professional.WhatsAppNotifications && client.WhatsApp != "" && strings.HasPrefix(client.WhatsApp, "+") {
		to = "whatsapp:" + client.WhatsApp
		channel = "whatsapp"
	} else if !professional.SMSNotifications {
		return
	}

	// Send message via Twilio
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", client.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", client.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", client.Phone)
	}

	// Log the reminder
	reminderLog := models.ReminderLog{
		ID:             uuid.New(),
		ProfessionalID: professional.ID,
		ClientID:       client.ID,
		AppointmentID:  appointment.ID,
		Message:        message,
		Status:         status,
		ErrorMessage:   errorMsg,
		Channel:        channel,
		SentAt:         time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for client %s: %v", client.ID, err)
	}
}
