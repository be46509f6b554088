// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/config"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/models"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/scheduling"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for a
// dashboard-created appointment
type CreateAppointmentInput struct {
	ClientID    string  `json:"clientId" binding:"required"`
	ProcedureID *string `json:"procedureId"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string  `json:"time" binding:"required"` // HH:MM
	Price       float64 `json:"price" binding:"min=0"`
	Notes       string  `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for updating
// an appointment
type UpdateAppointmentInput struct {
	ProcedureID   *string  `json:"procedureId"`
	Date          *string  `json:"date"`
	Time          *string  `json:"time"`
	Price         *float64 `json:"price"`
	PaymentStatus *string  `json:"paymentStatus" binding:"omitempty,oneof=unpaid paid"`
	Notes         *string  `json:"notes"`
}

type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled no_show"`
}

// CreateAppointment creates an appointment from the dashboard. The partial
// unique index on (professional, date, time) rejects a taken slot even when
// two requests race.
func CreateAppointment(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	clientUUID, err := uuid.Parse(input.ClientID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	slotTime, err := scheduling.NormalizeClock(input.Time)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	// The client must belong to this professional
	var client models.Client
	if err := config.DB.Where("professional_id = ? AND id = ?", professionalID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	appointment := models.Appointment{
		ProfessionalID: professionalID,
		ClientID:       clientUUID,
		Date:           date,
		Time:           slotTime,
		Status:         models.AppointmentScheduled,
		Price:          input.Price,
		Notes:          input.Notes,
	}

	if input.ProcedureID != nil {
		procedureUUID, err := uuid.Parse(*input.ProcedureID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
			return
		}
		appointment.ProcedureID = &procedureUUID
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "This time slot is already booked")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists appointments, optionally filtered by date range
// and status
func GetAppointments(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	query := config.DB.Where("professional_id = ?", professionalID).
		Preload("Client").Preload("Procedure")

	if from := c.Query("from"); from != "" {
		date, err := utils.ParseDate(from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		query = query.Where("date >= ?", date)
	}
	if to := c.Query("to"); to != "" {
		date, err := utils.ParseDate(to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		query = query.Where("date <= ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("date, time").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("professional_id = ? AND id = ?", professionalID, appointmentUUID).
		Preload("Client").Preload("Procedure").
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment updates price, notes, procedure or reschedules. A
// reschedule hits the same uniqueness constraint as a create.
func UpdateAppointment(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("professional_id = ? AND id = ?", professionalID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Date != nil {
		date, err := utils.ParseDate(*input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		appointment.Date = date
	}
	if input.Time != nil {
		slotTime, err := scheduling.NormalizeClock(*input.Time)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
			return
		}
		appointment.Time = slotTime
	}
	if input.ProcedureID != nil {
		procedureUUID, err := uuid.Parse(*input.ProcedureID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
			return
		}
		appointment.ProcedureID = &procedureUUID
	}
	if input.Price != nil {
		appointment.Price = *input.Price
	}
	if input.PaymentStatus != nil {
		appointment.PaymentStatus = *input.PaymentStatus
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "This time slot is already booked")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointmentStatus moves a scheduled appointment to
// completed/cancelled/no_show. Only the professional drives transitions.
func UpdateAppointmentStatus(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("professional_id = ? AND id = ?", professionalID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !models.ValidStatusTransition(appointment.Status, input.Status) {
		utils.RespondWithError(c, http.StatusConflict, "Appointment cannot move from "+appointment.Status+" to "+input.Status)
		return
	}

	appointment.Status = input.Status
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment status")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment entirely
func DeleteAppointment(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("professional_id = ? AND id = ?", professionalID, appointmentUUID).
		Delete(&models.Appointment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
