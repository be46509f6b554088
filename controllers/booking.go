// controllers/booking.go
//
// Public booking surface: no authentication, professional resolved by slug.
// Slot availability is recomputed from the store on every request; nothing
// is cached because "now" moves the advance-notice cutoff.
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/config"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/models"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/scheduling"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxDayRange = 62

type PublicBookingInput struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	WhatsApp    string  `json:"whatsapp"`
	Email       string  `json:"email"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string  `json:"time" binding:"required"` // HH:MM
	ProcedureID *string `json:"procedureId"`
	Notes       string  `json:"notes"`
	// Set when the end user books while logged into their own account.
	UserID *string `json:"userId"`
}

// bookingProfessional resolves the public slug to a booking-enabled
// professional. Unknown slug and disabled booking look identical to the
// caller, both short-circuit before any slot computation.
func bookingProfessional(c *gin.Context) (*models.User, bool) {
	slug := c.Param("slug")

	var user models.User
	if err := config.DB.Where("booking_slug = ? AND booking_enabled = ? AND is_active = ?", slug, true, true).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking page not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &user, true
}

// GetBookingPage returns the professional's public profile and active
// procedures for the booking page
func GetBookingPage(c *gin.Context) {
	user, ok := bookingProfessional(c)
	if !ok {
		return
	}

	var procedures []models.Procedure
	if err := config.DB.Where("professional_id = ? AND is_active = ?", user.ID, true).
		Order("name").Find(&procedures).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve procedures")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": gin.H{
			"name":          user.Name,
			"clinicName":    user.ClinicName,
			"clinicAddress": user.ClinicAddress,
		},
		"procedures": procedures,
	})
}

// GetBookableDays returns the date-eligibility verdict for each day in a
// range, so the booking calendar can grey out closed dates
func GetBookableDays(c *gin.Context) {
	user, ok := bookingProfessional(c)
	if !ok {
		return
	}

	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := utils.ParseDate(c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
		return
	}
	if to.Before(from) || utils.DaysBetween(from, to) > maxDayRange {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date range")
		return
	}

	policy, err := scheduling.ResolvePolicy(user.BookingSettings, user.AppointmentDuration)
	if err != nil && !errors.Is(err, scheduling.ErrNoWorkingHours) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Booking configuration is invalid")
		return
	}
	noHours := errors.Is(err, scheduling.ErrNoWorkingHours)

	today := time.Now()
	type dayInfo struct {
		Date     string `json:"date"`
		Bookable bool   `json:"bookable"`
		Holiday  string `json:"holiday,omitempty"`
	}

	var days []dayInfo
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		bookable := !noHours && scheduling.DateBookable(policy, d, today)
		days = append(days, dayInfo{
			Date:     d.Format("2006-01-02"),
			Bookable: bookable,
			Holiday:  utils.HolidayName(d),
		})
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetAvailableSlots computes the bookable slots for one date. Appointment
// times are fetched fresh on every call.
func GetAvailableSlots(c *gin.Context) {
	user, ok := bookingProfessional(c)
	if !ok {
		return
	}

	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	policy, err := scheduling.ResolvePolicy(user.BookingSettings, user.AppointmentDuration)
	if errors.Is(err, scheduling.ErrNoWorkingHours) {
		// Missing configuration means no availability, not a server error.
		c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "slots": []scheduling.Slot{}})
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Booking configuration is invalid")
		return
	}

	now := time.Now()
	if !scheduling.DateBookable(policy, date, now) {
		c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "slots": []scheduling.Slot{}})
		return
	}

	occupiedTimes, err := occupiedSlotTimes(user.ID, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	times := scheduling.GenerateSlots(policy)
	slots := scheduling.AnnotateSlots(times, scheduling.OccupiedSet(occupiedTimes), date, now, policy.MinAdvanceHours)

	response := gin.H{"date": c.Query("date"), "slots": slots}
	if holiday := utils.HolidayName(date); holiday != "" {
		response["holiday"] = holiday
	}
	c.JSON(http.StatusOK, response)
}

// occupiedSlotTimes returns the times of all non-cancelled appointments for
// the professional on a date.
func occupiedSlotTimes(professionalID uuid.UUID, date time.Time) ([]string, error) {
	var times []string
	err := config.DB.Model(&models.Appointment{}).
		Where("professional_id = ? AND date = ? AND status <> ?", professionalID, date, models.AppointmentCancelled).
		Pluck("time", &times).Error
	return times, err
}

// CreatePublicBooking reserves a slot for an end customer: the client record
// is upserted by (professional, phone) and the appointment inserted in one
// transaction. The partial unique index on (professional, date, time) is the
// authoritative double-booking guard; a duplicate-key error means somebody
// else took the slot first.
func CreatePublicBooking(c *gin.Context) {
	user, ok := bookingProfessional(c)
	if !ok {
		return
	}

	var input PublicBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	phone := utils.NormalizePhone(input.Phone)

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

	policy, err := scheduling.ResolvePolicy(user.BookingSettings, user.AppointmentDuration)
	if errors.Is(err, scheduling.ErrNoWorkingHours) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "This professional is not accepting online bookings")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Booking configuration is invalid")
		return
	}

	now := time.Now()
	if !scheduling.DateBookable(policy, date, now) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "This date is not available for booking")
		return
	}
	if !slotOffered(policy, date, now, slotTime) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "This time is not available for booking")
		return
	}

	var procedureID *uuid.UUID
	if input.ProcedureID != nil {
		parsed, err := uuid.Parse(*input.ProcedureID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
			return
		}
		var procedure models.Procedure
		if err := config.DB.Where("professional_id = ? AND id = ? AND is_active = ?", user.ID, parsed, true).
			First(&procedure).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Procedure not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		procedureID = &parsed
	}

	var linkedUserID *uuid.UUID
	if input.UserID != nil {
		parsed, err := uuid.Parse(*input.UserID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
			return
		}
		linkedUserID = &parsed
	}

	var appointment models.Appointment
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		client, err := upsertClient(tx, user.ID, phone, input, linkedUserID)
		if err != nil {
			return err
		}

		// Price starts at zero; the professional assigns it afterwards.
		appointment = models.Appointment{
			ProfessionalID: user.ID,
			ClientID:       client.ID,
			ProcedureID:    procedureID,
			Date:           date,
			Time:           slotTime,
			Status:         models.AppointmentScheduled,
			Notes:          input.Notes,
		}
		return tx.Create(&appointment).Error
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "This time was just booked, please pick another one")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// slotOffered checks that the requested time is one of the policy's
// generated slots and not blocked by the advance-notice rule. Occupancy is
// left to the unique index.
func slotOffered(policy scheduling.Policy, date, now time.Time, slotTime string) bool {
	slots := scheduling.AnnotateSlots(scheduling.GenerateSlots(policy), nil, date, now, policy.MinAdvanceHours)
	for _, s := range slots {
		if s.Time == slotTime {
			return s.Available
		}
	}
	return false
}

// upsertClient looks up the professional's client by phone, updating the
// mutable contact fields when found and inserting otherwise. Phone is a
// weak identity key; the stable client ID is what appointments reference.
func upsertClient(tx *gorm.DB, professionalID uuid.UUID, phone string, input PublicBookingInput, linkedUserID *uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := tx.Where("professional_id = ? AND phone = ?", professionalID, phone).First(&client).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		client = models.Client{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			Name:           input.Name,
			Phone:          phone,
			WhatsApp:       input.WhatsApp,
			Email:          input.Email,
			LinkedUserID:   linkedUserID,
			IsActive:       true,
		}
		if err := tx.Create(&client).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}

	client.Name = input.Name
	if input.WhatsApp != "" {
		client.WhatsApp = input.WhatsApp
	}
	if input.Email != "" {
		client.Email = input.Email
	}
	if linkedUserID != nil {
		client.LinkedUserID = linkedUserID
	}
	if err := tx.Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
