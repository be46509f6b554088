package controllers

import (
	"errors"
	"net/http"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/config"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/models"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/scheduling"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name                string `json:"name"`
	ClinicName          string `json:"clinicName"`
	ClinicAddress       string `json:"clinicAddress"`
	Phone               string `json:"phone"`
	AppointmentDuration *int   `json:"appointmentDuration"`
}

func GetProfile(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", professionalID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":                  user.Name,
		"email":                 user.Email,
		"phone":                 user.Phone,
		"clinicName":            user.ClinicName,
		"clinicAddress":         user.ClinicAddress,
		"appointmentDuration":   user.AppointmentDuration,
		"bookingSettings":       user.BookingSettings,
		"bookingEnabled":        user.BookingEnabled,
		"bookingSlug":           user.BookingSlug,
		"appointmentReminders":  user.AppointmentReminders,
		"whatsAppNotifications": user.WhatsAppNotifications,
		"smsNotifications":      user.SMSNotifications,
	})
}

func UpdateProfile(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", professionalID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	// Update fields
	user.Name = input.Name
	user.ClinicName = input.ClinicName
	user.ClinicAddress = input.ClinicAddress
	user.Phone = input.Phone
	if input.AppointmentDuration != nil {
		if *input.AppointmentDuration <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Appointment duration must be positive")
			return
		}
		user.AppointmentDuration = *input.AppointmentDuration
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// UpdateBookingSettings replaces the booking policy blob. The blob is run
// through the policy resolver first so malformed settings never reach the
// database; missing working hours are allowed here and simply keep the
// public page answering "no availability".
func UpdateBookingSettings(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var input struct {
		BookingSettings models.JSONB `json:"bookingSettings" binding:"required"`
		BookingEnabled  *bool        `json:"bookingEnabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", professionalID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if _, err := scheduling.ResolvePolicy(input.BookingSettings, user.AppointmentDuration); err != nil &&
		!errors.Is(err, scheduling.ErrNoWorkingHours) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking settings: "+err.Error())
		return
	}

	updates := map[string]interface{}{"booking_settings": input.BookingSettings}
	if input.BookingEnabled != nil {
		updates["booking_enabled"] = *input.BookingEnabled
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking settings updated"})
}

func UpdateNotificationSettings(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var input struct {
		AppointmentReminders  bool `json:"appointmentReminders"`
		WhatsAppNotifications bool `json:"whatsAppNotifications"`
		SMSNotifications      bool `json:"smsNotifications"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", professionalID).
		Updates(map[string]interface{}{
			"appointment_reminders":   input.AppointmentReminders,
			"whats_app_notifications": input.WhatsAppNotifications,
			"sms_notifications":       input.SMSNotifications,
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}

// RegenerateBookingSlug issues a fresh public booking URL, invalidating the
// old one
func RegenerateBookingSlug(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	slug := newBookingSlug()
	if err := config.DB.Model(&models.User{}).Where("id = ?", professionalID).
		Update("booking_slug", slug).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to regenerate booking link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingSlug": slug})
}
