// controllers/reminder.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/config"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/models"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateReminderTemplateInput defines the expected JSON structure
type UpdateReminderTemplateInput struct {
	Message  *string `json:"message"`
	IsActive *bool   `json:"isActive"`
}

// GetReminderTemplate returns the professional's appointment reminder
// template, creating the default one if it is missing
func GetReminderTemplate(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var template models.ReminderTemplate
	err := config.DB.Where("professional_id = ? AND type = ?", professionalID, "appointment").
		First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		template = models.ReminderTemplate{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			Type:           "appointment",
			Message:        "Hi [ClientName], this is a reminder of your [Procedure] appointment tomorrow at [Time]. See you soon!",
		}
		if err := config.DB.Create(&template).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reminder template")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, template)
}

// UpdateReminderTemplate updates the message or toggles the template
func UpdateReminderTemplate(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var input UpdateReminderTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var template models.ReminderTemplate
	if err := config.DB.Where("professional_id = ? AND type = ?", professionalID, "appointment").
		First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder template not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Message != nil {
		template.Message = *input.Message
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reminder template")
		return
	}

	c.JSON(http.StatusOK, template)
}
