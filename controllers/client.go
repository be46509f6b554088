package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/config"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/models"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name     string     `json:"name" binding:"required"`
	Phone    string     `json:"phone" binding:"required"`
	WhatsApp string     `json:"whatsapp"`
	Email    *string    `json:"email"` // Pointer to allow null
	Birthday *time.Time `json:"birthday"`
	Notes    string     `json:"notes"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name     *string    `json:"name"`
	Phone    *string    `json:"phone"`
	WhatsApp *string    `json:"whatsapp"`
	Email    *string    `json:"email"`
	Birthday *time.Time `json:"birthday"`
	Notes    *string    `json:"notes"`
	IsActive *bool      `json:"isActive"`
}

// CreateClient creates a new client for the professional
func CreateClient(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	phone := utils.NormalizePhone(input.Phone)

	// Check if phone already exists for this professional
	var existingClient models.Client
	if err := config.DB.Where("professional_id = ? AND phone = ?", professionalID, phone).
		First(&existingClient).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Client with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Create new client
	client := models.Client{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Name:           input.Name,
		Phone:          phone,
		WhatsApp:       input.WhatsApp,
		Birthday:       input.Birthday,
		Notes:          input.Notes,
		IsActive:       true,
	}

	if input.Email != nil {
		client.Email = *input.Email
	}

	if err := config.DB.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Client with this phone number already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients for the professional
func GetClients(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var clients []models.Client
	if err := config.DB.Where("professional_id = ?", professionalID).Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

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

	c.JSON(http.StatusOK, client)
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing client
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

	// Update fields if provided
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		// Validate phone format
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		phone := utils.NormalizePhone(*input.Phone)

		// Check if phone is being changed to another existing client
		if client.Phone != phone {
			var existingClient models.Client
			if err := config.DB.Where("professional_id = ? AND phone = ?", professionalID, phone).
				First(&existingClient).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another client with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		client.Phone = phone
	}
	if input.WhatsApp != nil {
		client.WhatsApp = *input.WhatsApp
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Birthday != nil {
		client.Birthday = input.Birthday
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Another client with this phone number already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient soft deletes a client
func DeleteClient(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	result := config.DB.Where("professional_id = ? AND id = ?", professionalID, clientUUID).
		Delete(&models.Client{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
