// controllers/procedure.go
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

// CreateProcedureInput defines the expected JSON structure for creating a procedure
type CreateProcedureInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Duration    int     `json:"duration" binding:"min=0"` // in minutes
	Category    string  `json:"category"`
}

// UpdateProcedureInput defines the expected JSON structure for updating a procedure
type UpdateProcedureInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

// CreateProcedure creates a new procedure for the professional
func CreateProcedure(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var input CreateProcedureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Create new procedure
	procedure := models.Procedure{
		ProfessionalID: professionalID,
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Duration:       input.Duration,
		Category:       input.Category,
		IsActive:       true,
	}

	if err := config.DB.Create(&procedure).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create procedure")
		return
	}

	c.JSON(http.StatusCreated, procedure)
}

// GetProcedures retrieves all procedures for the professional
func GetProcedures(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	var procedures []models.Procedure
	if err := config.DB.Where("professional_id = ?", professionalID).Find(&procedures).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve procedures")
		return
	}

	c.JSON(http.StatusOK, procedures)
}

// GetProcedure retrieves a specific procedure by ID
func GetProcedure(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	procedureUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
		return
	}

	var procedure models.Procedure
	if err := config.DB.Where("professional_id = ? AND id = ?", professionalID, procedureUUID).
		First(&procedure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Procedure not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, procedure)
}

// UpdateProcedure updates an existing procedure
func UpdateProcedure(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	procedureUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
		return
	}

	var input UpdateProcedureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var procedure models.Procedure
	if err := config.DB.Where("professional_id = ? AND id = ?", professionalID, procedureUUID).
		First(&procedure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Procedure not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		procedure.Name = *input.Name
	}
	if input.Description != nil {
		procedure.Description = *input.Description
	}
	if input.Price != nil {
		procedure.Price = *input.Price
	}
	if input.Duration != nil {
		procedure.Duration = *input.Duration
	}
	if input.Category != nil {
		procedure.Category = *input.Category
	}
	if input.IsActive != nil {
		procedure.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&procedure).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update procedure")
		return
	}

	c.JSON(http.StatusOK, procedure)
}

// DeleteProcedure soft deletes a procedure
func DeleteProcedure(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	procedureUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
		return
	}

	result := config.DB.Where("professional_id = ? AND id = ?", professionalID, procedureUUID).
		Delete(&models.Procedure{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete procedure")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Procedure not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Procedure deleted successfully"})
}
