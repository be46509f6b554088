package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/config"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/models"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/scheduling"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email           string       `json:"email" binding:"required,email"`
	Phone           string       `json:"phone" binding:"required"`
	Name            string       `json:"name" binding:"required"`
	Password        string       `json:"password" binding:"required,min=8"`
	ClinicName      string       `json:"clinicName" binding:"required"`
	ClinicAddress   string       `json:"clinicAddress"`
	BookingSettings models.JSONB `json:"bookingSettings"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be email or phone
	Password   string `json:"password" binding:"required"`
}

// controllers/auth.go
func Register(c *gin.Context) {
	var input RegisterInput

	// Bind and validate input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// A malformed policy blob is rejected here, the same way the settings
	// update endpoint rejects it; missing working hours are fine and just
	// keep the public page answering "no availability".
	if input.BookingSettings != nil {
		if _, err := scheduling.ResolvePolicy(input.BookingSettings, 30); err != nil &&
			!errors.Is(err, scheduling.ErrNoWorkingHours) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking settings: "+err.Error())
			return
		}
	}

	// Check if email or phone already exists
	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Create new professional
	newUser := models.User{
		Email:           input.Email,
		Phone:           input.Phone,
		Name:            input.Name,
		Password:        input.Password, // Will be hashed in BeforeCreate hook
		ClinicName:      input.ClinicName,
		ClinicAddress:   input.ClinicAddress,
		BookingSettings: input.BookingSettings,
		BookingSlug:     newBookingSlug(),
	}

	// Set default booking settings if not provided
	if newUser.BookingSettings == nil {
		newUser.BookingSettings = models.JSONB{
			"working_days":          []interface{}{float64(1), float64(2), float64(3), float64(4), float64(5)},
			"working_hours_start":   "08:00",
			"working_hours_end":     "18:00",
			"slot_duration_minutes": float64(30),
			"min_advance_hours":     float64(2),
			"max_advance_days":      float64(30),
		}
	}

	// Create user in database
	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Non-fatal; the professional can create one from the dashboard later.
	if err := createDefaultReminderTemplate(newUser.ID); err != nil {
		log.Printf("Failed to create default reminder template for %s: %v", newUser.ID, err)
	}

	// Generate token
	token, err := utils.GenerateToken(newUser.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	// Return response without password
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":          newUser.ID,
			"email":       newUser.Email,
			"phone":       newUser.Phone,
			"clinicName":  newUser.ClinicName,
			"bookingSlug": newUser.BookingSlug,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Clean identifier
	identifier := strings.TrimSpace(input.Identifier)

	// Determine if identifier is email or phone
	var user models.User
	query := config.DB.Where("email = ? OR phone = ?", identifier, identifier)
	result := query.First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Check password
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// Generate token
	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	// Return response
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"phone":       user.Phone,
			"clinicName":  user.ClinicName,
			"bookingSlug": user.BookingSlug,
		},
	})
}

func createDefaultReminderTemplate(professionalID uuid.UUID) error {
	template := models.ReminderTemplate{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Type:           "appointment",
		Message:        "Hi [ClientName], this is a reminder of your [Procedure] appointment tomorrow at [Time]. See you soon!",
	}
	return config.DB.Create(&template).Error
}

func newBookingSlug() string {
	return strings.Split(uuid.New().String(), "-")[0]
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	// Return user info
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"clinicName":  user.ClinicName,
			"bookingSlug": user.BookingSlug,
		},
	})
}
