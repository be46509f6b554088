package controllers

import (
	"net/http"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentProfessionalID pulls the authenticated professional's ID out of the
// gin context. On failure it writes the error response and returns false.
func currentProfessionalID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}
