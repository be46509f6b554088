package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Registration must reject a malformed booking settings blob up front, the
// same way the settings update endpoint does. These cases fail before any
// database access.
func TestRegisterRejectsInvalidBookingSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", Register)

	cases := []struct {
		name     string
		settings map[string]interface{}
	}{
		{"end before start", map[string]interface{}{
			"working_hours_start": "18:00",
			"working_hours_end":   "08:00",
		}},
		{"unparseable clock", map[string]interface{}{
			"working_hours_start": "9am",
			"working_hours_end":   "17:00",
		}},
		{"negative slot duration", map[string]interface{}{
			"working_hours_start":   "08:00",
			"working_hours_end":     "17:00",
			"slot_duration_minutes": float64(-15),
		}},
		{"out of range working day", map[string]interface{}{
			"working_hours_start": "08:00",
			"working_hours_end":   "17:00",
			"working_days":        []interface{}{float64(7)},
		}},
	}

	for _, tc := range cases {
		body, err := json.Marshal(map[string]interface{}{
			"email":           "pro@example.com",
			"phone":           "+5511987654321",
			"name":            "Pro",
			"password":        "supersecret",
			"clinicName":      "Foot Clinic",
			"bookingSettings": tc.settings,
		})
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d (body %s)", tc.name, w.Code, w.Body.String())
		}
	}
}
