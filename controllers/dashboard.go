package controllers

import (
	"net/http"
	"time"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/config"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/models"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalClients       int64              `json:"totalClients"`
	TodayAppointments  int64              `json:"todayAppointments"`
	WeekAppointments   int64              `json:"weekAppointments"`
	MonthlyRevenue     float64            `json:"monthlyRevenue"`
	UpcomingToday      []TodayAppointment `json:"upcomingToday"`
	PendingConfirmable int64              `json:"pendingConfirmable"`
}

type TodayAppointment struct {
	Time      string `json:"time"`
	Client    string `json:"client"`
	Procedure string `json:"procedure"`
	Status    string `json:"status"`
}

func GetDashboardOverview(c *gin.Context) {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)
	weekEnd := today.AddDate(0, 0, 7)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Total clients
	var totalClients int64
	config.DB.Model(&models.Client{}).
		Where("professional_id = ? AND deleted_at IS NULL", professionalID).
		Count(&totalClients)

	// Today's appointments (anything not cancelled)
	var todayAppointments int64
	config.DB.Model(&models.Appointment{}).
		Where("professional_id = ? AND date = ? AND status <> ? AND deleted_at IS NULL",
			professionalID, today, models.AppointmentCancelled).
		Count(&todayAppointments)

	// Scheduled appointments over the next 7 days
	var weekAppointments int64
	config.DB.Model(&models.Appointment{}).
		Where("professional_id = ? AND date >= ? AND date < ? AND status = ? AND deleted_at IS NULL",
			professionalID, today, weekEnd, models.AppointmentScheduled).
		Count(&weekAppointments)

	// This month's revenue from completed appointments
	var monthlyRevenue float64
	config.DB.Model(&models.Appointment{}).
		Where("professional_id = ? AND date >= ? AND status = ? AND deleted_at IS NULL",
			professionalID, firstOfMonth, models.AppointmentCompleted).
		Select("COALESCE(SUM(price), 0)").Scan(&monthlyRevenue)

	// Scheduled appointments whose date has passed, awaiting a status update
	var pendingConfirmable int64
	config.DB.Model(&models.Appointment{}).
		Where("professional_id = ? AND date < ? AND status = ? AND deleted_at IS NULL",
			professionalID, today, models.AppointmentScheduled).
		Count(&pendingConfirmable)

	// Today's agenda, in slot order
	var upcomingToday []TodayAppointment
	config.DB.Raw(`
        SELECT a.time, c.name AS client, COALESCE(p.name, '') AS "procedure", a.status
        FROM appointments a
        JOIN clients c ON c.id = a.client_id
        LEFT JOIN procedures p ON p.id = a.procedure_id
        WHERE a.professional_id = ? AND a.date = ? AND a.status <> ? AND a.deleted_at IS NULL
        ORDER BY a.time
    `, professionalID, today, models.AppointmentCancelled).Scan(&upcomingToday)

	c.JSON(http.StatusOK, DashboardOverview{
		TotalClients:       totalClients,
		TodayAppointments:  todayAppointments,
		WeekAppointments:   weekAppointments,
		MonthlyRevenue:     monthlyRevenue,
		UpcomingToday:      upcomingToday,
		PendingConfirmable: pendingConfirmable,
	})
}
