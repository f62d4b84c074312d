package entity

import "github.com/shopspring/decimal"

// DashboardStats holds the aggregate counters shown on the admin dashboard.
type DashboardStats struct {
	TotalPatients         int             `json:"total_patients"`
	TotalDoctors          int             `json:"total_doctors"`
	TotalAppointments     int             `json:"total_appointments"`
	CompletedAppointments int             `json:"completed_appointments"`
	PendingAppointments   int             `json:"pending_appointments"`
	ScheduledAppointments int             `json:"scheduled_appointments"`
	TodayAppointments     int             `json:"today_appointments"`
	WeekAppointments      int             `json:"week_appointments"`
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
}

// WeeklyAppointments is one bar of the weekly appointments chart.
type WeeklyAppointments struct {
	Day   string `json:"day"`
	Date  string `json:"date,omitempty"`
	Count int    `json:"count"`
}

// DoctorStats aggregates a single doctor's appointments.
type DoctorStats struct {
	DoctorID              string  `json:"doctor_id"`
	TotalAppointments     int     `json:"total_appointments"`
	CompletedAppointments int     `json:"completed_appointments"`
	UpcomingAppointments  int     `json:"upcoming_appointments"`
	TotalPatients         int     `json:"total_patients"`
	Rating                float64 `json:"rating"`
}

// DashboardOverview bundles everything the dashboard landing page loads.
type DashboardOverview struct {
	Stats              *DashboardStats      `json:"stats"`
	RecentAppointments []Appointment        `json:"recent_appointments"`
	Weekly             []WeeklyAppointments `json:"weekly_appointments"`
}
