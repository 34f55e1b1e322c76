package dto

type DashboardSummary struct {
	AppointmentsToday   int64   `json:"appointments_today"`
	PendingAppointments int64   `json:"pending_appointments"`
	ActiveClients       int64   `json:"active_clients"`
	MonthRevenue        float64 `json:"month_revenue"`
}
