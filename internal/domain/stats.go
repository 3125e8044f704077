package domain

import "github.com/shopspring/decimal"

// DashboardStats is the admin home-screen summary.
type DashboardStats struct {
	TotalBookings  int             `json:"total_bookings"`
	ActiveBookings int             `json:"active_bookings"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalPlayers   int             `json:"total_players"`
	CheckedInToday int             `json:"checked_in_today"`
	AvailableSlots int             `json:"available_slots"`
}
