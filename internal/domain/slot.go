package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slot is a persisted bookable interval. No two slots share
// (sport, date, start_time).
type Slot struct {
	ID         string          `json:"id"`
	SportID    string          `json:"sport"`
	SportName  string          `json:"sport_name,omitempty"`
	Date       Date            `json:"date"`
	StartTime  ClockTime       `json:"start_time"`
	EndTime    ClockTime       `json:"end_time"`
	Price      decimal.Decimal `json:"price"`
	MaxPlayers int             `json:"max_players"`
	IsBooked   bool            `json:"is_booked"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsAvailable reports whether the slot can still be booked as of today.
func (s *Slot) IsAvailable(today Date) bool {
	return !s.IsBooked && !s.Date.Before(today.Time)
}

type SlotFilter struct {
	SportID       string
	Date          *Date
	StartDate     *Date
	EndDate       *Date
	AvailableOnly bool
}

type TimeCategory string

const (
	CategoryMorning   TimeCategory = "morning"
	CategoryAfternoon TimeCategory = "afternoon"
	CategoryEvening   TimeCategory = "evening"
)

// SlotPreview is one computed (never persisted) slot of a day schedule.
type SlotPreview struct {
	Time         ClockTime       `json:"time"`
	EndTime      ClockTime       `json:"end_time"`
	IsAvailable  bool            `json:"is_available"`
	IsBreak      bool            `json:"is_break"`
	IsBooked     bool            `json:"is_booked"`
	Price        decimal.Decimal `json:"price"`
	Reason       string          `json:"reason,omitempty"`
	TimeCategory TimeCategory    `json:"time_category"`
}

// DaySchedule is the computed calendar for one sport and date.
type DaySchedule struct {
	Date           Date                          `json:"date"`
	IsBlackoutDate bool                          `json:"is_blackout_date"`
	Reason         string                        `json:"reason,omitempty"`
	Slots          []SlotPreview                 `json:"slots"`
	GroupedSlots   map[TimeCategory][]SlotPreview `json:"grouped_slots"`
	TotalSlots     int                           `json:"total_slots"`
	BookableSlots  int                           `json:"bookable_slots"`
	BreakSlots     int                           `json:"break_slots"`
}

// BulkGenerateInput drives bulk slot creation over a date range. Config
// overrides, when set, take precedence over the sport's stored
// BookingConfig; ManualSlots bypasses enumeration entirely.
type BulkGenerateInput struct {
	SportID   string
	StartDate Date
	EndDate   Date

	OpensAt         *ClockTime
	ClosesAt        *ClockTime
	SlotDuration    *int
	BufferTime      *int
	WeekendOpensAt  *ClockTime
	WeekendClosesAt *ClockTime

	ManualSlots []ManualSlot
}

type ManualSlot struct {
	StartTime ClockTime `json:"start_time"`
	EndTime   ClockTime `json:"end_time"`
}

// BulkGenerateResult aggregates a bulk run. Days that failed to persist are
// reported, not propagated; the rest of the range still commits.
type BulkGenerateResult struct {
	CreatedCount int
	Slots        []*Slot
	SkippedDays  []Date
	FailedDays   []Date
}
