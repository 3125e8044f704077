package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SlotDurations are the slot lengths (minutes) the admin UI offers.
var SlotDurations = []int{30, 60, 120, 240}

// AdvanceBookingWindows are the allowed advance-booking horizons (days).
var AdvanceBookingWindows = []int{1, 3, 7, 15, 30}

// BookingConfig is the per-sport bookable-calendar configuration. One per
// sport; the sport reference is immutable after creation.
type BookingConfig struct {
	ID                      string          `json:"id"`
	SportID                 string          `json:"sport"`
	SportName               string          `json:"sport_name,omitempty"`
	OpensAt                 ClockTime       `json:"opens_at"`
	ClosesAt                ClockTime       `json:"closes_at"`
	SlotDuration            int             `json:"slot_duration"`
	BufferTime              int             `json:"buffer_time"`
	AdvanceBookingDays      int             `json:"advance_booking_days"`
	MinBookingDuration      int             `json:"min_booking_duration"`
	MaxBookingDuration      int             `json:"max_booking_duration"`
	DifferentWeekendTimings bool            `json:"different_weekend_timings"`
	WeekendOpensAt          *ClockTime      `json:"weekend_opens_at"`
	WeekendClosesAt         *ClockTime      `json:"weekend_closes_at"`
	PeakHourPricing         bool            `json:"peak_hour_pricing"`
	PeakStartTime           *ClockTime      `json:"peak_start_time"`
	PeakEndTime             *ClockTime      `json:"peak_end_time"`
	PeakPriceMultiplier     decimal.Decimal `json:"peak_price_multiplier"`
	WeekendPricing          bool            `json:"weekend_pricing"`
	WeekendPriceMultiplier  decimal.Decimal `json:"weekend_price_multiplier"`
	IsActive                bool            `json:"is_active"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// Validate checks the invariants the slot engine relies on.
func (c *BookingConfig) Validate() error {
	if c.OpensAt >= c.ClosesAt {
		return fmt.Errorf("%w: opens_at must be before closes_at", ErrInvalidConfig)
	}
	if !containsInt(SlotDurations, c.SlotDuration) {
		return fmt.Errorf("%w: slot_duration must be one of %v", ErrInvalidConfig, SlotDurations)
	}
	if c.BufferTime < 0 {
		return fmt.Errorf("%w: buffer_time must not be negative", ErrInvalidConfig)
	}
	if !containsInt(AdvanceBookingWindows, c.AdvanceBookingDays) {
		return fmt.Errorf("%w: advance_booking_days must be one of %v", ErrInvalidConfig, AdvanceBookingWindows)
	}
	if c.DifferentWeekendTimings {
		if c.WeekendOpensAt == nil || c.WeekendClosesAt == nil {
			return fmt.Errorf("%w: weekend timings enabled but not set", ErrInvalidConfig)
		}
		if *c.WeekendOpensAt >= *c.WeekendClosesAt {
			return fmt.Errorf("%w: weekend_opens_at must be before weekend_closes_at", ErrInvalidConfig)
		}
	}
	if c.PeakHourPricing {
		if c.PeakStartTime == nil || c.PeakEndTime == nil {
			return fmt.Errorf("%w: peak hour pricing enabled but peak window not set", ErrInvalidConfig)
		}
		if *c.PeakStartTime >= *c.PeakEndTime {
			return fmt.Errorf("%w: peak_start_time must be before peak_end_time", ErrInvalidConfig)
		}
		if !c.PeakPriceMultiplier.IsPositive() {
			return fmt.Errorf("%w: peak_price_multiplier must be positive", ErrInvalidConfig)
		}
	}
	if c.WeekendPricing && !c.WeekendPriceMultiplier.IsPositive() {
		return fmt.Errorf("%w: weekend_price_multiplier must be positive", ErrInvalidConfig)
	}
	return nil
}

// Window returns the effective operating hours for a date, honouring the
// weekend override when enabled.
func (c *BookingConfig) Window(date Date) (opens, closes ClockTime) {
	if c.DifferentWeekendTimings && date.IsWeekend() &&
		c.WeekendOpensAt != nil && c.WeekendClosesAt != nil {
		return *c.WeekendOpensAt, *c.WeekendClosesAt
	}
	return c.OpensAt, c.ClosesAt
}

// TotalSlotsPerDay reports how many slots a weekday yields; remainder shorter
// than a full slot is dropped.
func (c *BookingConfig) TotalSlotsPerDay() int {
	step := c.SlotDuration + c.BufferTime
	if step <= 0 {
		return 0
	}
	count := 0
	for start := c.OpensAt; start.Add(c.SlotDuration) <= c.ClosesAt; start = start.Add(step) {
		count++
	}
	return count
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// UpdateConfigInput patches a BookingConfig; nil fields keep the stored
// value. The sport reference has no field here on purpose.
type UpdateConfigInput struct {
	OpensAt                 *ClockTime
	ClosesAt                *ClockTime
	SlotDuration            *int
	BufferTime              *int
	AdvanceBookingDays      *int
	MinBookingDuration      *int
	MaxBookingDuration      *int
	DifferentWeekendTimings *bool
	WeekendOpensAt          *ClockTime
	WeekendClosesAt         *ClockTime
	PeakHourPricing         *bool
	PeakStartTime           *ClockTime
	PeakEndTime             *ClockTime
	PeakPriceMultiplier     *decimal.Decimal
	WeekendPricing          *bool
	WeekendPriceMultiplier  *decimal.Decimal
	IsActive                *bool
}

// Apply copies the set fields onto the config.
func (in UpdateConfigInput) Apply(c *BookingConfig) {
	if in.OpensAt != nil {
		c.OpensAt = *in.OpensAt
	}
	if in.ClosesAt != nil {
		c.ClosesAt = *in.ClosesAt
	}
	if in.SlotDuration != nil {
		c.SlotDuration = *in.SlotDuration
	}
	if in.BufferTime != nil {
		c.BufferTime = *in.BufferTime
	}
	if in.AdvanceBookingDays != nil {
		c.AdvanceBookingDays = *in.AdvanceBookingDays
	}
	if in.MinBookingDuration != nil {
		c.MinBookingDuration = *in.MinBookingDuration
	}
	if in.MaxBookingDuration != nil {
		c.MaxBookingDuration = *in.MaxBookingDuration
	}
	if in.DifferentWeekendTimings != nil {
		c.DifferentWeekendTimings = *in.DifferentWeekendTimings
	}
	if in.WeekendOpensAt != nil {
		c.WeekendOpensAt = in.WeekendOpensAt
	}
	if in.WeekendClosesAt != nil {
		c.WeekendClosesAt = in.WeekendClosesAt
	}
	if in.PeakHourPricing != nil {
		c.PeakHourPricing = *in.PeakHourPricing
	}
	if in.PeakStartTime != nil {
		c.PeakStartTime = in.PeakStartTime
	}
	if in.PeakEndTime != nil {
		c.PeakEndTime = in.PeakEndTime
	}
	if in.PeakPriceMultiplier != nil {
		c.PeakPriceMultiplier = *in.PeakPriceMultiplier
	}
	if in.WeekendPricing != nil {
		c.WeekendPricing = *in.WeekendPricing
	}
	if in.WeekendPriceMultiplier != nil {
		c.WeekendPriceMultiplier = *in.WeekendPriceMultiplier
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
}

// BreakTime is a recurring non-bookable window within operating hours,
// e.g. pitch maintenance.
type BreakTime struct {
	ID                string    `json:"id"`
	SportID           string    `json:"sport"`
	StartTime         ClockTime `json:"start_time"`
	EndTime           ClockTime `json:"end_time"`
	Reason            string    `json:"reason"`
	AppliesToWeekdays bool      `json:"applies_to_weekdays"`
	AppliesToWeekends bool      `json:"applies_to_weekends"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AppliesTo reports whether the break is in effect on the given date.
func (b *BreakTime) AppliesTo(date Date) bool {
	if !b.IsActive {
		return false
	}
	if date.IsWeekend() {
		return b.AppliesToWeekends
	}
	return b.AppliesToWeekdays
}

// BlackoutDate removes a whole date from the bookable calendar. A blackout
// without a sport applies to every sport.
type BlackoutDate struct {
	ID        string    `json:"id"`
	SportID   *string   `json:"sport"`
	SportName string    `json:"sport_name,omitempty"`
	Date      Date      `json:"date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
