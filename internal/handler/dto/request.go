package dto

import (
	"github.com/shopspring/decimal"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type CreateSportRequest struct {
	Name         string          `json:"name" binding:"required"`
	PricePerHour decimal.Decimal `json:"price_per_hour" binding:"required"`
	Description  string          `json:"description"`
	MaxPlayers   int             `json:"max_players" binding:"required,gt=0"`
}

type UpdateSportRequest struct {
	Name         *string          `json:"name"`
	PricePerHour *decimal.Decimal `json:"price_per_hour"`
	Description  *string          `json:"description"`
	MaxPlayers   *int             `json:"max_players"`
	IsActive     *bool            `json:"is_active"`
}

type CreateConfigRequest struct {
	Sport                   string            `json:"sport" binding:"required,uuid"`
	OpensAt                 domain.ClockTime  `json:"opens_at" binding:"required"`
	ClosesAt                domain.ClockTime  `json:"closes_at" binding:"required"`
	SlotDuration            int               `json:"slot_duration" binding:"required"`
	BufferTime              int               `json:"buffer_time"`
	AdvanceBookingDays      int               `json:"advance_booking_days" binding:"required"`
	MinBookingDuration      int               `json:"min_booking_duration"`
	MaxBookingDuration      int               `json:"max_booking_duration"`
	DifferentWeekendTimings bool              `json:"different_weekend_timings"`
	WeekendOpensAt          *domain.ClockTime `json:"weekend_opens_at"`
	WeekendClosesAt         *domain.ClockTime `json:"weekend_closes_at"`
	PeakHourPricing         bool              `json:"peak_hour_pricing"`
	PeakStartTime           *domain.ClockTime `json:"peak_start_time"`
	PeakEndTime             *domain.ClockTime `json:"peak_end_time"`
	PeakPriceMultiplier     *decimal.Decimal  `json:"peak_price_multiplier"`
	WeekendPricing          bool              `json:"weekend_pricing"`
	WeekendPriceMultiplier  *decimal.Decimal  `json:"weekend_price_multiplier"`
	IsActive                *bool             `json:"is_active"`
}

type UpdateConfigRequest struct {
	OpensAt                 *domain.ClockTime `json:"opens_at"`
	ClosesAt                *domain.ClockTime `json:"closes_at"`
	SlotDuration            *int              `json:"slot_duration"`
	BufferTime              *int              `json:"buffer_time"`
	AdvanceBookingDays      *int              `json:"advance_booking_days"`
	MinBookingDuration      *int              `json:"min_booking_duration"`
	MaxBookingDuration      *int              `json:"max_booking_duration"`
	DifferentWeekendTimings *bool             `json:"different_weekend_timings"`
	WeekendOpensAt          *domain.ClockTime `json:"weekend_opens_at"`
	WeekendClosesAt         *domain.ClockTime `json:"weekend_closes_at"`
	PeakHourPricing         *bool             `json:"peak_hour_pricing"`
	PeakStartTime           *domain.ClockTime `json:"peak_start_time"`
	PeakEndTime             *domain.ClockTime `json:"peak_end_time"`
	PeakPriceMultiplier     *decimal.Decimal  `json:"peak_price_multiplier"`
	WeekendPricing          *bool             `json:"weekend_pricing"`
	WeekendPriceMultiplier  *decimal.Decimal  `json:"weekend_price_multiplier"`
	IsActive                *bool             `json:"is_active"`
}

type CreateBreakTimeRequest struct {
	Sport             string           `json:"sport" binding:"required,uuid"`
	StartTime         domain.ClockTime `json:"start_time" binding:"required"`
	EndTime           domain.ClockTime `json:"end_time" binding:"required"`
	Reason            string           `json:"reason"`
	AppliesToWeekdays *bool            `json:"applies_to_weekdays"`
	AppliesToWeekends *bool            `json:"applies_to_weekends"`
	IsActive          *bool            `json:"is_active"`
}

type UpdateBreakTimeRequest struct {
	StartTime         *domain.ClockTime `json:"start_time"`
	EndTime           *domain.ClockTime `json:"end_time"`
	Reason            *string           `json:"reason"`
	AppliesToWeekdays *bool             `json:"applies_to_weekdays"`
	AppliesToWeekends *bool             `json:"applies_to_weekends"`
	IsActive          *bool             `json:"is_active"`
}

type CreateBlackoutRequest struct {
	Sport  *string     `json:"sport"`
	Date   domain.Date `json:"date" binding:"required"`
	Reason string      `json:"reason" binding:"required"`
}

type CreateSlotRequest struct {
	Sport     string           `json:"sport" binding:"required,uuid"`
	Date      domain.Date      `json:"date" binding:"required"`
	StartTime domain.ClockTime `json:"start_time" binding:"required"`
	EndTime   domain.ClockTime `json:"end_time" binding:"required"`
}

type UpdateSlotRequest struct {
	Date      *domain.Date      `json:"date"`
	StartTime *domain.ClockTime `json:"start_time"`
	EndTime   *domain.ClockTime `json:"end_time"`
	Price     *decimal.Decimal  `json:"price"`
}

type BulkCreateRequest struct {
	Sport     string      `json:"sport" binding:"required,uuid"`
	StartDate domain.Date `json:"start_date" binding:"required"`
	EndDate   domain.Date `json:"end_date" binding:"required"`

	TimeSlots []domain.ManualSlot `json:"time_slots"`

	OpensAt         *domain.ClockTime `json:"opens_at"`
	ClosesAt        *domain.ClockTime `json:"closes_at"`
	SlotDuration    *int              `json:"slot_duration"`
	BufferTime      *int              `json:"buffer_time"`
	WeekendOpensAt  *domain.ClockTime `json:"weekend_opens_at"`
	WeekendClosesAt *domain.ClockTime `json:"weekend_closes_at"`
}

type BookRequest struct {
	Slot   string `json:"slot" binding:"required,uuid"`
	UserID string `json:"user_id" binding:"required"`
}

type ConfirmRequest struct {
	AmountPaid *decimal.Decimal `json:"amount_paid"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type CreatePlayerRequest struct {
	Booking string `json:"booking" binding:"required,uuid"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
}

type ScanRequest struct {
	PlayerID string `json:"player_id" binding:"required,uuid"`
	Location string `json:"location"`
}
