package dto

import (
	"time"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ResultsResponse is the envelope every list endpoint uses.
type ResultsResponse struct {
	Results any `json:"results"`
}

func Results(v any) ResultsResponse { return ResultsResponse{Results: v} }

type BulkCreateResponse struct {
	Message      string         `json:"message"`
	CreatedCount int            `json:"created_count"`
	Slots        []*domain.Slot `json:"slots"`
	SkippedDays  []domain.Date  `json:"skipped_days,omitempty"`
	FailedDays   []domain.Date  `json:"failed_days,omitempty"`
}

// PlayerResponse adds the derived attendance status to the stored fields.
type PlayerResponse struct {
	ID           string     `json:"id"`
	BookingID    string     `json:"booking"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	CheckInCount int        `json:"check_in_count"`
	Status       string     `json:"status"`
	LastCheckIn  *time.Time `json:"last_check_in"`
	LastCheckOut *time.Time `json:"last_check_out"`
	CreatedAt    string     `json:"created_at"`
}

func ToPlayerResponse(p *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:           p.ID,
		BookingID:    p.BookingID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		CheckInCount: p.CheckInCount,
		Status:       string(p.Status()),
		LastCheckIn:  p.LastCheckIn,
		LastCheckOut: p.LastCheckOut,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

type ScanResponse struct {
	Message string         `json:"message"`
	Action  string         `json:"action"`
	Player  PlayerResponse `json:"player"`
}

func ToScanResponse(p *domain.Player, log *domain.CheckInLog) ScanResponse {
	msg := "checked in"
	if log.Action == domain.CheckActionOut {
		msg = "checked out"
	}
	return ScanResponse{
		Message: msg,
		Action:  string(log.Action),
		Player:  ToPlayerResponse(p),
	}
}

func (r CreateConfigRequest) ToDomain() *domain.BookingConfig {
	cfg := &domain.BookingConfig{
		SportID:                 r.Sport,
		OpensAt:                 r.OpensAt,
		ClosesAt:                r.ClosesAt,
		SlotDuration:            r.SlotDuration,
		BufferTime:              r.BufferTime,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingDuration:      r.MinBookingDuration,
		MaxBookingDuration:      r.MaxBookingDuration,
		DifferentWeekendTimings: r.DifferentWeekendTimings,
		WeekendOpensAt:          r.WeekendOpensAt,
		WeekendClosesAt:         r.WeekendClosesAt,
		PeakHourPricing:         r.PeakHourPricing,
		PeakStartTime:           r.PeakStartTime,
		PeakEndTime:             r.PeakEndTime,
		WeekendPricing:          r.WeekendPricing,
		IsActive:                true,
	}
	if r.PeakPriceMultiplier != nil {
		cfg.PeakPriceMultiplier = *r.PeakPriceMultiplier
	}
	if r.WeekendPriceMultiplier != nil {
		cfg.WeekendPriceMultiplier = *r.WeekendPriceMultiplier
	}
	if r.IsActive != nil {
		cfg.IsActive = *r.IsActive
	}
	return cfg
}

func (r UpdateConfigRequest) ToDomain() domain.UpdateConfigInput {
	return domain.UpdateConfigInput{
		OpensAt:                 r.OpensAt,
		ClosesAt:                r.ClosesAt,
		SlotDuration:            r.SlotDuration,
		BufferTime:              r.BufferTime,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingDuration:      r.MinBookingDuration,
		MaxBookingDuration:      r.MaxBookingDuration,
		DifferentWeekendTimings: r.DifferentWeekendTimings,
		WeekendOpensAt:          r.WeekendOpensAt,
		WeekendClosesAt:         r.WeekendClosesAt,
		PeakHourPricing:         r.PeakHourPricing,
		PeakStartTime:           r.PeakStartTime,
		PeakEndTime:             r.PeakEndTime,
		PeakPriceMultiplier:     r.PeakPriceMultiplier,
		WeekendPricing:          r.WeekendPricing,
		WeekendPriceMultiplier:  r.WeekendPriceMultiplier,
		IsActive:                r.IsActive,
	}
}

func (r BulkCreateRequest) ToDomain() domain.BulkGenerateInput {
	return domain.BulkGenerateInput{
		SportID:         r.Sport,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		OpensAt:         r.OpensAt,
		ClosesAt:        r.ClosesAt,
		SlotDuration:    r.SlotDuration,
		BufferTime:      r.BufferTime,
		WeekendOpensAt:  r.WeekendOpensAt,
		WeekendClosesAt: r.WeekendClosesAt,
		ManualSlots:     r.TimeSlots,
	}
}
