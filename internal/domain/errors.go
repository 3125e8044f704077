package domain

import "errors"

var (
	ErrSportNotFound   = errors.New("sport not found")
	ErrSportExists     = errors.New("sport with this name already exists")
	ErrConfigNotFound  = errors.New("no booking configuration found for this sport")
	ErrConfigExists    = errors.New("booking configuration already exists for this sport")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPlayerNotFound  = errors.New("player not found")
)

var (
	ErrInvalidConfig = errors.New("invalid booking configuration")
	ErrInvalidRange  = errors.New("start date must not be after end date")
)

var (
	ErrDuplicateSlot     = errors.New("slot already exists for this sport, date and start time")
	ErrSlotUnavailable   = errors.New("slot is not available for booking")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrBookingExpired    = errors.New("booking hold has expired")
	ErrBookingCancelled  = errors.New("booking is already cancelled")
	ErrPaymentPending    = errors.New("booking must be confirmed before adding players")
	ErrCheckInLimit      = errors.New("maximum check-ins reached")
	ErrWrongDay          = errors.New("check-in is only allowed on the booking date")
)

var ErrValidation = errors.New("validation error")
