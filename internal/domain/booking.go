package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// Booking consumes exactly one slot. A pending booking holds the slot until
// it is confirmed (payment settled out of band) or the hold expires.
type Booking struct {
	ID                 string          `json:"id"`
	SlotID             string          `json:"slot"`
	UserID             string          `json:"user_id"`
	Status             BookingStatus   `json:"status"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`

	Slot *Slot `json:"slot_details,omitempty"`
}
