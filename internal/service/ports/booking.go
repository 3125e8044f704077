package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, userID string) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id string, holdTTL time.Duration, amountPaid decimal.Decimal) error
	Cancel(ctx context.Context, id, reason string) error
	CancelExpired(ctx context.Context, holdTTL time.Duration) ([]*domain.Booking, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}
