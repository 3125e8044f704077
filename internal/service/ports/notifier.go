package ports

import (
	"context"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
}
