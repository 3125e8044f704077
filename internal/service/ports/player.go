package ports

import (
	"context"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type PlayerRepo interface {
	Create(ctx context.Context, p *domain.Player) error
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Player, error)
	RecordCheck(ctx context.Context, playerID, location string) (*domain.Player, *domain.CheckInLog, error)
	ListLogs(ctx context.Context, playerID string) ([]*domain.CheckInLog, error)
}
