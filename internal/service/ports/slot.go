package ports

import (
	"context"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	List(ctx context.Context, f domain.SlotFilter) ([]*domain.Slot, error)
	InsertBatch(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error)
	BookedStarts(ctx context.Context, sportID string, date domain.Date) (map[domain.ClockTime]bool, error)
	Update(ctx context.Context, s *domain.Slot) error
	Delete(ctx context.Context, id string) error
}
