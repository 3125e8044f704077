package cache

import (
	"context"

	"github.com/redball-academy/academy-booking/internal/domain"
)

// Noop satisfies the cache port when redis is not configured.
type Noop struct{}

func (Noop) Get(ctx context.Context, sportID string, date domain.Date) (*domain.DaySchedule, bool) {
	return nil, false
}
func (Noop) Set(ctx context.Context, sportID string, date domain.Date, s *domain.DaySchedule) {}
func (Noop) Invalidate(ctx context.Context, sportID string)                                  {}
