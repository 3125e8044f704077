package ports

import (
	"context"

	"github.com/redball-academy/academy-booking/internal/domain"
)

// PreviewCache stores computed day schedules keyed by sport and date.
// Invalidate drops every cached schedule of one sport.
type PreviewCache interface {
	Get(ctx context.Context, sportID string, date domain.Date) (*domain.DaySchedule, bool)
	Set(ctx context.Context, sportID string, date domain.Date, s *domain.DaySchedule)
	Invalidate(ctx context.Context, sportID string)
}
