package ports

import (
	"context"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type ConfigRepo interface {
	Create(ctx context.Context, c *domain.BookingConfig) error
	GetByID(ctx context.Context, id string) (*domain.BookingConfig, error)
	GetBySport(ctx context.Context, sportID string) (*domain.BookingConfig, error)
	List(ctx context.Context, sportID string) ([]*domain.BookingConfig, error)
	Update(ctx context.Context, c *domain.BookingConfig) error

	ListBreakTimes(ctx context.Context, sportID string) ([]domain.BreakTime, error)
	CreateBreakTime(ctx context.Context, b *domain.BreakTime) error
	UpdateBreakTime(ctx context.Context, b *domain.BreakTime) error
	DeleteBreakTime(ctx context.Context, id string) error

	ListBlackoutDates(ctx context.Context, sportID string) ([]domain.BlackoutDate, error)
	CreateBlackoutDate(ctx context.Context, b *domain.BlackoutDate) error
	DeleteBlackoutDate(ctx context.Context, id string) error
}
