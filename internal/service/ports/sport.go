package ports

import (
	"context"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type SportRepo interface {
	Create(ctx context.Context, s *domain.Sport) error
	GetByID(ctx context.Context, id string) (*domain.Sport, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Sport, error)
	Update(ctx context.Context, s *domain.Sport) error
	Delete(ctx context.Context, id string) error
}
