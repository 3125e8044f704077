package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/service/ports"
)

type SportService struct {
	repo  ports.SportRepo
	cache ports.PreviewCache
}

func NewSportService(repo ports.SportRepo, cache ports.PreviewCache) *SportService {
	return &SportService{repo: repo, cache: cache}
}

func (s *SportService) Create(ctx context.Context, input domain.CreateSportInput) (*domain.Sport, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.PricePerHour.IsPositive() {
		return nil, fmt.Errorf("%w: price_per_hour must be positive", domain.ErrValidation)
	}
	if input.MaxPlayers <= 0 {
		return nil, fmt.Errorf("%w: max_players must be positive", domain.ErrValidation)
	}

	now := time.Now().UTC()
	sport := &domain.Sport{
		ID:           uuid.New().String(),
		Name:         input.Name,
		PricePerHour: input.PricePerHour,
		Description:  input.Description,
		MaxPlayers:   input.MaxPlayers,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, sport); err != nil {
		return nil, fmt.Errorf("create sport: %w", err)
	}
	return sport, nil
}

func (s *SportService) GetByID(ctx context.Context, id string) (*domain.Sport, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SportService) List(ctx context.Context, activeOnly bool) ([]*domain.Sport, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *SportService) Update(ctx context.Context, id string, input domain.UpdateSportInput) (*domain.Sport, error) {
	sport, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		sport.Name = *input.Name
	}
	if input.PricePerHour != nil {
		if !input.PricePerHour.IsPositive() {
			return nil, fmt.Errorf("%w: price_per_hour must be positive", domain.ErrValidation)
		}
		sport.PricePerHour = *input.PricePerHour
	}
	if input.Description != nil {
		sport.Description = *input.Description
	}
	if input.MaxPlayers != nil {
		if *input.MaxPlayers <= 0 {
			return nil, fmt.Errorf("%w: max_players must be positive", domain.ErrValidation)
		}
		sport.MaxPlayers = *input.MaxPlayers
	}
	if input.IsActive != nil {
		sport.IsActive = *input.IsActive
	}

	if err = s.repo.Update(ctx, sport); err != nil {
		return nil, fmt.Errorf("update sport: %w", err)
	}

	// Price changes invalidate every cached schedule of the sport.
	s.cache.Invalidate(ctx, id)

	return sport, nil
}

func (s *SportService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}
