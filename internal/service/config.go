package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/service/ports"
	"github.com/redball-academy/academy-booking/internal/slotgen"
)

type ConfigService struct {
	repo      ports.ConfigRepo
	sportRepo ports.SportRepo
	slotRepo  ports.SlotRepo
	cache     ports.PreviewCache
	logger    logger.Logger
}

func NewConfigService(
	repo ports.ConfigRepo,
	sportRepo ports.SportRepo,
	slotRepo ports.SlotRepo,
	cache ports.PreviewCache,
	logger logger.Logger,
) *ConfigService {
	return &ConfigService{
		repo:      repo,
		sportRepo: sportRepo,
		slotRepo:  slotRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (s *ConfigService) Create(ctx context.Context, cfg *domain.BookingConfig) (*domain.BookingConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.sportRepo.GetByID(ctx, cfg.SportID); err != nil {
		return nil, fmt.Errorf("check sport: %w", err)
	}

	cfg.ID = uuid.New().String()
	if err := s.repo.Create(ctx, cfg); err != nil {
		return nil, fmt.Errorf("create booking config: %w", err)
	}

	s.cache.Invalidate(ctx, cfg.SportID)
	return s.repo.GetByID(ctx, cfg.ID)
}

func (s *ConfigService) GetByID(ctx context.Context, id string) (*domain.BookingConfig, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ConfigService) List(ctx context.Context, sportID string) ([]*domain.BookingConfig, error) {
	return s.repo.List(ctx, sportID)
}

// Update patches the stored config. The sport reference is immutable; the
// input type has no way to express a sport change.
func (s *ConfigService) Update(ctx context.Context, id string, input domain.UpdateConfigInput) (*domain.BookingConfig, error) {
	cfg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(cfg)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, cfg); err != nil {
		return nil, fmt.Errorf("update booking config: %w", err)
	}

	s.cache.Invalidate(ctx, cfg.SportID)
	return cfg, nil
}

// Preview computes the day schedule for the config's sport without touching
// the slots table, except for the booked overlay. Results are cached until
// the sport's configuration changes.
func (s *ConfigService) Preview(ctx context.Context, configID string, date domain.Date) (*domain.DaySchedule, error) {
	cfg, err := s.repo.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}
	return s.Schedule(ctx, cfg, date)
}

// Schedule is Preview keyed by sport: it gathers the engine input for one
// sport and date and returns the computed calendar.
func (s *ConfigService) Schedule(ctx context.Context, cfg *domain.BookingConfig, date domain.Date) (*domain.DaySchedule, error) {
	if cached, ok := s.cache.Get(ctx, cfg.SportID, date); ok {
		return cached, nil
	}

	sport, err := s.sportRepo.GetByID(ctx, cfg.SportID)
	if err != nil {
		return nil, fmt.Errorf("get sport: %w", err)
	}
	breaks, err := s.repo.ListBreakTimes(ctx, cfg.SportID)
	if err != nil {
		return nil, fmt.Errorf("list break times: %w", err)
	}
	blackouts, err := s.repo.ListBlackoutDates(ctx, cfg.SportID)
	if err != nil {
		return nil, fmt.Errorf("list blackout dates: %w", err)
	}
	booked, err := s.slotRepo.BookedStarts(ctx, cfg.SportID, date)
	if err != nil {
		return nil, fmt.Errorf("booked starts: %w", err)
	}

	schedule, err := slotgen.GenerateDay(slotgen.Input{
		Config:           cfg,
		BasePricePerHour: sport.PricePerHour,
		Breaks:           breaks,
		Blackouts:        blackouts,
		Booked:           booked,
		Date:             date,
		Today:            domain.Today(),
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cfg.SportID, date, schedule)
	return schedule, nil
}

// ScheduleForSport resolves the sport's config first; sports without one have
// no bookable calendar.
func (s *ConfigService) ScheduleForSport(ctx context.Context, sportID string, date domain.Date) (*domain.DaySchedule, error) {
	cfg, err := s.repo.GetBySport(ctx, sportID)
	if err != nil {
		return nil, err
	}
	return s.Schedule(ctx, cfg, date)
}

func (s *ConfigService) ListBreakTimes(ctx context.Context, sportID string) ([]domain.BreakTime, error) {
	return s.repo.ListBreakTimes(ctx, sportID)
}

func (s *ConfigService) CreateBreakTime(ctx context.Context, b *domain.BreakTime) (*domain.BreakTime, error) {
	if b.StartTime >= b.EndTime {
		return nil, fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}
	if _, err := s.sportRepo.GetByID(ctx, b.SportID); err != nil {
		return nil, fmt.Errorf("check sport: %w", err)
	}

	b.ID = uuid.New().String()
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	if err := s.repo.CreateBreakTime(ctx, b); err != nil {
		return nil, fmt.Errorf("create break time: %w", err)
	}

	s.cache.Invalidate(ctx, b.SportID)
	return b, nil
}

func (s *ConfigService) UpdateBreakTime(ctx context.Context, b *domain.BreakTime) error {
	if b.StartTime >= b.EndTime {
		return fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}
	if err := s.repo.UpdateBreakTime(ctx, b); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, b.SportID)
	return nil
}

func (s *ConfigService) DeleteBreakTime(ctx context.Context, id, sportID string) error {
	if err := s.repo.DeleteBreakTime(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, sportID)
	return nil
}

func (s *ConfigService) ListBlackoutDates(ctx context.Context, sportID string) ([]domain.BlackoutDate, error) {
	return s.repo.ListBlackoutDates(ctx, sportID)
}

func (s *ConfigService) CreateBlackoutDate(ctx context.Context, b *domain.BlackoutDate) (*domain.BlackoutDate, error) {
	if b.SportID != nil {
		if _, err := s.sportRepo.GetByID(ctx, *b.SportID); err != nil {
			return nil, fmt.Errorf("check sport: %w", err)
		}
	}

	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()
	if err := s.repo.CreateBlackoutDate(ctx, b); err != nil {
		return nil, fmt.Errorf("create blackout date: %w", err)
	}

	s.invalidateBlackout(ctx, b)
	return b, nil
}

func (s *ConfigService) DeleteBlackoutDate(ctx context.Context, id string) error {
	blackouts, err := s.repo.ListBlackoutDates(ctx, "")
	if err != nil {
		return fmt.Errorf("list blackout dates: %w", err)
	}
	var target *domain.BlackoutDate
	for i := range blackouts {
		if blackouts[i].ID == id {
			target = &blackouts[i]
			break
		}
	}

	if err = s.repo.DeleteBlackoutDate(ctx, id); err != nil {
		return err
	}
	if target != nil {
		s.invalidateBlackout(ctx, target)
	}
	return nil
}

// invalidateBlackout drops cached schedules affected by the blackout: one
// sport when it is scoped, every sport when it is global.
func (s *ConfigService) invalidateBlackout(ctx context.Context, b *domain.BlackoutDate) {
	if b.SportID != nil {
		s.cache.Invalidate(ctx, *b.SportID)
		return
	}
	sports, err := s.sportRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("failed to list sports for cache invalidation",
			logger.String("error", err.Error()),
		)
		return
	}
	for _, sp := range sports {
		s.cache.Invalidate(ctx, sp.ID)
	}
}
