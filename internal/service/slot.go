package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/metrics"
	"github.com/redball-academy/academy-booking/internal/service/ports"
	"github.com/redball-academy/academy-booking/internal/slotgen"
)

const maxBulkRangeDays = 90

type SlotService struct {
	repo       ports.SlotRepo
	sportRepo  ports.SportRepo
	configRepo ports.ConfigRepo
	cache      ports.PreviewCache
	logger     logger.Logger
}

func NewSlotService(
	repo ports.SlotRepo,
	sportRepo ports.SportRepo,
	configRepo ports.ConfigRepo,
	cache ports.PreviewCache,
	logger logger.Logger,
) *SlotService {
	return &SlotService{
		repo:       repo,
		sportRepo:  sportRepo,
		configRepo: configRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (s *SlotService) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SlotService) List(ctx context.Context, f domain.SlotFilter) ([]*domain.Slot, error) {
	return s.repo.List(ctx, f)
}

// Create persists one manual slot priced like the engine would price it.
func (s *SlotService) Create(ctx context.Context, sportID string, date domain.Date, start, end domain.ClockTime) (*domain.Slot, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}

	sport, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("check sport: %w", err)
	}

	slot := &domain.Slot{
		ID:         uuid.New().String(),
		SportID:    sportID,
		SportName:  sport.Name,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Price:      manualSlotPrice(sport, start, end),
		MaxPlayers: sport.MaxPlayers,
	}

	if err = s.repo.Create(ctx, slot); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sportID)
	return slot, nil
}

func (s *SlotService) Update(ctx context.Context, slot *domain.Slot) error {
	if slot.StartTime >= slot.EndTime {
		return fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}
	if err := s.repo.Update(ctx, slot); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, slot.SportID)
	return nil
}

func (s *SlotService) Delete(ctx context.Context, id string) error {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slot.IsBooked {
		return fmt.Errorf("%w: slot has an active booking", domain.ErrValidation)
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, slot.SportID)
	return nil
}

// BulkGenerate materializes slots over a date range. Each day is persisted
// independently: a failing day is reported in the result, the rest of the
// range still commits. Existing (sport, date, start_time) rows are skipped,
// so re-running the same range is safe.
func (s *SlotService) BulkGenerate(ctx context.Context, input domain.BulkGenerateInput) (*domain.BulkGenerateResult, error) {
	if input.EndDate.Before(input.StartDate.Time) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", domain.ErrInvalidRange)
	}
	if input.StartDate.DaysUntil(input.EndDate) > maxBulkRangeDays {
		return nil, fmt.Errorf("%w: range longer than %d days", domain.ErrInvalidRange, maxBulkRangeDays)
	}

	sport, err := s.sportRepo.GetByID(ctx, input.SportID)
	if err != nil {
		return nil, fmt.Errorf("check sport: %w", err)
	}
	cfg, err := s.configRepo.GetBySport(ctx, input.SportID)
	if err != nil {
		return nil, fmt.Errorf("get booking config: %w", err)
	}
	applyOverrides(cfg, input)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	breaks, err := s.configRepo.ListBreakTimes(ctx, input.SportID)
	if err != nil {
		return nil, fmt.Errorf("list break times: %w", err)
	}
	blackouts, err := s.configRepo.ListBlackoutDates(ctx, input.SportID)
	if err != nil {
		return nil, fmt.Errorf("list blackout dates: %w", err)
	}

	result := &domain.BulkGenerateResult{Slots: []*domain.Slot{}}
	today := domain.Today()

	for date := input.StartDate; !date.After(input.EndDate.Time); date = date.AddDays(1) {
		schedule, err := slotgen.GenerateDay(slotgen.Input{
			Config:           cfg,
			BasePricePerHour: sport.PricePerHour,
			Breaks:           breaks,
			Blackouts:        blackouts,
			Date:             date,
			Today:            today,
		})
		if err != nil {
			return nil, err
		}
		if schedule.IsBlackoutDate {
			result.SkippedDays = append(result.SkippedDays, date)
			continue
		}

		var candidates []*domain.Slot
		if len(input.ManualSlots) > 0 {
			candidates = manualCandidates(sport, input.SportID, date, input.ManualSlots)
		} else {
			candidates = scheduleCandidates(sport, input.SportID, date, schedule)
		}
		if len(candidates) == 0 {
			continue
		}

		created, err := s.repo.InsertBatch(ctx, candidates)
		if err != nil {
			s.logger.Error("bulk slot insert failed for day",
				logger.String("sport_id", input.SportID),
				logger.String("date", date.String()),
				logger.String("error", err.Error()),
			)
			result.FailedDays = append(result.FailedDays, date)
			continue
		}
		result.Slots = append(result.Slots, created...)
		result.CreatedCount += len(created)
	}

	if result.CreatedCount > 0 {
		metrics.SlotsGenerated.Add(float64(result.CreatedCount))
		s.cache.Invalidate(ctx, input.SportID)
	}

	s.logger.Info("bulk slot generation finished",
		logger.String("sport_id", input.SportID),
		logger.Int("created", result.CreatedCount),
		logger.Int("skipped_days", len(result.SkippedDays)),
		logger.Int("failed_days", len(result.FailedDays)),
	)
	return result, nil
}

// scheduleCandidates turns a computed day schedule into persistable rows.
// Break intervals never materialize; booked and out-of-window ones do, since
// the stored calendar covers the whole range, not just what is bookable now.
func scheduleCandidates(sport *domain.Sport, sportID string, date domain.Date, schedule *domain.DaySchedule) []*domain.Slot {
	var res []*domain.Slot
	for _, p := range schedule.Slots {
		if p.IsBreak {
			continue
		}
		res = append(res, &domain.Slot{
			ID:         uuid.New().String(),
			SportID:    sportID,
			SportName:  sport.Name,
			Date:       date,
			StartTime:  p.Time,
			EndTime:    p.EndTime,
			Price:      p.Price,
			MaxPlayers: sport.MaxPlayers,
		})
	}
	return res
}

func manualCandidates(sport *domain.Sport, sportID string, date domain.Date, manual []domain.ManualSlot) []*domain.Slot {
	var res []*domain.Slot
	for _, m := range manual {
		if m.StartTime >= m.EndTime {
			continue
		}
		res = append(res, &domain.Slot{
			ID:         uuid.New().String(),
			SportID:    sportID,
			SportName:  sport.Name,
			Date:       date,
			StartTime:  m.StartTime,
			EndTime:    m.EndTime,
			Price:      manualSlotPrice(sport, m.StartTime, m.EndTime),
			MaxPlayers: sport.MaxPlayers,
		})
	}
	return res
}

func manualSlotPrice(sport *domain.Sport, start, end domain.ClockTime) decimal.Decimal {
	minutes := int64(end - start)
	return sport.PricePerHour.
		Mul(decimal.NewFromInt(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(2)
}

func applyOverrides(cfg *domain.BookingConfig, input domain.BulkGenerateInput) {
	if input.OpensAt != nil {
		cfg.OpensAt = *input.OpensAt
	}
	if input.ClosesAt != nil {
		cfg.ClosesAt = *input.ClosesAt
	}
	if input.SlotDuration != nil {
		cfg.SlotDuration = *input.SlotDuration
	}
	if input.BufferTime != nil {
		cfg.BufferTime = *input.BufferTime
	}
	if input.WeekendOpensAt != nil {
		cfg.DifferentWeekendTimings = true
		cfg.WeekendOpensAt = input.WeekendOpensAt
	}
	if input.WeekendClosesAt != nil {
		cfg.DifferentWeekendTimings = true
		cfg.WeekendClosesAt = input.WeekendClosesAt
	}
}
