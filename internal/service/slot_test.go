package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/service/ports/mocks"
)

func newSlotService(t *testing.T) (*SlotService, *mocks.MockSlotRepo, *mocks.MockSportRepo, *mocks.MockConfigRepo, *mocks.MockPreviewCache) {
	t.Helper()
	repo := mocks.NewMockSlotRepo(t)
	sportRepo := mocks.NewMockSportRepo(t)
	configRepo := mocks.NewMockConfigRepo(t)
	cache := mocks.NewMockPreviewCache(t)
	svc := NewSlotService(repo, sportRepo, configRepo, cache, newTestLogger(t))
	return svc, repo, sportRepo, configRepo, cache
}

func testSport() *domain.Sport {
	return &domain.Sport{
		ID:           "sp1",
		Name:         "Football",
		PricePerHour: decimal.NewFromInt(600),
		MaxPlayers:   10,
		IsActive:     true,
	}
}

func testConfig() *domain.BookingConfig {
	return &domain.BookingConfig{
		ID:                 "cfg1",
		SportID:            "sp1",
		OpensAt:            domain.NewClockTime(9, 0),
		ClosesAt:           domain.NewClockTime(12, 0),
		SlotDuration:       60,
		AdvanceBookingDays: 7,
		IsActive:           true,
	}
}

func TestSlotService_Create_Success(t *testing.T) {
	svc, repo, sportRepo, _, cache := newSlotService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	date := domain.Today().AddDays(1)
	slot, err := svc.Create(context.Background(), "sp1", date, domain.NewClockTime(10, 0), domain.NewClockTime(11, 30))

	require.NoError(t, err)
	assert.Equal(t, "Football", slot.SportName)
	assert.Equal(t, 10, slot.MaxPlayers)
	// 90 minutes at 600/hour
	assert.Equal(t, "900", slot.Price.String())
}

func TestSlotService_Create_InvalidTimes(t *testing.T) {
	svc, _, _, _, _ := newSlotService(t)

	date := domain.Today()
	_, err := svc.Create(context.Background(), "sp1", date, domain.NewClockTime(11, 0), domain.NewClockTime(10, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSlotService_Create_SportNotFound(t *testing.T) {
	svc, _, sportRepo, _, _ := newSlotService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSportNotFound)

	date := domain.Today()
	_, err := svc.Create(context.Background(), "missing", date, domain.NewClockTime(10, 0), domain.NewClockTime(11, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSportNotFound)
}

func TestSlotService_Delete_Booked(t *testing.T) {
	svc, repo, _, _, _ := newSlotService(t)

	slot := testSlot()
	slot.IsBooked = true
	repo.EXPECT().GetByID(mock.Anything, "sl1").Return(slot, nil)

	err := svc.Delete(context.Background(), "sl1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSlotService_Delete_Success(t *testing.T) {
	svc, repo, _, _, cache := newSlotService(t)

	repo.EXPECT().GetByID(mock.Anything, "sl1").Return(testSlot(), nil)
	repo.EXPECT().Delete(mock.Anything, "sl1").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	require.NoError(t, svc.Delete(context.Background(), "sl1"))
}

func TestSlotService_BulkGenerate_InvalidRange(t *testing.T) {
	svc, _, _, _, _ := newSlotService(t)

	start := domain.Today()
	_, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:   "sp1",
		StartDate: start,
		EndDate:   start.AddDays(-1),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestSlotService_BulkGenerate_RangeTooLong(t *testing.T) {
	svc, _, _, _, _ := newSlotService(t)

	start := domain.Today()
	_, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:   "sp1",
		StartDate: start,
		EndDate:   start.AddDays(91),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestSlotService_BulkGenerate_SingleDay(t *testing.T) {
	svc, repo, sportRepo, configRepo, cache := newSlotService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	configRepo.EXPECT().GetBySport(mock.Anything, "sp1").Return(testConfig(), nil)
	configRepo.EXPECT().ListBreakTimes(mock.Anything, "sp1").Return(nil, nil)
	configRepo.EXPECT().ListBlackoutDates(mock.Anything, "sp1").Return(nil, nil)
	repo.EXPECT().InsertBatch(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
			return slots, nil
		})
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	date := domain.Today().AddDays(1)
	result, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:   "sp1",
		StartDate: date,
		EndDate:   date,
	})

	require.NoError(t, err)
	// 09:00-12:00 with 60 minute slots
	assert.Equal(t, 3, result.CreatedCount)
	assert.Empty(t, result.SkippedDays)
	assert.Empty(t, result.FailedDays)
	assert.Equal(t, "600", result.Slots[0].Price.String())
}

func TestSlotService_BulkGenerate_SecondRunCreatesNothing(t *testing.T) {
	svc, repo, sportRepo, configRepo, _ := newSlotService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	configRepo.EXPECT().GetBySport(mock.Anything, "sp1").Return(testConfig(), nil)
	configRepo.EXPECT().ListBreakTimes(mock.Anything, "sp1").Return(nil, nil)
	configRepo.EXPECT().ListBlackoutDates(mock.Anything, "sp1").Return(nil, nil)
	// every candidate already exists, the conflict clause keeps inserts out
	repo.EXPECT().InsertBatch(mock.Anything, mock.Anything).Return([]*domain.Slot{}, nil)

	date := domain.Today().AddDays(1)
	result, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:   "sp1",
		StartDate: date,
		EndDate:   date,
	})

	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount)
	assert.Empty(t, result.FailedDays)
}

func TestSlotService_BulkGenerate_BlackoutSkipped(t *testing.T) {
	svc, _, sportRepo, configRepo, _ := newSlotService(t)

	date := domain.Today().AddDays(1)
	blackouts := []domain.BlackoutDate{{ID: "bd1", Date: date, Reason: "holiday"}}

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	configRepo.EXPECT().GetBySport(mock.Anything, "sp1").Return(testConfig(), nil)
	configRepo.EXPECT().ListBreakTimes(mock.Anything, "sp1").Return(nil, nil)
	configRepo.EXPECT().ListBlackoutDates(mock.Anything, "sp1").Return(blackouts, nil)

	result, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:   "sp1",
		StartDate: date,
		EndDate:   date,
	})

	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount)
	assert.Equal(t, []domain.Date{date}, result.SkippedDays)
}

func TestSlotService_BulkGenerate_FailedDayIsolated(t *testing.T) {
	svc, repo, sportRepo, configRepo, cache := newSlotService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	configRepo.EXPECT().GetBySport(mock.Anything, "sp1").Return(testConfig(), nil)
	configRepo.EXPECT().ListBreakTimes(mock.Anything, "sp1").Return(nil, nil)
	configRepo.EXPECT().ListBlackoutDates(mock.Anything, "sp1").Return(nil, nil)
	repo.EXPECT().InsertBatch(mock.Anything, mock.Anything).Return(nil, errors.New("deadlock")).Once()
	repo.EXPECT().InsertBatch(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
			return slots, nil
		}).Once()
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	start := domain.Today().AddDays(1)
	result, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:   "sp1",
		StartDate: start,
		EndDate:   start.AddDays(1),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.CreatedCount)
	assert.Equal(t, []domain.Date{start}, result.FailedDays)
}

func TestSlotService_BulkGenerate_ManualSlots(t *testing.T) {
	svc, repo, sportRepo, configRepo, cache := newSlotService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	configRepo.EXPECT().GetBySport(mock.Anything, "sp1").Return(testConfig(), nil)
	configRepo.EXPECT().ListBreakTimes(mock.Anything, "sp1").Return(nil, nil)
	configRepo.EXPECT().ListBlackoutDates(mock.Anything, "sp1").Return(nil, nil)
	repo.EXPECT().InsertBatch(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
			return slots, nil
		})
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	date := domain.Today().AddDays(1)
	result, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:   "sp1",
		StartDate: date,
		EndDate:   date,
		ManualSlots: []domain.ManualSlot{
			{StartTime: domain.NewClockTime(7, 0), EndTime: domain.NewClockTime(8, 30)},
			{StartTime: domain.NewClockTime(9, 0), EndTime: domain.NewClockTime(8, 0)}, // inverted, dropped
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, "900", result.Slots[0].Price.String())
}

func TestSlotService_BulkGenerate_Overrides(t *testing.T) {
	svc, repo, sportRepo, configRepo, cache := newSlotService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	configRepo.EXPECT().GetBySport(mock.Anything, "sp1").Return(testConfig(), nil)
	configRepo.EXPECT().ListBreakTimes(mock.Anything, "sp1").Return(nil, nil)
	configRepo.EXPECT().ListBlackoutDates(mock.Anything, "sp1").Return(nil, nil)

	var inserted []*domain.Slot
	repo.EXPECT().InsertBatch(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
			inserted = slots
			return slots, nil
		})
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	opens := domain.NewClockTime(14, 0)
	closes := domain.NewClockTime(16, 0)
	date := domain.Today().AddDays(1)

	result, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:   "sp1",
		StartDate: date,
		EndDate:   date,
		OpensAt:   &opens,
		ClosesAt:  &closes,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
	require.Len(t, inserted, 2)
	assert.Equal(t, opens, inserted[0].StartTime)
}

func TestSlotService_BulkGenerate_InvalidOverride(t *testing.T) {
	svc, _, sportRepo, configRepo, _ := newSlotService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	configRepo.EXPECT().GetBySport(mock.Anything, "sp1").Return(testConfig(), nil)

	badDuration := 45 // not an allowed duration
	date := domain.Today()
	_, err := svc.BulkGenerate(context.Background(), domain.BulkGenerateInput{
		SportID:      "sp1",
		StartDate:    date,
		EndDate:      date,
		SlotDuration: &badDuration,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
