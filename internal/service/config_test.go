package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/service/ports/mocks"
)

func newConfigService(t *testing.T) (*ConfigService, *mocks.MockConfigRepo, *mocks.MockSportRepo, *mocks.MockSlotRepo, *mocks.MockPreviewCache) {
	t.Helper()
	repo := mocks.NewMockConfigRepo(t)
	sportRepo := mocks.NewMockSportRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	cache := mocks.NewMockPreviewCache(t)
	svc := NewConfigService(repo, sportRepo, slotRepo, cache, newTestLogger(t))
	return svc, repo, sportRepo, slotRepo, cache
}

func TestConfigService_Create_Success(t *testing.T) {
	svc, repo, sportRepo, _, cache := newConfigService(t)

	cfg := testConfig()
	cfg.ID = ""
	stored := testConfig()
	stored.SportName = "Football"

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	repo.EXPECT().Create(mock.Anything, cfg).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()
	repo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(stored, nil)

	got, err := svc.Create(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, "Football", got.SportName)
	assert.NotEmpty(t, cfg.ID)
}

func TestConfigService_Create_InvalidConfig(t *testing.T) {
	svc, _, _, _, _ := newConfigService(t)

	cfg := testConfig()
	cfg.SlotDuration = 45

	_, err := svc.Create(context.Background(), cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestConfigService_Create_SportNotFound(t *testing.T) {
	svc, _, sportRepo, _, _ := newConfigService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(nil, domain.ErrSportNotFound)

	_, err := svc.Create(context.Background(), testConfig())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSportNotFound)
}

func TestConfigService_Update_Success(t *testing.T) {
	svc, repo, _, _, cache := newConfigService(t)

	stored := testConfig()
	repo.EXPECT().GetByID(mock.Anything, "cfg1").Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	newCloses := domain.NewClockTime(20, 0)
	got, err := svc.Update(context.Background(), "cfg1", domain.UpdateConfigInput{
		ClosesAt: &newCloses,
	})

	require.NoError(t, err)
	assert.Equal(t, newCloses, got.ClosesAt)
	assert.Equal(t, "sp1", got.SportID) // sport reference untouched
}

func TestConfigService_Update_InvalidResult(t *testing.T) {
	svc, repo, _, _, _ := newConfigService(t)

	repo.EXPECT().GetByID(mock.Anything, "cfg1").Return(testConfig(), nil)

	// closing before opening
	newCloses := domain.NewClockTime(8, 0)
	_, err := svc.Update(context.Background(), "cfg1", domain.UpdateConfigInput{
		ClosesAt: &newCloses,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestConfigService_Schedule_CacheHit(t *testing.T) {
	svc, _, _, _, cache := newConfigService(t)

	date := domain.Today()
	cached := &domain.DaySchedule{Date: date, TotalSlots: 3}
	cache.EXPECT().Get(mock.Anything, "sp1", date).Return(cached, true)

	got, err := svc.Schedule(context.Background(), testConfig(), date)

	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestConfigService_Schedule_CacheMiss(t *testing.T) {
	svc, repo, sportRepo, slotRepo, cache := newConfigService(t)

	date := domain.Today()
	cache.EXPECT().Get(mock.Anything, "sp1", date).Return(nil, false)
	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	repo.EXPECT().ListBreakTimes(mock.Anything, "sp1").Return(nil, nil)
	repo.EXPECT().ListBlackoutDates(mock.Anything, "sp1").Return(nil, nil)
	slotRepo.EXPECT().BookedStarts(mock.Anything, "sp1", date).Return(
		map[domain.ClockTime]bool{domain.NewClockTime(9, 0): true}, nil)
	cache.EXPECT().Set(mock.Anything, "sp1", date, mock.Anything).Return()

	got, err := svc.Schedule(context.Background(), testConfig(), date)

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalSlots)
	assert.True(t, got.Slots[0].IsBooked)
	assert.False(t, got.Slots[0].IsAvailable)
}

func TestConfigService_Preview(t *testing.T) {
	svc, repo, _, _, cache := newConfigService(t)

	date := domain.Today().AddDays(2)
	cached := &domain.DaySchedule{Date: date}

	repo.EXPECT().GetByID(mock.Anything, "cfg1").Return(testConfig(), nil)
	cache.EXPECT().Get(mock.Anything, "sp1", date).Return(cached, true)

	got, err := svc.Preview(context.Background(), "cfg1", date)

	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestConfigService_Preview_NotFound(t *testing.T) {
	svc, repo, _, _, _ := newConfigService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrConfigNotFound)

	_, err := svc.Preview(context.Background(), "missing", domain.Today())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestConfigService_CreateBreakTime_InvalidTimes(t *testing.T) {
	svc, _, _, _, _ := newConfigService(t)

	_, err := svc.CreateBreakTime(context.Background(), &domain.BreakTime{
		SportID:   "sp1",
		StartTime: domain.NewClockTime(14, 0),
		EndTime:   domain.NewClockTime(13, 0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConfigService_CreateBreakTime_Success(t *testing.T) {
	svc, repo, sportRepo, _, cache := newConfigService(t)

	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	repo.EXPECT().CreateBreakTime(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	br, err := svc.CreateBreakTime(context.Background(), &domain.BreakTime{
		SportID:           "sp1",
		StartTime:         domain.NewClockTime(13, 0),
		EndTime:           domain.NewClockTime(14, 0),
		Reason:            "maintenance",
		AppliesToWeekdays: true,
		IsActive:          true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, br.ID)
	assert.False(t, br.CreatedAt.IsZero())
}

func TestConfigService_CreateBlackoutDate_Global(t *testing.T) {
	svc, repo, sportRepo, _, cache := newConfigService(t)

	sports := []*domain.Sport{{ID: "sp1"}, {ID: "sp2"}}

	repo.EXPECT().CreateBlackoutDate(mock.Anything, mock.Anything).Return(nil)
	sportRepo.EXPECT().List(mock.Anything, false).Return(sports, nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()
	cache.EXPECT().Invalidate(mock.Anything, "sp2").Return()

	bd, err := svc.CreateBlackoutDate(context.Background(), &domain.BlackoutDate{
		Date:   domain.Today().AddDays(5),
		Reason: "national holiday",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, bd.ID)
}

func TestConfigService_CreateBlackoutDate_Scoped(t *testing.T) {
	svc, repo, sportRepo, _, cache := newConfigService(t)

	sportID := "sp1"
	sportRepo.EXPECT().GetByID(mock.Anything, "sp1").Return(testSport(), nil)
	repo.EXPECT().CreateBlackoutDate(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	_, err := svc.CreateBlackoutDate(context.Background(), &domain.BlackoutDate{
		SportID: &sportID,
		Date:    domain.Today().AddDays(5),
	})

	require.NoError(t, err)
}

func TestConfigService_DeleteBlackoutDate(t *testing.T) {
	svc, repo, _, _, cache := newConfigService(t)

	sportID := "sp1"
	blackouts := []domain.BlackoutDate{
		{ID: "bd1", SportID: &sportID, Date: domain.Today()},
	}
	repo.EXPECT().ListBlackoutDates(mock.Anything, "").Return(blackouts, nil)
	repo.EXPECT().DeleteBlackoutDate(mock.Anything, "bd1").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()

	require.NoError(t, svc.DeleteBlackoutDate(context.Background(), "bd1"))
}
