package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockSlotRepo, *mocks.MockPreviewCache, *mocks.MockBookingNotifier) {
	t.Helper()
	repo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	cache := mocks.NewMockPreviewCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(repo, slotRepo, cache, notifier, 30*time.Minute, newTestLogger(t))
	return svc, repo, slotRepo, cache, notifier
}

func testSlot() *domain.Slot {
	return &domain.Slot{
		ID:         "sl1",
		SportID:    "sp1",
		SportName:  "Football",
		Date:       domain.Today().AddDays(1),
		StartTime:  domain.NewClockTime(10, 0),
		EndTime:    domain.NewClockTime(11, 0),
		Price:      decimal.NewFromInt(500),
		MaxPlayers: 10,
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, repo, slotRepo, cache, notifier := newBookingService(t)

	slot := testSlot()
	slotRepo.EXPECT().GetByID(mock.Anything, "sl1").Return(slot, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Book(context.Background(), "sl1", "user-7")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "sl1", booking.SlotID)
	assert.Equal(t, "user-7", booking.UserID)
	assert.NotEmpty(t, booking.ID)
	assert.True(t, booking.AmountPaid.IsZero())
	assert.True(t, slot.IsBooked)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_MissingUser(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.Book(context.Background(), "sl1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_SlotNotFound(t *testing.T) {
	svc, _, slotRepo, _, _ := newBookingService(t)

	slotRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSlotNotFound)

	_, err := svc.Book(context.Background(), "missing", "user-7")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestBookingService_Book_SlotAlreadyBooked(t *testing.T) {
	svc, _, slotRepo, _, _ := newBookingService(t)

	slot := testSlot()
	slot.IsBooked = true
	slotRepo.EXPECT().GetByID(mock.Anything, "sl1").Return(slot, nil)

	_, err := svc.Book(context.Background(), "sl1", "user-7")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestBookingService_Book_SlotInPast(t *testing.T) {
	svc, _, slotRepo, _, _ := newBookingService(t)

	slot := testSlot()
	slot.Date = domain.Today().AddDays(-1)
	slotRepo.EXPECT().GetByID(mock.Anything, "sl1").Return(slot, nil)

	_, err := svc.Book(context.Background(), "sl1", "user-7")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestBookingService_Book_CreateError(t *testing.T) {
	svc, repo, slotRepo, _, _ := newBookingService(t)

	slotRepo.EXPECT().GetByID(mock.Anything, "sl1").Return(testSlot(), nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotUnavailable)

	_, err := svc.Book(context.Background(), "sl1", "user-7")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	svc, repo, _, _, notifier := newBookingService(t)

	booking := &domain.Booking{
		ID:     "b1",
		SlotID: "sl1",
		UserID: "user-7",
		Status: domain.BookingStatusPending,
		Slot:   testSlot(),
	}
	amount := decimal.NewFromInt(450)

	repo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	repo.EXPECT().Confirm(mock.Anything, "b1", 30*time.Minute, amount).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, booking).Return()

	got, err := svc.Confirm(context.Background(), "b1", &amount)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
	assert.True(t, got.AmountPaid.Equal(amount))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_DefaultsToSlotPrice(t *testing.T) {
	svc, repo, _, _, notifier := newBookingService(t)

	slot := testSlot()
	booking := &domain.Booking{
		ID:     "b1",
		SlotID: "sl1",
		Status: domain.BookingStatusPending,
		Slot:   slot,
	}

	repo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	repo.EXPECT().Confirm(mock.Anything, "b1", 30*time.Minute, slot.Price).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, booking).Return()

	got, err := svc.Confirm(context.Background(), "b1", nil)

	require.NoError(t, err)
	assert.True(t, got.AmountPaid.Equal(slot.Price))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_NegativeAmount(t *testing.T) {
	svc, repo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Slot: testSlot()}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	amount := decimal.NewFromInt(-1)
	_, err := svc.Confirm(context.Background(), "b1", &amount)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Confirm_NotFound(t *testing.T) {
	svc, repo, _, _, _ := newBookingService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Confirm(context.Background(), "missing", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Confirm_NotPending(t *testing.T) {
	svc, repo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed, Slot: testSlot()}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	repo.EXPECT().Confirm(mock.Anything, "b1", 30*time.Minute, mock.Anything).Return(domain.ErrBookingNotPending)

	_, err := svc.Confirm(context.Background(), "b1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_Confirm_Expired(t *testing.T) {
	svc, repo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending, Slot: testSlot()}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	repo.EXPECT().Confirm(mock.Anything, "b1", 30*time.Minute, mock.Anything).Return(domain.ErrBookingExpired)

	_, err := svc.Confirm(context.Background(), "b1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingExpired)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, repo, _, cache, notifier := newBookingService(t)

	slot := testSlot()
	slot.IsBooked = true
	booking := &domain.Booking{
		ID:     "b1",
		SlotID: "sl1",
		Status: domain.BookingStatusConfirmed,
		Slot:   slot,
	}

	repo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	repo.EXPECT().Cancel(mock.Anything, "b1", "rain").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking).Return()

	got, err := svc.Cancel(context.Background(), "b1", "rain")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.Equal(t, "rain", got.CancellationReason)
	assert.False(t, slot.IsBooked)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, repo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	repo.EXPECT().Cancel(mock.Anything, "b1", "").Return(domain.ErrBookingCancelled)

	_, err := svc.Cancel(context.Background(), "b1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
}

func TestBookingService_CancelExpired_Success(t *testing.T) {
	svc, repo, _, cache, notifier := newBookingService(t)

	expired := []*domain.Booking{
		{ID: "b1", SlotID: "sl1", Status: domain.BookingStatusCancelled},
	}
	full := &domain.Booking{
		ID:     "b1",
		SlotID: "sl1",
		Status: domain.BookingStatusCancelled,
		Slot:   testSlot(),
	}

	repo.EXPECT().CancelExpired(mock.Anything, 30*time.Minute).Return(expired, nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(full, nil)
	cache.EXPECT().Invalidate(mock.Anything, "sp1").Return()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, full).Return()

	got, err := svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelExpired_Nothing(t *testing.T) {
	svc, repo, _, _, _ := newBookingService(t)

	repo.EXPECT().CancelExpired(mock.Anything, 30*time.Minute).Return(nil, nil)

	got, err := svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookingService_CancelExpired_RepoError(t *testing.T) {
	svc, repo, _, _, _ := newBookingService(t)

	repo.EXPECT().CancelExpired(mock.Anything, 30*time.Minute).Return(nil, errors.New("db down"))

	_, err := svc.CancelExpired(context.Background())

	require.Error(t, err)
}

func TestBookingService_List(t *testing.T) {
	svc, repo, _, _, _ := newBookingService(t)

	bookings := []*domain.Booking{{ID: "b1"}, {ID: "b2"}}
	repo.EXPECT().List(mock.Anything, "user-7").Return(bookings, nil)

	got, err := svc.List(context.Background(), "user-7")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
