package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/service/ports/mocks"
)

func newPlayerService(t *testing.T) (*PlayerService, *mocks.MockPlayerRepo, *mocks.MockBookingRepo) {
	t.Helper()
	repo := mocks.NewMockPlayerRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewPlayerService(repo, bookingRepo, newTestLogger(t))
	return svc, repo, bookingRepo
}

func confirmedBooking() *domain.Booking {
	slot := testSlot()
	slot.Date = domain.Today()
	slot.MaxPlayers = 2
	return &domain.Booking{
		ID:     "b1",
		SlotID: slot.ID,
		UserID: "user-7",
		Status: domain.BookingStatusConfirmed,
		Slot:   slot,
	}
}

func TestPlayerService_Create_Success(t *testing.T) {
	svc, repo, bookingRepo := newPlayerService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	repo.EXPECT().ListByBooking(mock.Anything, "b1").Return(nil, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	player, err := svc.Create(context.Background(), domain.CreatePlayerInput{
		BookingID: "b1",
		Name:      "Arjun",
		Email:     "arjun@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, player.ID)
	assert.Equal(t, "b1", player.BookingID)
	assert.Equal(t, domain.PlayerNotCheckedIn, player.Status())
}

func TestPlayerService_Create_MissingName(t *testing.T) {
	svc, _, _ := newPlayerService(t)

	_, err := svc.Create(context.Background(), domain.CreatePlayerInput{
		BookingID: "b1",
		Email:     "arjun@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPlayerService_Create_PendingBooking(t *testing.T) {
	svc, _, bookingRepo := newPlayerService(t)

	booking := confirmedBooking()
	booking.Status = domain.BookingStatusPending
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Create(context.Background(), domain.CreatePlayerInput{
		BookingID: "b1",
		Name:      "Arjun",
		Email:     "arjun@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentPending)
}

func TestPlayerService_Create_CancelledBooking(t *testing.T) {
	svc, _, bookingRepo := newPlayerService(t)

	booking := confirmedBooking()
	booking.Status = domain.BookingStatusCancelled
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Create(context.Background(), domain.CreatePlayerInput{
		BookingID: "b1",
		Name:      "Arjun",
		Email:     "arjun@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
}

func TestPlayerService_Create_BookingFull(t *testing.T) {
	svc, repo, bookingRepo := newPlayerService(t)

	existing := []*domain.Player{{ID: "p1"}, {ID: "p2"}}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	repo.EXPECT().ListByBooking(mock.Anything, "b1").Return(existing, nil)

	_, err := svc.Create(context.Background(), domain.CreatePlayerInput{
		BookingID: "b1",
		Name:      "Arjun",
		Email:     "arjun@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPlayerService_Scan_CheckIn(t *testing.T) {
	svc, repo, bookingRepo := newPlayerService(t)

	player := &domain.Player{ID: "p1", BookingID: "b1"}
	now := time.Now().UTC()
	checkedIn := &domain.Player{ID: "p1", BookingID: "b1", CheckInCount: 1, LastCheckIn: &now}
	log := &domain.CheckInLog{ID: "l1", PlayerID: "p1", Action: domain.CheckActionIn}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	repo.EXPECT().RecordCheck(mock.Anything, "p1", "main gate").Return(checkedIn, log, nil)

	gotPlayer, gotLog, err := svc.Scan(context.Background(), "p1", "main gate")

	require.NoError(t, err)
	assert.Equal(t, domain.CheckActionIn, gotLog.Action)
	assert.Equal(t, domain.PlayerCheckedIn, gotPlayer.Status())
}

func TestPlayerService_Scan_CheckOut(t *testing.T) {
	svc, repo, bookingRepo := newPlayerService(t)

	player := &domain.Player{ID: "p1", BookingID: "b1", CheckInCount: 1}
	checkedOut := &domain.Player{ID: "p1", BookingID: "b1", CheckInCount: 2}
	log := &domain.CheckInLog{ID: "l2", PlayerID: "p1", Action: domain.CheckActionOut}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	repo.EXPECT().RecordCheck(mock.Anything, "p1", "").Return(checkedOut, log, nil)

	gotPlayer, gotLog, err := svc.Scan(context.Background(), "p1", "")

	require.NoError(t, err)
	assert.Equal(t, domain.CheckActionOut, gotLog.Action)
	assert.Equal(t, domain.PlayerCheckedOut, gotPlayer.Status())
}

func TestPlayerService_Scan_WrongDay(t *testing.T) {
	svc, repo, bookingRepo := newPlayerService(t)

	booking := confirmedBooking()
	booking.Slot.Date = domain.Today().AddDays(1)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Player{ID: "p1", BookingID: "b1"}, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, _, err := svc.Scan(context.Background(), "p1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWrongDay)
}

func TestPlayerService_Scan_NotConfirmed(t *testing.T) {
	svc, repo, bookingRepo := newPlayerService(t)

	booking := confirmedBooking()
	booking.Status = domain.BookingStatusPending

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Player{ID: "p1", BookingID: "b1"}, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, _, err := svc.Scan(context.Background(), "p1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentPending)
}

func TestPlayerService_Scan_LimitReached(t *testing.T) {
	svc, repo, bookingRepo := newPlayerService(t)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Player{ID: "p1", BookingID: "b1", CheckInCount: 2}, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	repo.EXPECT().RecordCheck(mock.Anything, "p1", "").Return(nil, nil, domain.ErrCheckInLimit)

	_, _, err := svc.Scan(context.Background(), "p1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCheckInLimit)
}

func TestPlayerService_ListLogs_PlayerNotFound(t *testing.T) {
	svc, repo, _ := newPlayerService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPlayerNotFound)

	_, err := svc.ListLogs(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
