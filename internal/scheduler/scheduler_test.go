package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// runSweep starts the scheduler and blocks until ctx expires.
func runSweep(t *testing.T, canceller *mocks.MockBookingCanceller, interval, runFor time.Duration) {
	t.Helper()

	s := New(canceller, interval, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), runFor)
	defer cancel()
	s.Start(ctx)
}

func TestScheduler_ReleasesExpiredHolds(t *testing.T) {
	canceller := mocks.NewMockBookingCanceller(t)

	ticks := 0
	canceller.EXPECT().CancelExpired(mock.Anything).
		RunAndReturn(func(context.Context) ([]*domain.Booking, error) {
			ticks++
			return []*domain.Booking{
				{ID: "b1", SlotID: "sl1", UserID: "u1", Status: domain.BookingStatusCancelled},
				{ID: "b2", SlotID: "sl2", UserID: "u2", Status: domain.BookingStatusCancelled},
			}, nil
		})

	runSweep(t, canceller, 40*time.Millisecond, 100*time.Millisecond)

	assert.GreaterOrEqual(t, ticks, 2)
}

func TestScheduler_KeepsTickingAfterSweepError(t *testing.T) {
	canceller := mocks.NewMockBookingCanceller(t)

	canceller.EXPECT().CancelExpired(mock.Anything).
		Return(nil, errors.New("connection reset")).Once()
	canceller.EXPECT().CancelExpired(mock.Anything).
		Return(nil, nil)

	runSweep(t, canceller, 30*time.Millisecond, 110*time.Millisecond)

	// the first tick failed, the loop must survive it
	assert.GreaterOrEqual(t, len(canceller.Calls), 2)
}

func TestScheduler_NothingExpired(t *testing.T) {
	canceller := mocks.NewMockBookingCanceller(t)

	canceller.EXPECT().CancelExpired(mock.Anything).Return(nil, nil)

	runSweep(t, canceller, 40*time.Millisecond, 60*time.Millisecond)

	assert.GreaterOrEqual(t, len(canceller.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	canceller := mocks.NewMockBookingCanceller(t)
	s := New(canceller, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop on context cancel")
	}

	// interval never elapsed, so the canceller must not have been called
	assert.Empty(t, canceller.Calls)
}
