package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/metrics"
	"github.com/redball-academy/academy-booking/internal/service/ports"
)

type BookingService struct {
	repo     ports.BookingRepo
	slotRepo ports.SlotRepo
	cache    ports.PreviewCache
	notifier ports.BookingNotifier
	holdTTL  time.Duration
	logger   logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	slotRepo ports.SlotRepo,
	cache ports.PreviewCache,
	notifier ports.BookingNotifier,
	holdTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		slotRepo: slotRepo,
		cache:    cache,
		notifier: notifier,
		holdTTL:  holdTTL,
		logger:   logger,
	}
}

// Book places a pending hold on the slot. The repository arbitrates
// concurrent requests; whoever loses gets ErrSlotUnavailable.
func (s *BookingService) Book(ctx context.Context, slotID, userID string) (*domain.Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if !slot.IsAvailable(domain.Today()) {
		return nil, domain.ErrSlotUnavailable
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		SlotID:     slotID,
		UserID:     userID,
		Status:     domain.BookingStatusPending,
		AmountPaid: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.Slot = slot
	slot.IsBooked = true

	metrics.BookingsCreated.Inc()
	s.cache.Invalidate(ctx, slot.SportID)
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("slot_id", slotID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.repo.List(ctx, userID)
}

// Confirm settles the hold. The amount defaults to the slot price when the
// caller does not report what was actually collected.
func (s *BookingService) Confirm(ctx context.Context, id string, amountPaid *decimal.Decimal) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	amount := booking.Slot.Price
	if amountPaid != nil {
		if amountPaid.IsNegative() {
			return nil, fmt.Errorf("%w: amount_paid must not be negative", domain.ErrValidation)
		}
		amount = *amountPaid
	}

	if err = s.repo.Confirm(ctx, id, s.holdTTL, amount); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusConfirmed
	booking.AmountPaid = amount

	metrics.BookingsConfirmed.Inc()
	s.logger.Info("booking confirmed",
		logger.String("booking_id", id),
		logger.String("user_id", booking.UserID),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Cancel releases the slot back into the bookable pool.
func (s *BookingService) Cancel(ctx context.Context, id, reason string) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.repo.Cancel(ctx, id, reason); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCancelled
	booking.CancellationReason = reason
	if booking.Slot != nil {
		booking.Slot.IsBooked = false
		s.cache.Invalidate(ctx, booking.Slot.SportID)
	}

	metrics.BookingsCancelled.Inc()
	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.String("reason", reason),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// CancelExpired is the scheduler entry point: pending holds past the TTL are
// released in bulk.
func (s *BookingService) CancelExpired(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.repo.CancelExpired(ctx, s.holdTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		metrics.BookingsExpired.Add(float64(len(cancelled)))
		s.logger.Info("expired bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		full, err := s.repo.GetByID(ctx, b.ID)
		if err != nil {
			s.logger.Error("failed to load booking for cancel notification",
				logger.String("booking_id", b.ID),
			)
			continue
		}
		if full.Slot != nil {
			s.cache.Invalidate(ctx, full.Slot.SportID)
		}
		s.notifier.NotifyBookingCancelled(ctx, full)
	}
}

func (s *BookingService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.repo.Stats(ctx)
}
