package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/metrics"
	"github.com/redball-academy/academy-booking/internal/service/ports"
)

type PlayerService struct {
	repo        ports.PlayerRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewPlayerService(repo ports.PlayerRepo, bookingRepo ports.BookingRepo, logger logger.Logger) *PlayerService {
	return &PlayerService{
		repo:        repo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create registers a player under a booking. Only confirmed bookings take
// players; pending ones may still expire, cancelled ones never happen.
func (s *PlayerService) Create(ctx context.Context, input domain.CreatePlayerInput) (*domain.Player, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	switch booking.Status {
	case domain.BookingStatusConfirmed:
	case domain.BookingStatusPending:
		return nil, domain.ErrPaymentPending
	default:
		return nil, domain.ErrBookingCancelled
	}

	if booking.Slot != nil {
		players, err := s.repo.ListByBooking(ctx, input.BookingID)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		if len(players) >= booking.Slot.MaxPlayers {
			return nil, fmt.Errorf("%w: booking already has %d players", domain.ErrValidation, booking.Slot.MaxPlayers)
		}
	}

	player := &domain.Player{
		ID:        uuid.New().String(),
		BookingID: input.BookingID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.repo.Create(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		logger.String("player_id", player.ID),
		logger.String("booking_id", input.BookingID),
	)
	return player, nil
}

func (s *PlayerService) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PlayerService) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Player, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.repo.ListByBooking(ctx, bookingID)
}

// Scan runs the two-step attendance machine: first scan on the booking date
// checks the player in, the second checks them out, a third is rejected.
// Scans on any other date are rejected outright.
func (s *PlayerService) Scan(ctx context.Context, playerID, location string) (*domain.Player, *domain.CheckInLog, error) {
	player, err := s.repo.GetByID(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, player.BookingID)
	if err != nil {
		return nil, nil, err
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, nil, domain.ErrPaymentPending
	}
	if booking.Slot != nil && !booking.Slot.Date.Equal(domain.Today().Time) {
		return nil, nil, domain.ErrWrongDay
	}

	player, log, err := s.repo.RecordCheck(ctx, playerID, location)
	if err != nil {
		return nil, nil, err
	}

	metrics.CheckInScans.WithLabelValues(string(log.Action)).Inc()
	s.logger.Info("player scanned",
		logger.String("player_id", playerID),
		logger.String("action", string(log.Action)),
	)
	return player, log, nil
}

func (s *PlayerService) ListLogs(ctx context.Context, playerID string) ([]*domain.CheckInLog, error) {
	if _, err := s.repo.GetByID(ctx, playerID); err != nil {
		return nil, err
	}
	return s.repo.ListLogs(ctx, playerID)
}
