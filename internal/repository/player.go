package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/redball-academy/academy-booking/internal/domain"
)

const playerColumns = `id, booking_id, name, email, phone,
		check_in_count, last_check_in, last_check_out, created_at`

type PlayerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPlayerRepo(db *dbpg.DB) *PlayerRepository {
	return &PlayerRepository{db: db, strategy: defaultStrategy()}
}

func scanPlayer(row interface{ Scan(...any) error }) (*domain.Player, error) {
	var p domain.Player
	var phone sql.NullString
	err := row.Scan(
		&p.ID, &p.BookingID, &p.Name, &p.Email, &phone,
		&p.CheckInCount, &p.LastCheckIn, &p.LastCheckOut, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Phone = phone.String
	return &p, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p *domain.Player) error {
	query := `INSERT INTO players (id, booking_id, name, email, phone, check_in_count, created_at)
			  VALUES ($1, $2, $3, $4, NULLIF($5, ''), 0, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.BookingID, p.Name, p.Email, p.Phone, p.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}
	return p, nil
}

func (r *PlayerRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Player, error) {
	query := `SELECT ` + playerColumns + `
			  FROM players
			  WHERE booking_id = $1
			  ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var res []*domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

// RecordCheck bumps the player's scan counter and writes the audit log in
// one transaction. The counter guard in the UPDATE makes a third scan on the
// same player fail with ErrCheckInLimit even under concurrent scans.
func (r *PlayerRepository) RecordCheck(ctx context.Context, playerID, location string) (*domain.Player, *domain.CheckInLog, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE players
			  SET check_in_count = check_in_count + 1,
			      last_check_in  = CASE WHEN check_in_count = 0 THEN now() ELSE last_check_in END,
			      last_check_out = CASE WHEN check_in_count = 1 THEN now() ELSE last_check_out END
			  WHERE id = $1 AND check_in_count < 2
			  RETURNING ` + playerColumns

	p, err := scanPlayer(tx.QueryRowContext(ctx, query, playerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			if err = tx.QueryRowContext(
				ctx, `SELECT EXISTS (SELECT 1 FROM players WHERE id = $1)`, playerID,
			).Scan(&exists); err != nil {
				return nil, nil, fmt.Errorf("check player: %w", err)
			}
			if exists {
				return nil, nil, domain.ErrCheckInLimit
			}
			return nil, nil, domain.ErrPlayerNotFound
		}
		return nil, nil, fmt.Errorf("record check: %w", err)
	}

	action := domain.CheckActionIn
	if p.CheckInCount == 2 {
		action = domain.CheckActionOut
	}
	log := &domain.CheckInLog{
		PlayerID:  playerID,
		Action:    action,
		Location:  location,
		Timestamp: time.Now().UTC(),
	}
	logQuery := `INSERT INTO check_in_logs (id, player_id, action, location, created_at)
				 VALUES (gen_random_uuid(), $1, $2, NULLIF($3, ''), $4)
				 RETURNING id`
	if err = tx.QueryRowContext(
		ctx, logQuery, log.PlayerID, log.Action, log.Location, log.Timestamp,
	).Scan(&log.ID); err != nil {
		return nil, nil, fmt.Errorf("insert check log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit check: %w", err)
	}
	return p, log, nil
}

func (r *PlayerRepository) ListLogs(ctx context.Context, playerID string) ([]*domain.CheckInLog, error) {
	query := `SELECT id, player_id, action, COALESCE(location, ''), created_at
			  FROM check_in_logs
			  WHERE player_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("list check logs: %w", err)
	}
	defer rows.Close()

	var res []*domain.CheckInLog
	for rows.Next() {
		var l domain.CheckInLog
		if err = rows.Scan(&l.ID, &l.PlayerID, &l.Action, &l.Location, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan check log: %w", err)
		}
		res = append(res, &l)
	}
	return res, rows.Err()
}
