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

const slotColumns = `sl.id, sl.sport_id, s.name, sl.date, sl.start_time, sl.end_time,
		sl.price, sl.max_players, sl.is_booked, sl.created_at, sl.updated_at`

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{db: db, strategy: defaultStrategy()}
}

func scanSlot(row interface{ Scan(...any) error }) (*domain.Slot, error) {
	var s domain.Slot
	err := row.Scan(
		&s.ID, &s.SportID, &s.SportName, &s.Date, &s.StartTime, &s.EndTime,
		&s.Price, &s.MaxPlayers, &s.IsBooked, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots sl
			  JOIN sports s ON s.id = sl.sport_id
			  WHERE sl.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}
	return s, nil
}

func (r *SlotRepository) List(ctx context.Context, f domain.SlotFilter) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots sl
			  JOIN sports s ON s.id = sl.sport_id
			  WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.SportID != "" {
		query += ` AND sl.sport_id = ` + arg(f.SportID)
	}
	if f.Date != nil {
		query += ` AND sl.date = ` + arg(*f.Date)
	}
	if f.StartDate != nil {
		query += ` AND sl.date >= ` + arg(*f.StartDate)
	}
	if f.EndDate != nil {
		query += ` AND sl.date <= ` + arg(*f.EndDate)
	}
	if f.AvailableOnly {
		query += ` AND NOT sl.is_booked AND sl.date >= CURRENT_DATE`
	}
	query += ` ORDER BY sl.date, sl.start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// Create is insert-if-absent on (sport, date, start_time): a concurrent
// duplicate is a conflict, not a second row.
func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `INSERT INTO slots (id, sport_id, date, start_time, end_time, price, max_players, is_booked, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $8)`
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.SportID, s.Date, s.StartTime, s.EndTime, s.Price, s.MaxPlayers, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateSlot
		}
		return fmt.Errorf("insert slot: %w", err)
	}
	return nil
}

// InsertBatch inserts the given slots for a single day, silently skipping
// the ones whose (sport, date, start_time) already exists. Returned slice
// holds only the rows actually created. ON CONFLICT DO NOTHING keeps
// concurrent bulk runs race-free without read-then-write.
func (r *SlotRepository) InsertBatch(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
	if len(slots) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO slots (id, sport_id, date, start_time, end_time, price, max_players, is_booked, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $8)
			  ON CONFLICT (sport_id, date, start_time) DO NOTHING
			  RETURNING id`
	now := time.Now().UTC()

	var created []*domain.Slot
	for _, s := range slots {
		var id string
		err := tx.QueryRowContext(ctx, query,
			s.ID, s.SportID, s.Date, s.StartTime, s.EndTime, s.Price, s.MaxPlayers, now,
		).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			continue // already there, leave it untouched
		}
		if err != nil {
			return nil, fmt.Errorf("insert slot %s %s: %w", s.Date, s.StartTime, err)
		}
		s.CreatedAt, s.UpdatedAt = now, now
		created = append(created, s)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit slots: %w", err)
	}
	return created, nil
}

// BookedStarts returns the start times of booked slots for one sport+date,
// as the overlay input for schedule computation.
func (r *SlotRepository) BookedStarts(ctx context.Context, sportID string, date domain.Date) (map[domain.ClockTime]bool, error) {
	query := `SELECT start_time
			  FROM slots
			  WHERE sport_id = $1 AND date = $2 AND is_booked`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sportID, date)
	if err != nil {
		return nil, fmt.Errorf("booked starts: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.ClockTime]bool)
	for rows.Next() {
		var t domain.ClockTime
		if err = rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan start time: %w", err)
		}
		res[t] = true
	}
	return res, rows.Err()
}

func (r *SlotRepository) Update(ctx context.Context, s *domain.Slot) error {
	query := `UPDATE slots
			  SET date = $2, start_time = $3, end_time = $4, price = $5, max_players = $6, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Date, s.StartTime, s.EndTime, s.Price, s.MaxPlayers,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateSlot
		}
		return fmt.Errorf("update slot: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}
