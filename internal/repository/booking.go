package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/redball-academy/academy-booking/internal/domain"
)

const bookingColumns = `b.id, b.slot_id, b.user_id, b.status, b.amount_paid,
		COALESCE(b.cancellation_reason, ''), b.created_at, b.updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{db: db, strategy: defaultStrategy()}
}

// Create takes the slot and inserts the pending booking in one transaction.
// The conditional UPDATE is the race arbiter: of two concurrent requests for
// the same slot exactly one flips is_booked and wins.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	takeQuery := `UPDATE slots
				  SET is_booked = TRUE, updated_at = now()
				  WHERE id = $1 AND NOT is_booked AND date >= CURRENT_DATE`
	res, err := tx.ExecContext(ctx, takeQuery, b.SlotID)
	if err != nil {
		return fmt.Errorf("take slot: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		if err = tx.QueryRowContext(
			ctx, `SELECT EXISTS (SELECT 1 FROM slots WHERE id = $1)`, b.SlotID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if !exists {
			return domain.ErrSlotNotFound
		}
		return domain.ErrSlotUnavailable
	}

	query := `INSERT INTO bookings (id, slot_id, user_id, status, amount_paid, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.SlotID,
		b.UserID, b.Status, b.AmountPaid, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotUnavailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, ` + slotColumns + `
			  FROM bookings b
			  JOIN slots sl ON sl.id = b.slot_id
			  JOIN sports s ON s.id = sl.sport_id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBookingWithSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return b, nil
}

func scanBookingWithSlot(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	var s domain.Slot
	err := row.Scan(
		&b.ID, &b.SlotID, &b.UserID, &b.Status, &b.AmountPaid,
		&b.CancellationReason, &b.CreatedAt, &b.UpdatedAt,
		&s.ID, &s.SportID, &s.SportName, &s.Date, &s.StartTime, &s.EndTime,
		&s.Price, &s.MaxPlayers, &s.IsBooked, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Slot = &s
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, ` + slotColumns + `
			  FROM bookings b
			  JOIN slots sl ON sl.id = b.slot_id
			  JOIN sports s ON s.id = sl.sport_id`
	var args []any
	if userID != "" {
		query += ` WHERE b.user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBookingWithSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

// Confirm promotes a pending booking within its hold window. Status and TTL
// are checked inside the UPDATE itself; the follow-up read only names the
// reason when nothing matched.
func (r *BookingRepository) Confirm(ctx context.Context, id string, holdTTL time.Duration, amountPaid decimal.Decimal) error {
	query := `UPDATE bookings
			  SET status = $2, amount_paid = $3, updated_at = now()
			  WHERE id = $1
			    AND status = $4
			    AND created_at + make_interval(secs => $5) >= now()`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		domain.BookingStatusConfirmed, amountPaid,
		domain.BookingStatusPending, holdTTL.Seconds(),
	)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var status string
		var createdAt time.Time
		checkQuery := `SELECT status, created_at FROM bookings WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if err != nil {
			return fmt.Errorf("check booking: %w", err)
		}
		if err = row.Scan(&status, &createdAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("scan booking status: %w", err)
		}
		if status != string(domain.BookingStatusPending) {
			return domain.ErrBookingNotPending
		}
		if time.Since(createdAt) > holdTTL {
			return domain.ErrBookingExpired
		}
		return domain.ErrBookingNotFound
	}

	return nil
}

// Cancel marks the booking cancelled and re-opens its slot atomically.
func (r *BookingRepository) Cancel(ctx context.Context, id, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, cancellation_reason = NULLIF($3, ''), updated_at = now()
			  WHERE id = $1 AND status = ANY($4)
			  RETURNING slot_id`
	var slotID string
	err = tx.QueryRowContext(
		ctx, query, id,
		domain.BookingStatusCancelled, reason, pq.Array(domain.ActiveStatuses),
	).Scan(&slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			if err = tx.QueryRowContext(
				ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id,
			).Scan(&exists); err != nil {
				return fmt.Errorf("check booking: %w", err)
			}
			if exists {
				return domain.ErrBookingCancelled
			}
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("cancel booking: %w", err)
	}

	reopenQuery := `UPDATE slots SET is_booked = FALSE, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, reopenQuery, slotID); err != nil {
		return fmt.Errorf("reopen slot: %w", err)
	}

	return tx.Commit()
}

// CancelExpired releases pending bookings older than the hold TTL and
// re-opens their slots in the same transaction.
func (r *BookingRepository) CancelExpired(ctx context.Context, holdTTL time.Duration) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, cancellation_reason = 'payment hold expired', updated_at = now()
			  WHERE status = $1 AND created_at + make_interval(secs => $3) < now()
			  RETURNING id, slot_id, user_id, status, amount_paid,
			            COALESCE(cancellation_reason, ''), created_at, updated_at`

	rows, err := tx.QueryContext(
		ctx, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		holdTTL.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	var slotIDs []string
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.SlotID, &b.UserID, &b.Status, &b.AmountPaid,
			&b.CancellationReason, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, &b)
		slotIDs = append(slotIDs, b.SlotID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(slotIDs) > 0 {
		reopenQuery := `UPDATE slots SET is_booked = FALSE, updated_at = now() WHERE id = ANY($1)`
		if _, err = tx.ExecContext(ctx, reopenQuery, pq.Array(slotIDs)); err != nil {
			return nil, fmt.Errorf("reopen slots: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel expired: %w", err)
	}
	return res, nil
}

func (r *BookingRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `SELECT
				(SELECT COUNT(*) FROM bookings),
				(SELECT COUNT(*) FROM bookings WHERE status = ANY($1)),
				(SELECT COALESCE(SUM(amount_paid), 0) FROM bookings WHERE status = $2),
				(SELECT COUNT(*) FROM players),
				(SELECT COUNT(DISTINCT player_id) FROM check_in_logs
				   WHERE action = 'IN' AND created_at::date = CURRENT_DATE),
				(SELECT COUNT(*) FROM slots WHERE NOT is_booked AND date >= CURRENT_DATE)`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		pq.Array(domain.ActiveStatuses), domain.BookingStatusConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	var st domain.DashboardStats
	if err = row.Scan(
		&st.TotalBookings, &st.ActiveBookings, &st.TotalRevenue,
		&st.TotalPlayers, &st.CheckedInToday, &st.AvailableSlots,
	); err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}
	return &st, nil
}
