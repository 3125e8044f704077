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

const configColumns = `c.id, c.sport_id, s.name, c.opens_at, c.closes_at, c.slot_duration, c.buffer_time,
		c.advance_booking_days, c.min_booking_duration, c.max_booking_duration,
		c.different_weekend_timings, c.weekend_opens_at, c.weekend_closes_at,
		c.peak_hour_pricing, c.peak_start_time, c.peak_end_time, c.peak_price_multiplier,
		c.weekend_pricing, c.weekend_price_multiplier, c.is_active, c.created_at, c.updated_at`

type ConfigRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewConfigRepo(db *dbpg.DB) *ConfigRepository {
	return &ConfigRepository{db: db, strategy: defaultStrategy()}
}

func (r *ConfigRepository) Create(ctx context.Context, c *domain.BookingConfig) error {
	query := `INSERT INTO booking_configs (
				id, sport_id, opens_at, closes_at, slot_duration, buffer_time,
				advance_booking_days, min_booking_duration, max_booking_duration,
				different_weekend_timings, weekend_opens_at, weekend_closes_at,
				peak_hour_pricing, peak_start_time, peak_end_time, peak_price_multiplier,
				weekend_pricing, weekend_price_multiplier, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.SportID, c.OpensAt, c.ClosesAt, c.SlotDuration, c.BufferTime,
		c.AdvanceBookingDays, c.MinBookingDuration, c.MaxBookingDuration,
		c.DifferentWeekendTimings, c.WeekendOpensAt, c.WeekendClosesAt,
		c.PeakHourPricing, c.PeakStartTime, c.PeakEndTime, c.PeakPriceMultiplier,
		c.WeekendPricing, c.WeekendPriceMultiplier, c.IsActive, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrConfigExists
		}
		return fmt.Errorf("insert booking config: %w", err)
	}
	return nil
}

func (r *ConfigRepository) scanConfig(row interface{ Scan(...any) error }) (*domain.BookingConfig, error) {
	var (
		c domain.BookingConfig

		weekendOpens, weekendCloses sql.NullString
		peakStart, peakEnd          sql.NullString
	)
	err := row.Scan(
		&c.ID, &c.SportID, &c.SportName, &c.OpensAt, &c.ClosesAt, &c.SlotDuration, &c.BufferTime,
		&c.AdvanceBookingDays, &c.MinBookingDuration, &c.MaxBookingDuration,
		&c.DifferentWeekendTimings, &weekendOpens, &weekendCloses,
		&c.PeakHourPricing, &peakStart, &peakEnd, &c.PeakPriceMultiplier,
		&c.WeekendPricing, &c.WeekendPriceMultiplier, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("scan booking config: %w", err)
	}

	if c.WeekendOpensAt, err = nullClock(weekendOpens); err != nil {
		return nil, fmt.Errorf("scan weekend_opens_at: %w", err)
	}
	if c.WeekendClosesAt, err = nullClock(weekendCloses); err != nil {
		return nil, fmt.Errorf("scan weekend_closes_at: %w", err)
	}
	if c.PeakStartTime, err = nullClock(peakStart); err != nil {
		return nil, fmt.Errorf("scan peak_start_time: %w", err)
	}
	if c.PeakEndTime, err = nullClock(peakEnd); err != nil {
		return nil, fmt.Errorf("scan peak_end_time: %w", err)
	}
	return &c, nil
}

func nullClock(v sql.NullString) (*domain.ClockTime, error) {
	if !v.Valid {
		return nil, nil
	}
	parsed, err := domain.ParseClockTime(v.String)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (r *ConfigRepository) GetByID(ctx context.Context, id string) (*domain.BookingConfig, error) {
	query := `SELECT ` + configColumns + `
			  FROM booking_configs c
			  JOIN sports s ON s.id = c.sport_id
			  WHERE c.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking config: %w", err)
	}
	return r.scanConfig(row)
}

func (r *ConfigRepository) GetBySport(ctx context.Context, sportID string) (*domain.BookingConfig, error) {
	query := `SELECT ` + configColumns + `
			  FROM booking_configs c
			  JOIN sports s ON s.id = c.sport_id
			  WHERE c.sport_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, sportID)
	if err != nil {
		return nil, fmt.Errorf("get booking config by sport: %w", err)
	}
	return r.scanConfig(row)
}

func (r *ConfigRepository) List(ctx context.Context, sportID string) ([]*domain.BookingConfig, error) {
	query := `SELECT ` + configColumns + `
			  FROM booking_configs c
			  JOIN sports s ON s.id = c.sport_id`
	var args []any
	if sportID != "" {
		query += ` WHERE c.sport_id = $1`
		args = append(args, sportID)
	}
	query += ` ORDER BY s.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booking configs: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingConfig
	for rows.Next() {
		c, err := r.scanConfig(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *ConfigRepository) Update(ctx context.Context, c *domain.BookingConfig) error {
	query := `UPDATE booking_configs
			  SET opens_at = $2, closes_at = $3, slot_duration = $4, buffer_time = $5,
				  advance_booking_days = $6, min_booking_duration = $7, max_booking_duration = $8,
				  different_weekend_timings = $9, weekend_opens_at = $10, weekend_closes_at = $11,
				  peak_hour_pricing = $12, peak_start_time = $13, peak_end_time = $14, peak_price_multiplier = $15,
				  weekend_pricing = $16, weekend_price_multiplier = $17, is_active = $18, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.OpensAt, c.ClosesAt, c.SlotDuration, c.BufferTime,
		c.AdvanceBookingDays, c.MinBookingDuration, c.MaxBookingDuration,
		c.DifferentWeekendTimings, c.WeekendOpensAt, c.WeekendClosesAt,
		c.PeakHourPricing, c.PeakStartTime, c.PeakEndTime, c.PeakPriceMultiplier,
		c.WeekendPricing, c.WeekendPriceMultiplier, c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update booking config: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking config rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrConfigNotFound
	}
	return nil
}

// --- break times ---

func (r *ConfigRepository) ListBreakTimes(ctx context.Context, sportID string) ([]domain.BreakTime, error) {
	query := `SELECT id, sport_id, start_time, end_time, reason,
				  applies_to_weekdays, applies_to_weekends, is_active, created_at, updated_at
			  FROM break_times
			  WHERE sport_id = $1
			  ORDER BY start_time`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sportID)
	if err != nil {
		return nil, fmt.Errorf("list break times: %w", err)
	}
	defer rows.Close()

	var res []domain.BreakTime
	for rows.Next() {
		var b domain.BreakTime
		if err = rows.Scan(
			&b.ID, &b.SportID, &b.StartTime, &b.EndTime, &b.Reason,
			&b.AppliesToWeekdays, &b.AppliesToWeekends, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan break time: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func (r *ConfigRepository) CreateBreakTime(ctx context.Context, b *domain.BreakTime) error {
	query := `INSERT INTO break_times (id, sport_id, start_time, end_time, reason,
				  applies_to_weekdays, applies_to_weekends, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.SportID, b.StartTime, b.EndTime, b.Reason,
		b.AppliesToWeekdays, b.AppliesToWeekends, b.IsActive, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert break time: %w", err)
	}
	return nil
}

func (r *ConfigRepository) UpdateBreakTime(ctx context.Context, b *domain.BreakTime) error {
	query := `UPDATE break_times
			  SET start_time = $2, end_time = $3, reason = $4,
				  applies_to_weekdays = $5, applies_to_weekends = $6, is_active = $7, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.StartTime, b.EndTime, b.Reason,
		b.AppliesToWeekdays, b.AppliesToWeekends, b.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update break time: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("break time rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrValidation
	}
	return nil
}

func (r *ConfigRepository) DeleteBreakTime(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM break_times WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete break time: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("break time rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrValidation
	}
	return nil
}

// --- blackout dates ---

// ListBlackoutDates returns blackouts for one sport plus the global ones;
// with an empty sportID it returns everything.
func (r *ConfigRepository) ListBlackoutDates(ctx context.Context, sportID string) ([]domain.BlackoutDate, error) {
	query := `SELECT b.id, b.sport_id, COALESCE(s.name, ''), b.date, b.reason, b.created_at
			  FROM blackout_dates b
			  LEFT JOIN sports s ON s.id = b.sport_id`
	args := []any{}
	if sportID != "" {
		query += ` WHERE b.sport_id = $1 OR b.sport_id IS NULL`
		args = append(args, sportID)
	}
	query += ` ORDER BY b.date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blackout dates: %w", err)
	}
	defer rows.Close()

	var res []domain.BlackoutDate
	for rows.Next() {
		var b domain.BlackoutDate
		if err = rows.Scan(&b.ID, &b.SportID, &b.SportName, &b.Date, &b.Reason, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blackout date: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func (r *ConfigRepository) CreateBlackoutDate(ctx context.Context, b *domain.BlackoutDate) error {
	query := `INSERT INTO blackout_dates (id, sport_id, date, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	now := time.Now().UTC()
	b.CreatedAt = now
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, b.ID, b.SportID, b.Date, b.Reason, now)
	if err != nil {
		return fmt.Errorf("insert blackout date: %w", err)
	}
	return nil
}

func (r *ConfigRepository) DeleteBlackoutDate(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM blackout_dates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blackout date: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("blackout date rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrValidation
	}
	return nil
}
