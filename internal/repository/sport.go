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

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type SportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSportRepo(db *dbpg.DB) *SportRepository {
	return &SportRepository{db: db, strategy: defaultStrategy()}
}

func (r *SportRepository) Create(ctx context.Context, s *domain.Sport) error {
	query := `INSERT INTO sports (id, name, price_per_hour, description, max_players, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Name, s.PricePerHour, s.Description, s.MaxPlayers, s.IsActive, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSportExists
		}
		return fmt.Errorf("insert sport: %w", err)
	}
	return nil
}

func (r *SportRepository) GetByID(ctx context.Context, id string) (*domain.Sport, error) {
	query := `SELECT id, name, price_per_hour, description, max_players, is_active, created_at, updated_at
			  FROM sports
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get sport: %w", err)
	}

	var s domain.Sport
	if err = row.Scan(
		&s.ID, &s.Name, &s.PricePerHour, &s.Description,
		&s.MaxPlayers, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSportNotFound
		}
		return nil, fmt.Errorf("scan sport: %w", err)
	}
	return &s, nil
}

func (r *SportRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Sport, error) {
	query := `SELECT id, name, price_per_hour, description, max_players, is_active, created_at, updated_at
			  FROM sports`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	defer rows.Close()

	var res []*domain.Sport
	for rows.Next() {
		var s domain.Sport
		if err = rows.Scan(
			&s.ID, &s.Name, &s.PricePerHour, &s.Description,
			&s.MaxPlayers, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sport: %w", err)
		}
		res = append(res, &s)
	}
	return res, rows.Err()
}

func (r *SportRepository) Update(ctx context.Context, s *domain.Sport) error {
	query := `UPDATE sports
			  SET name = $2, price_per_hour = $3, description = $4, max_players = $5, is_active = $6, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Name, s.PricePerHour, s.Description, s.MaxPlayers, s.IsActive,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSportExists
		}
		return fmt.Errorf("update sport: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sport rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSportNotFound
	}
	return nil
}

func (r *SportRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sport: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sport rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSportNotFound
	}
	return nil
}
