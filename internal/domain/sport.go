package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sport struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Description  string          `json:"description"`
	MaxPlayers   int             `json:"max_players"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type CreateSportInput struct {
	Name         string
	PricePerHour decimal.Decimal
	Description  string
	MaxPlayers   int
}

type UpdateSportInput struct {
	Name         *string
	PricePerHour *decimal.Decimal
	Description  *string
	MaxPlayers   *int
	IsActive     *bool
}
