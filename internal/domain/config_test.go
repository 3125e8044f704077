package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *BookingConfig {
	return &BookingConfig{
		SportID:            "sp1",
		OpensAt:            NewClockTime(6, 0),
		ClosesAt:           NewClockTime(22, 0),
		SlotDuration:       60,
		AdvanceBookingDays: 7,
		IsActive:           true,
	}
}

func TestBookingConfig_Validate(t *testing.T) {
	clock := func(h, m int) *ClockTime {
		ct := NewClockTime(h, m)
		return &ct
	}

	cases := []struct {
		name   string
		mutate func(*BookingConfig)
		ok     bool
	}{
		{"valid", func(*BookingConfig) {}, true},
		{"opens after closes", func(c *BookingConfig) {
			c.OpensAt = NewClockTime(22, 0)
			c.ClosesAt = NewClockTime(6, 0)
		}, false},
		{"duration not offered", func(c *BookingConfig) { c.SlotDuration = 45 }, false},
		{"negative buffer", func(c *BookingConfig) { c.BufferTime = -10 }, false},
		{"window not offered", func(c *BookingConfig) { c.AdvanceBookingDays = 10 }, false},
		{"weekend timings missing", func(c *BookingConfig) { c.DifferentWeekendTimings = true }, false},
		{"weekend timings inverted", func(c *BookingConfig) {
			c.DifferentWeekendTimings = true
			c.WeekendOpensAt = clock(20, 0)
			c.WeekendClosesAt = clock(8, 0)
		}, false},
		{"weekend timings valid", func(c *BookingConfig) {
			c.DifferentWeekendTimings = true
			c.WeekendOpensAt = clock(8, 0)
			c.WeekendClosesAt = clock(20, 0)
		}, true},
		{"peak window missing", func(c *BookingConfig) { c.PeakHourPricing = true }, false},
		{"peak multiplier zero", func(c *BookingConfig) {
			c.PeakHourPricing = true
			c.PeakStartTime = clock(17, 0)
			c.PeakEndTime = clock(21, 0)
		}, false},
		{"peak valid", func(c *BookingConfig) {
			c.PeakHourPricing = true
			c.PeakStartTime = clock(17, 0)
			c.PeakEndTime = clock(21, 0)
			c.PeakPriceMultiplier = decimal.NewFromFloat(1.5)
		}, true},
		{"weekend pricing without multiplier", func(c *BookingConfig) { c.WeekendPricing = true }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestBookingConfig_Window(t *testing.T) {
	weekendOpens := NewClockTime(8, 0)
	weekendCloses := NewClockTime(20, 0)

	cfg := validConfig()
	cfg.DifferentWeekendTimings = true
	cfg.WeekendOpensAt = &weekendOpens
	cfg.WeekendClosesAt = &weekendCloses

	saturday := NewDate(2026, time.September, 5)
	monday := NewDate(2026, time.September, 7)

	opens, closes := cfg.Window(saturday)
	assert.Equal(t, weekendOpens, opens)
	assert.Equal(t, weekendCloses, closes)

	opens, closes = cfg.Window(monday)
	assert.Equal(t, cfg.OpensAt, opens)
	assert.Equal(t, cfg.ClosesAt, closes)
}

func TestUpdateConfigInput_Apply(t *testing.T) {
	cfg := validConfig()
	cfg.ID = "cfg1"

	newCloses := NewClockTime(23, 0)
	newDuration := 120
	inactive := false

	UpdateConfigInput{
		ClosesAt:     &newCloses,
		SlotDuration: &newDuration,
		IsActive:     &inactive,
	}.Apply(cfg)

	assert.Equal(t, newCloses, cfg.ClosesAt)
	assert.Equal(t, 120, cfg.SlotDuration)
	assert.False(t, cfg.IsActive)
	// untouched fields survive
	assert.Equal(t, NewClockTime(6, 0), cfg.OpensAt)
	assert.Equal(t, "sp1", cfg.SportID)
}

func TestBreakTime_AppliesTo(t *testing.T) {
	saturday := NewDate(2026, time.September, 5)
	monday := NewDate(2026, time.September, 7)

	br := &BreakTime{AppliesToWeekdays: true, IsActive: true}
	assert.True(t, br.AppliesTo(monday))
	assert.False(t, br.AppliesTo(saturday))

	br.AppliesToWeekends = true
	assert.True(t, br.AppliesTo(saturday))

	br.IsActive = false
	assert.False(t, br.AppliesTo(monday))
}
