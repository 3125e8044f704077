package slotgen

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redball-academy/academy-booking/internal/domain"
)

// 2025-03-10 is a Monday, 2025-03-15 a Saturday.
var (
	monday   = domain.NewDate(2025, time.March, 10)
	saturday = domain.NewDate(2025, time.March, 15)
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func clock(h, m int) domain.ClockTime {
	return domain.NewClockTime(h, m)
}

func clockPtr(h, m int) *domain.ClockTime {
	c := domain.NewClockTime(h, m)
	return &c
}

func baseConfig() *domain.BookingConfig {
	return &domain.BookingConfig{
		ID:                     "cfg-1",
		SportID:                "sport-1",
		OpensAt:                clock(6, 0),
		ClosesAt:               clock(22, 0),
		SlotDuration:           60,
		BufferTime:             0,
		AdvanceBookingDays:     7,
		PeakPriceMultiplier:    dec("1.5"),
		WeekendPriceMultiplier: dec("2"),
		IsActive:               true,
	}
}

func baseInput(cfg *domain.BookingConfig) Input {
	return Input{
		Config:           cfg,
		BasePricePerHour: dec("500"),
		Date:             monday,
		Today:            monday,
	}
}

func TestGenerateDay_FullDaySixteenSlots(t *testing.T) {
	schedule, err := GenerateDay(baseInput(baseConfig()))
	require.NoError(t, err)

	assert.Equal(t, 16, schedule.TotalSlots)
	assert.Equal(t, 16, schedule.BookableSlots)
	assert.Equal(t, 0, schedule.BreakSlots)
	assert.False(t, schedule.IsBlackoutDate)
	require.Len(t, schedule.Slots, 16)

	assert.Equal(t, clock(6, 0), schedule.Slots[0].Time)
	assert.Equal(t, clock(21, 0), schedule.Slots[15].Time)
	assert.Equal(t, clock(22, 0), schedule.Slots[15].EndTime)

	// consecutive slots never overlap
	for i := 1; i < len(schedule.Slots); i++ {
		assert.GreaterOrEqual(t, schedule.Slots[i].Time, schedule.Slots[i-1].EndTime)
	}
}

func TestGenerateDay_Deterministic(t *testing.T) {
	in := baseInput(baseConfig())
	in.Breaks = []domain.BreakTime{{
		SportID: "sport-1", StartTime: clock(13, 0), EndTime: clock(14, 0),
		Reason: "maintenance", AppliesToWeekdays: true, IsActive: true,
	}}

	first, err := GenerateDay(in)
	require.NoError(t, err)
	second, err := GenerateDay(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateDay_BufferStepping(t *testing.T) {
	cfg := baseConfig()
	cfg.OpensAt = clock(9, 0)
	cfg.ClosesAt = clock(10, 45)
	cfg.SlotDuration = 30
	cfg.BufferTime = 15

	schedule, err := GenerateDay(baseInput(cfg))
	require.NoError(t, err)

	// 09:00-09:30 and 09:45-10:15 fit; 10:30-11:00 would run past close.
	require.Len(t, schedule.Slots, 2)
	assert.Equal(t, clock(9, 45), schedule.Slots[1].Time)
	assert.Equal(t, clock(10, 15), schedule.Slots[1].EndTime)
}

func TestGenerateDay_PartialRemainderDropped(t *testing.T) {
	cfg := baseConfig()
	cfg.OpensAt = clock(6, 0)
	cfg.ClosesAt = clock(7, 30)

	schedule, err := GenerateDay(baseInput(cfg))
	require.NoError(t, err)

	require.Len(t, schedule.Slots, 1)
	assert.Equal(t, clock(7, 0), schedule.Slots[0].EndTime)
}

func TestGenerateDay_BreakOverlay(t *testing.T) {
	in := baseInput(baseConfig())
	in.Breaks = []domain.BreakTime{{
		SportID: "sport-1", StartTime: clock(12, 30), EndTime: clock(13, 30),
		Reason: "pitch watering", AppliesToWeekdays: true, IsActive: true,
	}}

	schedule, err := GenerateDay(in)
	require.NoError(t, err)

	assert.Equal(t, 2, schedule.BreakSlots) // 12:00-13:00 and 13:00-14:00 overlap
	assert.Equal(t, 14, schedule.BookableSlots)

	noon := schedule.Slots[6]
	require.Equal(t, clock(12, 0), noon.Time)
	assert.True(t, noon.IsBreak)
	assert.False(t, noon.IsAvailable)
	assert.Equal(t, "pitch watering", noon.Reason)
}

func TestGenerateDay_BreakDayTypeApplicability(t *testing.T) {
	weekdayOnly := domain.BreakTime{
		SportID: "sport-1", StartTime: clock(12, 0), EndTime: clock(13, 0),
		Reason: "maintenance", AppliesToWeekdays: true, AppliesToWeekends: false,
		IsActive: true,
	}

	in := baseInput(baseConfig())
	in.Breaks = []domain.BreakTime{weekdayOnly}
	in.Date = saturday

	schedule, err := GenerateDay(in)
	require.NoError(t, err)
	assert.Equal(t, 0, schedule.BreakSlots, "weekday-only break must not apply on Saturday")
}

func TestGenerateDay_InactiveBreakIgnored(t *testing.T) {
	in := baseInput(baseConfig())
	in.Breaks = []domain.BreakTime{{
		SportID: "sport-1", StartTime: clock(12, 0), EndTime: clock(13, 0),
		Reason: "old break", AppliesToWeekdays: true, IsActive: false,
	}}

	schedule, err := GenerateDay(in)
	require.NoError(t, err)
	assert.Equal(t, 0, schedule.BreakSlots)
}

func TestGenerateDay_BlackoutShortCircuits(t *testing.T) {
	sportID := "sport-1"
	in := baseInput(baseConfig())
	in.Blackouts = []domain.BlackoutDate{{
		SportID: &sportID, Date: monday, Reason: "tournament",
	}}

	schedule, err := GenerateDay(in)
	require.NoError(t, err)

	assert.True(t, schedule.IsBlackoutDate)
	assert.Equal(t, "tournament", schedule.Reason)
	assert.Empty(t, schedule.Slots)
	assert.Equal(t, 0, schedule.TotalSlots)
}

func TestGenerateDay_GlobalBlackoutApplies(t *testing.T) {
	in := baseInput(baseConfig())
	in.Blackouts = []domain.BlackoutDate{{
		SportID: nil, Date: monday, Reason: "academy closed",
	}}

	schedule, err := GenerateDay(in)
	require.NoError(t, err)
	assert.True(t, schedule.IsBlackoutDate)
	assert.Equal(t, "academy closed", schedule.Reason)
}

func TestGenerateDay_OtherSportBlackoutIgnored(t *testing.T) {
	other := "sport-2"
	in := baseInput(baseConfig())
	in.Blackouts = []domain.BlackoutDate{{
		SportID: &other, Date: monday, Reason: "their tournament",
	}}

	schedule, err := GenerateDay(in)
	require.NoError(t, err)
	assert.False(t, schedule.IsBlackoutDate)
	assert.Equal(t, 16, schedule.BookableSlots)
}

func TestGenerateDay_AdvanceBookingWindow(t *testing.T) {
	cfg := baseConfig()
	cfg.AdvanceBookingDays = 3

	cases := []struct {
		name     string
		date     domain.Date
		bookable bool
	}{
		{"today", monday, true},
		{"last day of window", monday.AddDays(3), true},
		{"past window", monday.AddDays(4), false},
		{"yesterday", monday.AddDays(-1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput(cfg)
			in.Date = tc.date

			schedule, err := GenerateDay(in)
			require.NoError(t, err)

			if tc.bookable {
				assert.Equal(t, schedule.TotalSlots, schedule.BookableSlots)
			} else {
				assert.Equal(t, 0, schedule.BookableSlots)
				assert.Equal(t, 16, schedule.TotalSlots, "slots still listed, just not bookable")
			}
		})
	}
}

func TestGenerateDay_WeekendHours(t *testing.T) {
	cfg := baseConfig()
	cfg.DifferentWeekendTimings = true
	cfg.WeekendOpensAt = clockPtr(8, 0)
	cfg.WeekendClosesAt = clockPtr(20, 0)

	in := baseInput(cfg)
	in.Date = saturday

	schedule, err := GenerateDay(in)
	require.NoError(t, err)

	require.Len(t, schedule.Slots, 12)
	assert.Equal(t, clock(8, 0), schedule.Slots[0].Time)
	assert.Equal(t, clock(20, 0), schedule.Slots[11].EndTime)

	// weekday keeps the regular window
	weekday, err := GenerateDay(baseInput(cfg))
	require.NoError(t, err)
	assert.Len(t, weekday.Slots, 16)
}

func TestGenerateDay_BookedOverlay(t *testing.T) {
	in := baseInput(baseConfig())
	in.Booked = map[domain.ClockTime]bool{clock(9, 0): true}

	schedule, err := GenerateDay(in)
	require.NoError(t, err)

	booked := schedule.Slots[3]
	require.Equal(t, clock(9, 0), booked.Time)
	assert.True(t, booked.IsBooked)
	assert.False(t, booked.IsAvailable)
	assert.Equal(t, 15, schedule.BookableSlots)
}

func TestGenerateDay_ProRatedPrice(t *testing.T) {
	cfg := baseConfig()
	cfg.SlotDuration = 120

	schedule, err := GenerateDay(baseInput(cfg))
	require.NoError(t, err)

	require.NotEmpty(t, schedule.Slots)
	assert.True(t, schedule.Slots[0].Price.Equal(dec("1000")),
		"got %s", schedule.Slots[0].Price)
}

func TestGenerateDay_PeakPricing(t *testing.T) {
	cfg := baseConfig()
	cfg.PeakHourPricing = true
	cfg.PeakStartTime = clockPtr(18, 0)
	cfg.PeakEndTime = clockPtr(21, 0)

	schedule, err := GenerateDay(baseInput(cfg))
	require.NoError(t, err)

	var offPeak, peak domain.SlotPreview
	for _, s := range schedule.Slots {
		switch s.Time {
		case clock(10, 0):
			offPeak = s
		case clock(18, 0):
			peak = s
		}
	}

	assert.True(t, offPeak.Price.Equal(dec("500")), "got %s", offPeak.Price)
	assert.True(t, peak.Price.Equal(dec("750")), "got %s", peak.Price)
}

func TestGenerateDay_PeakAndWeekendCompose(t *testing.T) {
	cfg := baseConfig()
	cfg.SlotDuration = 120
	cfg.PeakHourPricing = true
	cfg.PeakStartTime = clockPtr(18, 0)
	cfg.PeakEndTime = clockPtr(21, 0)
	cfg.WeekendPricing = true

	in := baseInput(cfg)
	in.Date = saturday

	schedule, err := GenerateDay(in)
	require.NoError(t, err)

	var peak domain.SlotPreview
	for _, s := range schedule.Slots {
		if s.Time == clock(18, 0) {
			peak = s
		}
	}

	// 500 x 2h x 1.5 peak x 2 weekend
	assert.True(t, peak.Price.Equal(dec("3000")), "got %s", peak.Price)
}

func TestGenerateDay_TimeCategories(t *testing.T) {
	schedule, err := GenerateDay(baseInput(baseConfig()))
	require.NoError(t, err)

	for _, s := range schedule.Slots {
		switch {
		case s.Time < clock(12, 0):
			assert.Equal(t, domain.CategoryMorning, s.TimeCategory, "slot %s", s.Time)
		case s.Time < clock(17, 0):
			assert.Equal(t, domain.CategoryAfternoon, s.TimeCategory, "slot %s", s.Time)
		default:
			assert.Equal(t, domain.CategoryEvening, s.TimeCategory, "slot %s", s.Time)
		}
	}

	grouped := schedule.GroupedSlots
	assert.Len(t, grouped[domain.CategoryMorning], 6)
	assert.Len(t, grouped[domain.CategoryAfternoon], 5)
	assert.Len(t, grouped[domain.CategoryEvening], 5)
	assert.Equal(t, schedule.TotalSlots,
		len(grouped[domain.CategoryMorning])+len(grouped[domain.CategoryAfternoon])+len(grouped[domain.CategoryEvening]))
}

func TestGenerateDay_AvailabilityImpliesNotBookedNotBreak(t *testing.T) {
	in := baseInput(baseConfig())
	in.Breaks = []domain.BreakTime{{
		SportID: "sport-1", StartTime: clock(13, 0), EndTime: clock(14, 0),
		Reason: "maintenance", AppliesToWeekdays: true, IsActive: true,
	}}
	in.Booked = map[domain.ClockTime]bool{clock(7, 0): true, clock(19, 0): true}

	schedule, err := GenerateDay(in)
	require.NoError(t, err)

	for _, s := range schedule.Slots {
		if s.IsAvailable {
			assert.False(t, s.IsBooked, "slot %s", s.Time)
			assert.False(t, s.IsBreak, "slot %s", s.Time)
		}
	}
}

func TestGenerateDay_InvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.BookingConfig)
	}{
		{"opens after closes", func(c *domain.BookingConfig) {
			c.OpensAt = clock(22, 0)
			c.ClosesAt = clock(6, 0)
		}},
		{"duration not in enum", func(c *domain.BookingConfig) {
			c.SlotDuration = 45
		}},
		{"negative buffer", func(c *domain.BookingConfig) {
			c.BufferTime = -5
		}},
		{"weekend timings missing", func(c *domain.BookingConfig) {
			c.DifferentWeekendTimings = true
		}},
		{"peak window missing", func(c *domain.BookingConfig) {
			c.PeakHourPricing = true
		}},
		{"zero peak multiplier", func(c *domain.BookingConfig) {
			c.PeakHourPricing = true
			c.PeakStartTime = clockPtr(18, 0)
			c.PeakEndTime = clockPtr(21, 0)
			c.PeakPriceMultiplier = decimal.Zero
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseConfig()
			tc.mutate(cfg)

			_, err := GenerateDay(baseInput(cfg))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestTotalSlotsPerDay(t *testing.T) {
	cfg := baseConfig()
	assert.Equal(t, 16, cfg.TotalSlotsPerDay())

	cfg.SlotDuration = 120
	cfg.BufferTime = 30
	// 06:00..22:00, step 150min: starts 06:00 08:30 11:00 13:30 16:00 18:30
	assert.Equal(t, 6, cfg.TotalSlotsPerDay())
}
