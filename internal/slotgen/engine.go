// Package slotgen computes the bookable calendar for a sport: candidate
// slot enumeration from a booking configuration, break/blackout/booked
// overlays and pricing. It is pure; persistence stays in the service layer.
package slotgen

import (
	"github.com/shopspring/decimal"

	"github.com/redball-academy/academy-booking/internal/domain"
)

// Category boundaries. The admin UI groups slots into morning / afternoon /
// evening; the exact cutoffs are a presentation default, not business law.
var (
	MorningEndsAt   = domain.NewClockTime(12, 0)
	AfternoonEndsAt = domain.NewClockTime(17, 0)
)

var minutesPerHour = decimal.NewFromInt(60)

// Input carries everything GenerateDay needs. Booked holds the start times
// of persisted slots that are already consumed by a booking on Date.
type Input struct {
	Config           *domain.BookingConfig
	BasePricePerHour decimal.Decimal
	Breaks           []domain.BreakTime
	Blackouts        []domain.BlackoutDate
	Booked           map[domain.ClockTime]bool
	Date             domain.Date
	Today            domain.Date
}

// GenerateDay deterministically computes the slot schedule for a single
// date. Running it twice with the same input yields the same schedule.
func GenerateDay(in Input) (*domain.DaySchedule, error) {
	if err := in.Config.Validate(); err != nil {
		return nil, err
	}

	schedule := &domain.DaySchedule{
		Date:  in.Date,
		Slots: []domain.SlotPreview{},
		GroupedSlots: map[domain.TimeCategory][]domain.SlotPreview{
			domain.CategoryMorning:   {},
			domain.CategoryAfternoon: {},
			domain.CategoryEvening:   {},
		},
	}

	// A blackout wins over everything else: no enumeration at all.
	if blackout := matchBlackout(in.Blackouts, in.Config.SportID, in.Date); blackout != nil {
		schedule.IsBlackoutDate = true
		schedule.Reason = blackout.Reason
		return schedule, nil
	}

	withinWindow := !in.Date.Before(in.Today.Time) &&
		in.Today.DaysUntil(in.Date) <= in.Config.AdvanceBookingDays

	opens, closes := in.Config.Window(in.Date)
	step := in.Config.SlotDuration + in.Config.BufferTime

	for start := opens; start.Add(in.Config.SlotDuration) <= closes; start = start.Add(step) {
		end := start.Add(in.Config.SlotDuration)

		slot := domain.SlotPreview{
			Time:         start,
			EndTime:      end,
			Price:        slotPrice(in.Config, in.BasePricePerHour, in.Date, start, end),
			TimeCategory: categoryOf(start),
		}

		if br := matchBreak(in.Breaks, in.Date, start, end); br != nil {
			slot.IsBreak = true
			slot.Reason = br.Reason
		} else if in.Booked[start] {
			slot.IsBooked = true
		} else {
			slot.IsAvailable = withinWindow
		}

		schedule.Slots = append(schedule.Slots, slot)
		schedule.GroupedSlots[slot.TimeCategory] = append(schedule.GroupedSlots[slot.TimeCategory], slot)
		schedule.TotalSlots++
		if slot.IsAvailable {
			schedule.BookableSlots++
		}
		if slot.IsBreak {
			schedule.BreakSlots++
		}
	}

	return schedule, nil
}

// slotPrice pro-rates the hourly base price for the slot duration and applies
// the peak and weekend multipliers. Multipliers compose multiplicatively and
// independently.
func slotPrice(cfg *domain.BookingConfig, basePerHour decimal.Decimal, date domain.Date, start, end domain.ClockTime) decimal.Decimal {
	price := basePerHour.
		Mul(decimal.NewFromInt(int64(cfg.SlotDuration))).
		Div(minutesPerHour)

	if cfg.PeakHourPricing && cfg.PeakStartTime != nil && cfg.PeakEndTime != nil &&
		overlaps(start, end, *cfg.PeakStartTime, *cfg.PeakEndTime) {
		price = price.Mul(cfg.PeakPriceMultiplier)
	}
	if cfg.WeekendPricing && date.IsWeekend() {
		price = price.Mul(cfg.WeekendPriceMultiplier)
	}

	return price.Round(2)
}

// overlaps is the half-open interval test: [aStart, aEnd) meets [bStart, bEnd).
func overlaps(aStart, aEnd, bStart, bEnd domain.ClockTime) bool {
	return aStart < bEnd && bStart < aEnd
}

func matchBreak(breaks []domain.BreakTime, date domain.Date, start, end domain.ClockTime) *domain.BreakTime {
	for i := range breaks {
		br := &breaks[i]
		if br.AppliesTo(date) && overlaps(start, end, br.StartTime, br.EndTime) {
			return br
		}
	}
	return nil
}

func matchBlackout(blackouts []domain.BlackoutDate, sportID string, date domain.Date) *domain.BlackoutDate {
	for i := range blackouts {
		bd := &blackouts[i]
		if bd.SportID != nil && *bd.SportID != sportID {
			continue
		}
		if bd.Date.Equal(date.Time) {
			return bd
		}
	}
	return nil
}

func categoryOf(start domain.ClockTime) domain.TimeCategory {
	switch {
	case start < MorningEndsAt:
		return domain.CategoryMorning
	case start < AfternoonEndsAt:
		return domain.CategoryAfternoon
	default:
		return domain.CategoryEvening
	}
}
