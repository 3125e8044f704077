package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want ClockTime
		ok   bool
	}{
		{"09:00", NewClockTime(9, 0), true},
		{"23:59", NewClockTime(23, 59), true},
		{"09:30:00", NewClockTime(9, 30), true}, // postgres TIME format
		{"0:05", NewClockTime(0, 5), true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseClockTime(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "09:05", NewClockTime(9, 5).String())
	assert.Equal(t, "00:00", ClockTime(0).String())
	assert.Equal(t, "23:30", NewClockTime(23, 30).String())
}

func TestClockTime_JSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(NewClockTime(14, 30))
	require.NoError(t, err)
	assert.Equal(t, `"14:30"`, string(raw))

	var back ClockTime
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, NewClockTime(14, 30), back)
}

func TestClockTime_Scan(t *testing.T) {
	var ct ClockTime

	require.NoError(t, ct.Scan([]byte("10:15:00")))
	assert.Equal(t, NewClockTime(10, 15), ct)

	require.NoError(t, ct.Scan("08:00:00"))
	assert.Equal(t, NewClockTime(8, 0), ct)

	require.NoError(t, ct.Scan(time.Date(2026, 9, 1, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, NewClockTime(16, 45), ct)

	assert.Error(t, ct.Scan(42))
}

func TestClockTime_Value(t *testing.T) {
	v, err := NewClockTime(7, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", v)
}

func TestDate_ParseAndString(t *testing.T) {
	d, err := ParseDate("2026-09-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-05", d.String())

	_, err = ParseDate("05/09/2026")
	assert.Error(t, err)
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2026, time.September, 5)

	assert.Equal(t, "2026-09-06", d.AddDays(1).String())
	assert.Equal(t, "2026-08-31", d.AddDays(-5).String())
	assert.Equal(t, 7, d.DaysUntil(d.AddDays(7)))
	assert.Equal(t, -2, d.DaysUntil(d.AddDays(-2)))
}

func TestDate_IsWeekend(t *testing.T) {
	assert.True(t, NewDate(2026, time.September, 5).IsWeekend())  // Saturday
	assert.True(t, NewDate(2026, time.September, 6).IsWeekend())  // Sunday
	assert.False(t, NewDate(2026, time.September, 7).IsWeekend()) // Monday
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.September, 5)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-05"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestSlot_IsAvailable(t *testing.T) {
	today := Today()

	s := &Slot{Date: today}
	assert.True(t, s.IsAvailable(today))

	s.IsBooked = true
	assert.False(t, s.IsAvailable(today))

	past := &Slot{Date: today.AddDays(-1)}
	assert.False(t, past.IsAvailable(today))

	future := &Slot{Date: today.AddDays(3)}
	assert.True(t, future.IsAvailable(today))
}

func TestPlayer_Status(t *testing.T) {
	p := &Player{}
	assert.Equal(t, PlayerNotCheckedIn, p.Status())

	p.CheckInCount = 1
	assert.Equal(t, PlayerCheckedIn, p.Status())

	p.CheckInCount = 2
	assert.Equal(t, PlayerCheckedOut, p.Status())
}
