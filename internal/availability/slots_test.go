package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

var (
	// 2025-03-04 - вторник
	tuesday       = time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	dayBefore     = time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	morningHours  = &domain.DayHours{Open: "10:00", Close: "13:00"}
	tuesdayAt1450 = time.Date(2025, 3, 4, 14, 50, 0, 0, time.UTC)
)

func ts(values ...string) []types.TimeString {
	out := make([]types.TimeString, len(values))
	for i, v := range values {
		out[i] = types.MustTimeString(v)
	}
	return out
}

func TestGenerateSlots_Interval45(t *testing.T) {
	slots, err := GenerateSlots(morningHours, 45, nil, tuesday, dayBefore, false)

	require.NoError(t, err)
	assert.Equal(t, ts("10:00", "10:45", "11:30", "12:15"), slots)
}

func TestGenerateSlots_TodayCutoff(t *testing.T) {
	hours := &domain.DayHours{Open: "14:00", Close: "17:00"}

	slots, err := GenerateSlots(hours, 15, nil, tuesday, tuesdayAt1450, false)
	require.NoError(t, err)

	// now=14:50 -> отсечка 15:05: 15:00 исключён, 15:15 доступен
	assert.NotContains(t, slots, types.TimeString("15:00"))
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("15:15"), slots[0])
	for _, s := range slots {
		assert.Greater(t, s.Minutes(), 15*60+5)
	}
}

func TestGenerateSlots_TodayCutoffAtExactBoundary(t *testing.T) {
	hours := &domain.DayHours{Open: "14:00", Close: "16:00"}
	now := time.Date(2025, 3, 4, 14, 45, 0, 0, time.UTC) // отсечка ровно 15:00

	slots, err := GenerateSlots(hours, 15, nil, tuesday, now, false)
	require.NoError(t, err)
	assert.Equal(t, ts("15:15", "15:30", "15:45"), slots)
}

func TestGenerateSlots_DemoModeSkipsCutoff(t *testing.T) {
	hours := &domain.DayHours{Open: "14:00", Close: "16:00"}

	slots, err := GenerateSlots(hours, 30, nil, tuesday, tuesdayAt1450, true)
	require.NoError(t, err)
	assert.Equal(t, ts("14:00", "14:30", "15:00", "15:30"), slots)
}

func TestGenerateSlots_LateEveningLeavesNothingToday(t *testing.T) {
	hours := &domain.DayHours{Open: "08:00", Close: "23:55"}
	now := time.Date(2025, 3, 4, 23, 50, 0, 0, time.UTC)

	slots, err := GenerateSlots(hours, 5, nil, tuesday, now, false)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ExcludesBlockedHours(t *testing.T) {
	slots, err := GenerateSlots(morningHours, 45, ts("10:45", "12:15"), tuesday, dayBefore, false)

	require.NoError(t, err)
	assert.Equal(t, ts("10:00", "11:30"), slots)
}

func TestGenerateSlots_BlockedHoursNormalized(t *testing.T) {
	blocked := []types.TimeString{"10:45:00"}

	slots, err := GenerateSlots(morningHours, 45, blocked, tuesday, dayBefore, false)
	require.NoError(t, err)
	assert.NotContains(t, slots, types.TimeString("10:45"))
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	slots, err := GenerateSlots(nil, 30, nil, tuesday, dayBefore, false)

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		hours    *domain.DayHours
		interval int
		wantErr  error
	}{
		{name: "interval below minimum", hours: morningHours, interval: 4, wantErr: ErrInvalidInterval},
		{name: "zero interval", hours: morningHours, interval: 0, wantErr: ErrInvalidInterval},
		{name: "interval checked before closed day", hours: nil, interval: 1, wantErr: ErrInvalidInterval},
		{name: "overnight range", hours: &domain.DayHours{Open: "22:00", Close: "02:00"}, interval: 30, wantErr: ErrInvalidHours},
		{name: "empty range", hours: &domain.DayHours{Open: "10:00", Close: "10:00"}, interval: 30, wantErr: ErrInvalidHours},
		{name: "malformed time", hours: &domain.DayHours{Open: "diez", Close: "12:00"}, interval: 30, wantErr: ErrInvalidHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.hours, tt.interval, nil, tuesday, dayBefore, false)
			assert.Nil(t, slots)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestGenerateSlots_Properties(t *testing.T) {
	ranges := []domain.DayHours{
		{Open: "00:00", Close: "23:59"},
		{Open: "07:30", Close: "08:00"},
		{Open: "09:00", Close: "18:00"},
		{Open: "10:10", Close: "13:07"},
	}

	for _, hours := range ranges {
		for interval := MinInterval; interval <= 120; interval += 7 {
			h := hours
			slots, err := GenerateSlots(&h, interval, nil, tuesday, dayBefore, false)
			require.NoError(t, err)
			require.NotEmpty(t, slots)

			assert.Equal(t, h.Open, slots[0], "first slot must equal open time")
			for i, s := range slots {
				assert.True(t, s.IsBefore(h.Close), "%s must be before close %s", s, h.Close)
				if i > 0 {
					assert.Equal(t, interval, s.Minutes()-slots[i-1].Minutes())
				}
			}
		}
	}
}

func TestParseInterval(t *testing.T) {
	v, err := ParseInterval(" 45 ")
	require.NoError(t, err)
	assert.Equal(t, 45, v)

	for _, raw := range []string{"", "treinta", "4", "-10", "4.5"} {
		_, err := ParseInterval(raw)
		assert.ErrorIs(t, err, ErrInvalidInterval, raw)
		assert.ErrorIs(t, err, domain.ErrConfiguration, raw)
	}
}

func TestSlotsForDate(t *testing.T) {
	schedule := &domain.Schedule{
		Hours: domain.BusinessHours{
			domain.Martes:    {Open: "10:00", Close: "13:00"},
			domain.Miercoles: {Open: "10:00", Close: "13:00"},
			domain.Jueves:    {Open: "10:00", Close: "13:00"},
		},
		IntervalMinutes: 60,
		Blocked: domain.Blocking{
			Days:  []domain.Weekday{domain.Jueves},
			Hours: domain.BlockedHours{domain.Martes: ts("11:00")},
		},
		BlockedDates: []string{"2025-03-05"},
	}

	tests := []struct {
		name       string
		date       time.Time
		now        time.Time
		wantSlots  []types.TimeString
		wantReason Reason
	}{
		{name: "open tuesday", date: tuesday, now: dayBefore, wantSlots: ts("10:00", "12:00")},
		{name: "blocked date", date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), now: dayBefore, wantSlots: ts(), wantReason: ReasonBlockedDate},
		{name: "blocked weekday", date: time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), now: dayBefore, wantSlots: ts(), wantReason: ReasonBlockedDay},
		{name: "closed weekday", date: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), now: dayBefore, wantSlots: ts(), wantReason: ReasonClosed},
		{name: "nothing left today", date: tuesday, now: tuesdayAt1450, wantSlots: ts(), wantReason: ReasonNoRemainingSlots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, reason, err := SlotsForDate(schedule, tt.date, tt.now, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSlots, slots)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestSlotsForDate_InvalidInterval(t *testing.T) {
	schedule := &domain.Schedule{
		Hours:           domain.BusinessHours{domain.Martes: {Open: "10:00", Close: "13:00"}},
		IntervalMinutes: 3,
	}

	slots, reason, err := SlotsForDate(schedule, tuesday, dayBefore, false)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Equal(t, ReasonInvalidConfiguration, reason)
	assert.Empty(t, slots)
}
