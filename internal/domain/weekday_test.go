package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func TestWeekdayOf(t *testing.T) {
	// 2025-03-04 - вторник
	assert.Equal(t, Martes, WeekdayOf(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Domingo, WeekdayOf(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)))
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday(" Miércoles ")
	require.NoError(t, err)
	assert.Equal(t, Miercoles, wd)

	wd, err = ParseWeekday("SÁBADO")
	require.NoError(t, err)
	assert.Equal(t, Sabado, wd)

	_, err = ParseWeekday("monday")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDayHours_Validate(t *testing.T) {
	assert.NoError(t, DayHours{Open: "09:00", Close: "18:00"}.Validate())
	assert.ErrorIs(t, DayHours{Open: "18:00", Close: "09:00"}.Validate(), ErrValidation)
	assert.ErrorIs(t, DayHours{Open: "09:00", Close: "09:00"}.Validate(), ErrValidation)
	assert.ErrorIs(t, DayHours{Open: "9", Close: "18:00"}.Validate(), ErrValidation)
}

func TestBlocking(t *testing.T) {
	b := Blocking{
		Days:  []Weekday{Domingo},
		Hours: BlockedHours{Lunes: {types.MustTimeString("13:00")}},
	}

	assert.True(t, b.IsDayBlocked(Domingo))
	assert.False(t, b.IsDayBlocked(Lunes))
	assert.True(t, b.IsTimeBlocked(Lunes, "13:00"))
	assert.False(t, b.IsTimeBlocked(Martes, "13:00"))
}

func TestSchedule_IsDateBlocked(t *testing.T) {
	s := Schedule{BlockedDates: []string{"2025-12-25"}}
	assert.True(t, s.IsDateBlocked(time.Date(2025, 12, 25, 15, 0, 0, 0, time.UTC)))
	assert.False(t, s.IsDateBlocked(time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)))
}
