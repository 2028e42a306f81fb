package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func weekHours() domain.BusinessHours {
	return domain.BusinessHours{
		domain.Lunes:     {Open: "09:00", Close: "18:00"},
		domain.Martes:    {Open: "09:00", Close: "18:00"},
		domain.Miercoles: {Open: "09:00", Close: "18:00"},
		domain.Jueves:    {Open: "09:00", Close: "18:00"},
		domain.Viernes:   {Open: "09:00", Close: "18:00"},
		domain.Sabado:    {Open: "10:00", Close: "14:00"},
	}
}

func pending(id int64, date time.Time, at string) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		BusinessID: 1,
		ResourceID: 2,
		Date:       date,
		Time:       types.MustTimeString(at),
		Status:     domain.StatusPending,
	}
}

var (
	nextTuesday   = time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	nextWednesday = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	nextSunday    = time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	nextSaturday  = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
)

func TestDetectConflicts_NewlyBlockedWeekday(t *testing.T) {
	tue := pending(1, nextTuesday, "10:00")
	wed := pending(2, nextWednesday, "10:00")

	newBlocked := domain.Blocking{Days: []domain.Weekday{domain.Martes}}

	conflicts := DetectConflicts(weekHours(), domain.Blocking{}, weekHours(), newBlocked, []*domain.Reservation{tue, wed})

	require.Len(t, conflicts, 1)
	assert.Same(t, tue, conflicts[0])
}

func TestDetectConflicts_WeekdayRemovedFromHours(t *testing.T) {
	sat := pending(1, nextSaturday, "11:00")
	newHours := weekHours()
	delete(newHours, domain.Sabado)

	conflicts := DetectConflicts(weekHours(), domain.Blocking{}, newHours, domain.Blocking{}, []*domain.Reservation{sat})
	assert.Equal(t, []*domain.Reservation{sat}, conflicts)
}

func TestDetectConflicts_NewlyBlockedTime(t *testing.T) {
	atTen := pending(1, nextTuesday, "10:00")
	atEleven := pending(2, nextTuesday, "11:00")
	wedAtTen := pending(3, nextWednesday, "10:00")

	newBlocked := domain.Blocking{Hours: domain.BlockedHours{domain.Martes: ts("10:00")}}

	conflicts := DetectConflicts(weekHours(), domain.Blocking{}, weekHours(), newBlocked,
		[]*domain.Reservation{atTen, atEleven, wedAtTen})

	assert.Equal(t, []*domain.Reservation{atTen}, conflicts)
}

func TestDetectConflicts_ShortenedHours(t *testing.T) {
	late := pending(1, nextTuesday, "17:00")
	early := pending(2, nextTuesday, "09:00")

	newHours := weekHours()
	newHours[domain.Martes] = domain.DayHours{Open: "09:00", Close: "15:00"}

	conflicts := DetectConflicts(weekHours(), domain.Blocking{}, newHours, domain.Blocking{}, []*domain.Reservation{late, early})
	assert.Equal(t, []*domain.Reservation{late}, conflicts)
}

func TestDetectConflicts_OnlyNewConflicts(t *testing.T) {
	// Воскресенье закрыто и раньше, вторник 10:00 был заблокирован и раньше
	sunday := pending(1, nextSunday, "10:00")
	blockedBefore := pending(2, nextTuesday, "10:00")

	oldBlocked := domain.Blocking{Hours: domain.BlockedHours{domain.Martes: ts("10:00")}}
	newBlocked := domain.Blocking{
		Days:  []domain.Weekday{domain.Domingo},
		Hours: domain.BlockedHours{domain.Martes: ts("10:00")},
	}

	conflicts := DetectConflicts(weekHours(), oldBlocked, weekHours(), newBlocked, []*domain.Reservation{sunday, blockedBefore})
	assert.Empty(t, conflicts)
}

func TestDetectConflicts_ExcludedByOldScheduleNotReported(t *testing.T) {
	t.Run("blocked time then whole day blocked", func(t *testing.T) {
		r := pending(1, nextTuesday, "10:00")
		oldBlocked := domain.Blocking{Hours: domain.BlockedHours{domain.Martes: ts("10:00")}}
		newBlocked := domain.Blocking{Days: []domain.Weekday{domain.Martes}}

		conflicts := DetectConflicts(weekHours(), oldBlocked, weekHours(), newBlocked, []*domain.Reservation{r})
		assert.Empty(t, conflicts)
	})

	t.Run("outside old hours then time blocked", func(t *testing.T) {
		r := pending(1, nextTuesday, "08:00")
		hours := weekHours()
		hours[domain.Martes] = domain.DayHours{Open: "09:00", Close: "12:00"}
		newBlocked := domain.Blocking{Hours: domain.BlockedHours{domain.Martes: ts("08:00")}}

		conflicts := DetectConflicts(hours, domain.Blocking{}, hours, newBlocked, []*domain.Reservation{r})
		assert.Empty(t, conflicts)
	})

	t.Run("outside old hours then day removed", func(t *testing.T) {
		r := pending(1, nextSaturday, "15:00")
		newHours := weekHours()
		delete(newHours, domain.Sabado)

		conflicts := DetectConflicts(weekHours(), domain.Blocking{}, newHours, domain.Blocking{}, []*domain.Reservation{r})
		assert.Empty(t, conflicts)
	})
}

func TestAccepts(t *testing.T) {
	blocked := domain.Blocking{
		Days:  []domain.Weekday{domain.Jueves},
		Hours: domain.BlockedHours{domain.Martes: ts("11:00")},
	}

	tests := []struct {
		name string
		r    *domain.Reservation
		want bool
	}{
		{"open time", pending(1, nextTuesday, "10:00"), true},
		{"blocked time", pending(2, nextTuesday, "11:00"), false},
		{"before open", pending(3, nextTuesday, "08:30"), false},
		{"day without hours", pending(4, nextSunday, "10:00"), false},
		{"blocked day", pending(5, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), "10:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Accepts(weekHours(), blocked, tt.r))
		})
	}
}

func TestDetectConflicts_SupersetConfigHasNoConflicts(t *testing.T) {
	reservations := []*domain.Reservation{
		pending(1, nextTuesday, "09:00"),
		pending(2, nextWednesday, "17:30"),
		pending(3, nextSaturday, "10:00"),
	}

	oldBlocked := domain.Blocking{
		Days:  []domain.Weekday{domain.Jueves},
		Hours: domain.BlockedHours{domain.Lunes: ts("13:00")},
	}

	// Новое расписание шире: открыт четверг и воскресенье, снята блокировка понедельника
	newHours := weekHours()
	newHours[domain.Domingo] = domain.DayHours{Open: "10:00", Close: "12:00"}
	newHours[domain.Sabado] = domain.DayHours{Open: "08:00", Close: "16:00"}

	conflicts := DetectConflicts(weekHours(), oldBlocked, newHours, domain.Blocking{}, reservations)
	assert.Empty(t, conflicts)
}

func TestDetectConflicts_IgnoresNonPending(t *testing.T) {
	done := pending(1, nextTuesday, "10:00")
	done.Status = domain.StatusFulfilled

	newBlocked := domain.Blocking{Days: []domain.Weekday{domain.Martes}}

	conflicts := DetectConflicts(weekHours(), domain.Blocking{}, weekHours(), newBlocked, []*domain.Reservation{done})
	assert.Empty(t, conflicts)
}
