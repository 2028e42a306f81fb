package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	// MinInterval минимальный шаг между слотами, минут
	MinInterval = 5

	// LookAheadMargin на сегодня доступны только слоты строго позже now + LookAheadMargin
	LookAheadMargin = 15 * time.Minute
)

// Reason почему на дату нет слотов
type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonClosed               Reason = "closed"
	ReasonBlockedDate          Reason = "blocked_date"
	ReasonBlockedDay           Reason = "blocked_day"
	ReasonInvalidConfiguration Reason = "invalid_configuration"
	ReasonNoRemainingSlots     Reason = "no_remaining_slots"
	ReasonFullyBooked          Reason = "fully_booked"
)

// ParseInterval разбирает интервал из строки (форма настроек)
func ParseInterval(raw string) (int, error) {
	interval, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}
	if interval < MinInterval {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidInterval, interval)
	}
	return interval, nil
}

// GenerateSlots строит слоты дня: от открытия с шагом interval, пока отметка раньше закрытия.
// Исключает повторяющиеся заблокированные времена дня. Если date - сегодня (календарный день now),
// оставляет только отметки строго позже now+LookAheadMargin; в демо-режиме это правило не применяется.
//
// hoursForDay == nil означает выходной: пустой результат без ошибки.
// Результат упорядочен по возрастанию и не содержит повторов.
func GenerateSlots(
	hoursForDay *domain.DayHours,
	interval int,
	blockedForDay []types.TimeString,
	date time.Time,
	now time.Time,
	demoMode bool,
) ([]types.TimeString, error) {
	if interval < MinInterval {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, interval)
	}

	if hoursForDay == nil {
		return []types.TimeString{}, nil
	}

	openAt, closeAt := normalize(hoursForDay.Open).Minutes(), normalize(hoursForDay.Close).Minutes()
	if openAt < 0 || closeAt < 0 || openAt >= closeAt {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidHours, hoursForDay.Open, hoursForDay.Close)
	}

	blocked := make(map[int]struct{}, len(blockedForDay))
	for _, b := range blockedForDay {
		blocked[normalize(b).Minutes()] = struct{}{}
	}

	// Отсечка в минутах от полуночи; -1 - без отсечки.
	// Может выйти за пределы суток (23:50 + 15), тогда на сегодня слотов нет.
	cutoff := -1
	if !demoMode && domain.IsSameDay(date, now) {
		cutoff = now.Hour()*60 + now.Minute() + int(LookAheadMargin/time.Minute)
	}

	slots := make([]types.TimeString, 0, (closeAt-openAt)/interval+1)
	for mark := openAt; mark < closeAt; mark += interval {
		if _, ok := blocked[mark]; ok {
			continue
		}
		if mark <= cutoff {
			continue
		}
		slots = append(slots, types.FromMinutes(mark))
	}

	return slots, nil
}

// SlotsForDate применяет к дате всё расписание бизнеса: закрытые даты, заблокированные дни недели,
// часы работы дня и интервал. Возвращает причину, если слотов нет.
func SlotsForDate(schedule *domain.Schedule, date, now time.Time, demoMode bool) ([]types.TimeString, Reason, error) {
	if schedule.IsDateBlocked(date) {
		return []types.TimeString{}, ReasonBlockedDate, nil
	}

	wd := domain.WeekdayOf(date)
	if schedule.Blocked.IsDayBlocked(wd) {
		return []types.TimeString{}, ReasonBlockedDay, nil
	}

	hours := schedule.Hours.For(wd)
	if hours == nil {
		return []types.TimeString{}, ReasonClosed, nil
	}

	slots, err := GenerateSlots(hours, schedule.IntervalMinutes, schedule.Blocked.Hours[wd], date, now, demoMode)
	if err != nil {
		return []types.TimeString{}, ReasonInvalidConfiguration, err
	}
	if len(slots) == 0 {
		return slots, ReasonNoRemainingSlots, nil
	}
	return slots, ReasonNone, nil
}

// normalize приводит время к HH:MM ("9:00", "09:00:00" -> "09:00")
func normalize(t types.TimeString) types.TimeString {
	n, err := types.NewTimeStringFromString(string(t))
	if err != nil {
		return t
	}
	return n
}
