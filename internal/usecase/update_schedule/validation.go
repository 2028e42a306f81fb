package update_schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/availability"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// buildSchedule проверяет запрос и собирает из него расписание
func buildSchedule(req *Request) (*domain.Schedule, error) {
	if req.Session.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	interval, err := availability.ParseInterval(req.Interval)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if interval > domain.MaxIntervalMinutes {
		return nil, fmt.Errorf("%w: interval must be at most %d minutes", ErrInvalidInput, domain.MaxIntervalMinutes)
	}

	schedule := &domain.Schedule{
		BusinessID:      req.Session.BusinessID,
		Hours:           make(domain.BusinessHours, len(req.Hours)),
		IntervalMinutes: interval,
		Blocked: domain.Blocking{
			Days:  make([]domain.Weekday, 0, len(req.BlockedDays)),
			Hours: make(domain.BlockedHours, len(req.BlockedHours)),
		},
		BlockedDates: make([]string, 0, len(req.BlockedDates)),
	}

	for day, h := range req.Hours {
		wd, err := domain.ParseWeekday(day)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		open, err := types.NewTimeStringFromString(h.Open)
		if err != nil {
			return nil, fmt.Errorf("%w: %s open: %v", ErrInvalidInput, wd, err)
		}
		closeAt, err := types.NewTimeStringFromString(h.Close)
		if err != nil {
			return nil, fmt.Errorf("%w: %s close: %v", ErrInvalidInput, wd, err)
		}
		hours := domain.DayHours{Open: open, Close: closeAt}
		if err := hours.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, wd, err)
		}
		schedule.Hours[wd] = hours
	}

	seenDays := make(map[domain.Weekday]bool)
	for _, day := range req.BlockedDays {
		wd, err := domain.ParseWeekday(day)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !seenDays[wd] {
			seenDays[wd] = true
			schedule.Blocked.Days = append(schedule.Blocked.Days, wd)
		}
	}

	for day, times := range req.BlockedHours {
		wd, err := domain.ParseWeekday(day)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		parsed, err := parseTimes(times)
		if err != nil {
			return nil, fmt.Errorf("%w: blocked hours %s: %v", ErrInvalidInput, wd, err)
		}
		if len(parsed) > 0 {
			schedule.Blocked.Hours[wd] = parsed
		}
	}

	seenDates := make(map[string]bool)
	for _, raw := range req.BlockedDates {
		d, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: blocked date %q must be YYYY-MM-DD", ErrInvalidInput, raw)
		}
		key := d.Format(domain.DateFormat)
		if !seenDates[key] {
			seenDates[key] = true
			schedule.BlockedDates = append(schedule.BlockedDates, key)
		}
	}
	sort.Strings(schedule.BlockedDates)

	return schedule, nil
}

// parseTimes разбирает, нормализует, сортирует и убирает повторы
func parseTimes(raw []string) ([]types.TimeString, error) {
	seen := make(map[types.TimeString]bool, len(raw))
	result := make([]types.TimeString, 0, len(raw))
	for _, r := range raw {
		t, err := types.NewTimeStringFromString(r)
		if err != nil {
			return nil, err
		}
		if !seen[t] {
			seen[t] = true
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IsBefore(result[j]) })
	return result, nil
}
