package availability

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// DetectConflicts находит pending бронирования, которые новое расписание сделает недопустимыми.
// Конфликт - бронирование, допустимое по старым правилам и недопустимое по новым:
// день недели закрыт целиком (в списке блокировок или без часов работы),
// время заблокировано для дня недели или вышло за часы работы дня.
// Бронирования, которые не принимало и старое расписание, не учитываются.
//
// Пока результат не пуст, новое расписание сохранять нельзя.
func DetectConflicts(
	oldHours domain.BusinessHours,
	oldBlocked domain.Blocking,
	newHours domain.BusinessHours,
	newBlocked domain.Blocking,
	pending []*domain.Reservation,
) []*domain.Reservation {
	conflicts := make([]*domain.Reservation, 0)

	for _, r := range pending {
		if r.Status != domain.StatusPending {
			continue
		}
		if !Accepts(oldHours, oldBlocked, r) {
			continue
		}
		if !Accepts(newHours, newBlocked, r) {
			conflicts = append(conflicts, r)
		}
	}

	return conflicts
}

// Accepts true, если недельные правила допускают время бронирования
func Accepts(hours domain.BusinessHours, blocked domain.Blocking, r *domain.Reservation) bool {
	wd := domain.WeekdayOf(r.Date)
	t := normalize(r.Time)

	if isDayClosed(hours, blocked, wd) {
		return false
	}
	return hours.For(wd).Contains(t) && !blocked.IsTimeBlocked(wd, t)
}

func isDayClosed(hours domain.BusinessHours, blocked domain.Blocking, wd domain.Weekday) bool {
	return blocked.IsDayBlocked(wd) || hours.For(wd) == nil
}
