package update_schedule

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// DayHours часы работы в строковом виде (как пришли из формы)
type DayHours struct {
	Open  string
	Close string
}

// Request модель запроса на изменение расписания. Заменяет расписание целиком.
type Request struct {
	Session      domain.Session
	Hours        map[string]DayHours // день недели -> часы; отсутствующий день - выходной
	Interval     string              // минуты между слотами
	BlockedDays  []string
	BlockedHours map[string][]string
	BlockedDates []string // YYYY-MM-DD
}

// Response модель ответа
type Response struct {
	Schedule *domain.Schedule
}
