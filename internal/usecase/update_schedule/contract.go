package update_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetSchedule(ctx context.Context, businessID int64) (*domain.Schedule, error)
	UpsertSchedule(ctx context.Context, schedule *domain.Schedule) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// Metrics счётчик конфликтов расписания
type Metrics interface {
	AddScheduleConflicts(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
