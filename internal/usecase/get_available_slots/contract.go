package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Resource, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetSchedule(ctx context.Context, businessID int64) (*domain.Schedule, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	BookedTimes(ctx context.Context, businessID, resourceID int64, date string) ([]types.TimeString, error)
}

// Metrics счётчик отданных слотов
type Metrics interface {
	ObserveSlots(n int)
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
