package reschedule_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	GetSchedule(ctx context.Context, businessID int64) (*domain.Schedule, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Resource, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	BookedTimes(ctx context.Context, businessID, resourceID int64, date string) ([]types.TimeString, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки подтверждений (ошибки не возвращаются)
type Notifier interface {
	SendConfirmationEmail(ctx context.Context, res *domain.Reservation, business *domain.Business)
}

// Metrics события жизненного цикла бронирований
type Metrics interface {
	IncReservationEvent(event string)
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
