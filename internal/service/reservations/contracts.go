package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
}

// CatalogRepository интерфейс репозитория услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
