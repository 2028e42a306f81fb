package sales

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	List(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Resource, error)
}

// CatalogRepository интерфейс репозитория услуг
type CatalogRepository interface {
	List(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Service, error)
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
