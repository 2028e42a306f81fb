package catalog

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// CatalogRepository интерфейс репозитория услуг
type CatalogRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error)
	List(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
