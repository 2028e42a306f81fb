package professionals

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, businessID, id int64) (*domain.Resource, error)
	List(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Resource, error)
	CountActive(ctx context.Context, businessID int64) (int, error)
	Update(ctx context.Context, res *domain.Resource) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
