package business

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	Update(ctx context.Context, b *domain.Business) error
	GetSchedule(ctx context.Context, businessID int64) (*domain.Schedule, error)
}

// Plans тарифы: лимиты ресурсов и длительность пробного периода
type Plans interface {
	PlanQuotas() domain.PlanQuotas
	TrialDays(tier domain.PlanTier) int
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
