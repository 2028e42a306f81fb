package get_subscription

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/business/models"
)

type SubscriptionService interface {
	GetSubscription(ctx context.Context, session domain.Session) (*models.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
