package change_plan

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/business/models"
)

type SubscriptionService interface {
	ChangePlan(ctx context.Context, session domain.Session, req *models.ChangePlanRequest) (*models.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
