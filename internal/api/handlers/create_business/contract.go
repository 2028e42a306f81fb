package create_business

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/business/models"
)

type BusinessService interface {
	Create(ctx context.Context, actorID int64, req *models.CreateBusinessRequest) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
