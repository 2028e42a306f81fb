package create_professional

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

type ProfessionalService interface {
	Create(ctx context.Context, session domain.Session, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
