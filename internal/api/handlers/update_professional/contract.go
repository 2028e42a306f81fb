package update_professional

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

type ProfessionalService interface {
	Update(ctx context.Context, session domain.Session, id int64, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
