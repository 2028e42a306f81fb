package list_professionals

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

type ProfessionalService interface {
	List(ctx context.Context, session domain.Session, includeInactive bool) (*models.ProfessionalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
