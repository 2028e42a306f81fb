package deactivate_service

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type CatalogService interface {
	Deactivate(ctx context.Context, session domain.Session, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
