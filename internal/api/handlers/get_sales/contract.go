package get_sales

import (
	"context"
	"io"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/sales/models"
)

type SalesService interface {
	Report(ctx context.Context, session domain.Session, req *models.ReportRequest) (*models.ReportResponse, error)
	ExportXLSX(ctx context.Context, session domain.Session, req *models.ReportRequest, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
