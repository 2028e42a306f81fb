package fulfill_reservation

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
)

type ReservationService interface {
	MarkFulfilled(ctx context.Context, session domain.Session, id int64, req *models.MarkFulfilledRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
