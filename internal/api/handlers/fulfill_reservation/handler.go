package fulfill_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "identificador de reserva inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgNotFound             = "reserva no encontrada"
	msgServiceNotFound      = "servicio no encontrado"
	msgServiceRequired      = "selecciona el servicio realizado"
	msgTooEarly             = "la reserva todavía no ha comenzado"
	msgInvalidTransition    = "la reserva ya no está pendiente"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/reservations/{reservationId}/fulfill
// Тело необязательно: {"serviceId": 10}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("POST /businesses/{id}/reservations/{id}/fulfill - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/reservations/{id}/fulfill - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.MarkFulfilledRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /businesses/{id}/reservations/{id}/fulfill - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.service.MarkFulfilled(r.Context(), session, reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, domain.ErrServiceRequired):
			handlers.RespondBadRequest(w, msgServiceRequired)

		case errors.Is(err, domain.ErrTooEarly):
			handlers.RespondBadRequest(w, msgTooEarly)

		case errors.Is(err, domain.ErrInvalidTransition):
			h.logger.Warn("POST /businesses/{id}/reservations/{id}/fulfill - Invalid transition: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /businesses/{id}/reservations/{id}/fulfill - Failed to fulfill reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/reservations/{id}/fulfill - Reservation fulfilled: business_id=%d, reservation_id=%d",
		session.BusinessID, reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
