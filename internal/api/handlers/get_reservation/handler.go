package get_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "identificador de reserva inválido"
	msgNotFound             = "reserva no encontrada"
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

// Handle GET /api/v1/businesses/{businessId}/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /businesses/{id}/reservations/{id} - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.Get(r.Context(), session, reservationID)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /businesses/{id}/reservations/{id} - Reservation not found: business_id=%d, reservation_id=%d",
				session.BusinessID, reservationID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /businesses/{id}/reservations/{id} - Failed to get reservation: reservation_id=%d, error=%v",
			reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
