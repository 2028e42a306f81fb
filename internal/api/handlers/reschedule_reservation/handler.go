package reschedule_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	rescheduleReservation "github.com/m04kA/SMC-AgendaService/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidReservationID = "identificador de reserva inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidDateTime      = "fecha u hora inválida, se espera YYYY-MM-DD y HH:MM"
	msgNotFound             = "reserva no encontrada"
	msgResourceNotFound     = "profesional no encontrado"
	msgDateInPast           = "la fecha ya pasó"
	msgSameSlot             = "la nueva fecha y hora deben ser distintas de las actuales"
	msgInvalidData          = "datos de la reprogramación inválidos"
	msgInvalidTransition    = "solo se pueden reprogramar reservas pendientes"
	msgSlotNotAvailable     = "el horario seleccionado no está disponible"
	msgMisconfigured        = "el negocio no tiene un horario válido configurado"
)

type Handler struct {
	useCase  RescheduleReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase RescheduleReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/reservations/{reservationId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("POST /businesses/{id}/reservations/{id}/reschedule - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/reservations/{id}/reschedule - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req RescheduleReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session, reservationID, h.location)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/reservations/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrReservationNotFound),
			errors.Is(err, rescheduleReservation.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleReservation.ErrResourceNotFound):
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, rescheduleReservation.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, domain.ErrRescheduleSameSlot):
			handlers.RespondBadRequest(w, msgSameSlot)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput),
			errors.Is(err, domain.ErrReasonRequired):
			h.logger.Warn("POST /businesses/{id}/reservations/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, domain.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, rescheduleReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /businesses/{id}/reservations/{id}/reschedule - Slot not available: reservation_id=%d, date=%s, time=%s",
				reservationID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleReservation.ErrScheduleMisconfigured):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgMisconfigured)

		default:
			h.logger.Error("POST /businesses/{id}/reservations/{id}/reschedule - Failed to reschedule: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/reservations/{id}/reschedule - Reservation rescheduled: business_id=%d, from_id=%d, to_id=%d",
		session.BusinessID, result.Previous.ID, result.Reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
