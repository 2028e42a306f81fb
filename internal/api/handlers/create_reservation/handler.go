package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-AgendaService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgInvalidDateTime     = "fecha u hora inválida, se espera YYYY-MM-DD y HH:MM"
	msgBusinessNotFound    = "negocio no encontrado"
	msgResourceNotFound    = "profesional no encontrado"
	msgServiceNotFound     = "servicio no encontrado"
	msgDateInPast          = "la fecha ya pasó"
	msgDateTooFar          = "la fecha está demasiado lejos en el futuro"
	msgSlotNotAvailable    = "el horario seleccionado ya no está disponible"
	msgDuplicate           = "ya tienes una reserva activa en este negocio"
	msgMisconfigured       = "el negocio no tiene un horario válido configurado"
	msgPaymentUnavailable  = "no se pudo generar el enlace de pago, intenta de nuevo"
	msgInvalidCustomerData = "datos del cliente inválidos"
)

type Handler struct {
	useCase  CreateReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("POST /businesses/{id}/reservations - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session, h.location)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createReservation.ErrResourceNotFound):
			h.logger.Warn("POST /businesses/{id}/reservations - Resource not found: business_id=%d, resource_id=%d",
				session.BusinessID, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /businesses/{id}/reservations - Service not found: business_id=%d", session.BusinessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomerData)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /businesses/{id}/reservations - Slot not available: business_id=%d, resource_id=%d, date=%s, time=%s",
				session.BusinessID, req.ResourceID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrDuplicateReservation):
			h.logger.Warn("POST /businesses/{id}/reservations - Duplicate reservation: business_id=%d", session.BusinessID)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, createReservation.ErrScheduleMisconfigured):
			h.logger.Warn("POST /businesses/{id}/reservations - Schedule misconfigured: business_id=%d", session.BusinessID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgMisconfigured)

		case errors.Is(err, createReservation.ErrPaymentLink):
			h.logger.Error("POST /businesses/{id}/reservations - Payment link failed: business_id=%d, error=%v", session.BusinessID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /businesses/{id}/reservations - Failed to create reservation: business_id=%d, error=%v",
				session.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/reservations - Reservation created: reservation_id=%d, business_id=%d, resource_id=%d",
		result.Reservation.ID, session.BusinessID, req.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
