package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceID  = "identificador de profesional inválido"
	msgMissingDate        = "la fecha es obligatoria"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgResourceNotFound   = "profesional no encontrado"
	msgDateInPast         = "la fecha ya pasó"
	msgDateTooFar         = "la fecha está demasiado lejos en el futuro"
	msgInvalidRequestData = "datos de la solicitud inválidos"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/resources/{resourceId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /businesses/{id}/resources/{id}/slots - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	resourceID, err := handlers.PathInt64(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/resources/{id}/slots - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	date, err := handlers.QueryDate(r, "date", h.location)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/resources/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date == nil {
		h.logger.Warn("GET /businesses/{id}/resources/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Session:    session,
		ResourceID: resourceID,
		Date:       *date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrResourceNotFound):
			h.logger.Warn("GET /businesses/{id}/resources/{id}/slots - Resource not found: business_id=%d, resource_id=%d",
				session.BusinessID, resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/resources/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("GET /businesses/{id}/resources/{id}/slots - Failed to get slots: business_id=%d, resource_id=%d, error=%v",
				session.BusinessID, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/resources/{id}/slots - Slots retrieved: business_id=%d, resource_id=%d, slots_count=%d",
		session.BusinessID, resourceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
