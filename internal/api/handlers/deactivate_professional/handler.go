package deactivate_professional

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
)

const (
	msgInvalidProfessionalID = "identificador de profesional inválido"
	msgNotFound              = "profesional no encontrado"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/businesses/{businessId}/professionals/{professionalId}
// Специалист деактивируется, его бронирования сохраняются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("DELETE /businesses/{id}/professionals/{id} - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	if err := h.service.Deactivate(r.Context(), session, professionalID); err != nil {
		if errors.Is(err, professionals.ErrProfessionalNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /businesses/{id}/professionals/{id} - Failed to deactivate professional: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /businesses/{id}/professionals/{id} - Professional deactivated: business_id=%d, professional_id=%d",
		session.BusinessID, professionalID)
	w.WriteHeader(http.StatusNoContent)
}
