package update_professional

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

const (
	msgInvalidProfessionalID = "identificador de profesional inválido"
	msgInvalidRequestBody    = "cuerpo de la solicitud inválido"
	msgInvalidData           = "datos del profesional inválidos"
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

// Handle PATCH /api/v1/businesses/{businessId}/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("PATCH /businesses/{id}/professionals/{id} - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("PATCH /businesses/{id}/professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req models.UpdateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /businesses/{id}/professionals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), session, professionalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("PATCH /businesses/{id}/professionals/{id} - Invalid data: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /businesses/{id}/professionals/{id} - Failed to update professional: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /businesses/{id}/professionals/{id} - Professional updated: business_id=%d, professional_id=%d",
		session.BusinessID, professionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
