package create_professional

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos del profesional inválidos"
	msgBusinessNotFound   = "negocio no encontrado"
	msgQuotaExceeded      = "tu plan no permite agregar más profesionales"
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

// Handle POST /api/v1/businesses/{businessId}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("POST /businesses/{id}/professionals - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.CreateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), session, &req)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/professionals - Invalid data: business_id=%d, error=%v", session.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, professionals.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, professionals.ErrQuotaExceeded):
			h.logger.Warn("POST /businesses/{id}/professionals - Plan quota exceeded: business_id=%d", session.BusinessID)
			handlers.RespondConflict(w, msgQuotaExceeded)

		default:
			h.logger.Error("POST /businesses/{id}/professionals - Failed to create professional: business_id=%d, error=%v",
				session.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/professionals - Professional created: business_id=%d, professional_id=%d",
		session.BusinessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
