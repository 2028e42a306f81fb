package update_business

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/business"
	"github.com/m04kA/SMC-AgendaService/internal/service/business/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgNotFound           = "negocio no encontrado"
	msgInvalidData        = "datos del negocio inválidos"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/businesses/{businessId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("PATCH /businesses/{id} - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /businesses/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), session, &req)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("PATCH /businesses/{id} - Invalid data: business_id=%d, error=%v", session.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /businesses/{id} - Failed to update business: business_id=%d, error=%v", session.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /businesses/{id} - Business updated: business_id=%d, user_id=%d", session.BusinessID, session.ActorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
