package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos del servicio inválidos"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("POST /businesses/{id}/services - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), session, &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /businesses/{id}/services - Invalid data: business_id=%d, error=%v", session.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /businesses/{id}/services - Failed to create service: business_id=%d, error=%v", session.BusinessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /businesses/{id}/services - Service created: business_id=%d, service_id=%d", session.BusinessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
