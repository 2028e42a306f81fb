package update_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog/models"
)

const (
	msgInvalidServiceID   = "identificador de servicio inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos del servicio inválidos"
	msgNotFound           = "servicio no encontrado"
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

// Handle PATCH /api/v1/businesses/{businessId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("PATCH /businesses/{id}/services/{id} - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("PATCH /businesses/{id}/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /businesses/{id}/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), session, serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PATCH /businesses/{id}/services/{id} - Invalid data: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /businesses/{id}/services/{id} - Failed to update service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /businesses/{id}/services/{id} - Service updated: business_id=%d, service_id=%d",
		session.BusinessID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
