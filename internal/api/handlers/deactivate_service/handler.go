package deactivate_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
)

const (
	msgInvalidServiceID = "identificador de servicio inválido"
	msgNotFound         = "servicio no encontrado"
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

// Handle DELETE /api/v1/businesses/{businessId}/services/{serviceId}
// Услуга скрывается из формы, история продаж сохраняется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("DELETE /businesses/{id}/services/{id} - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Deactivate(r.Context(), session, serviceID); err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /businesses/{id}/services/{id} - Failed to deactivate service: service_id=%d, error=%v",
			serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /businesses/{id}/services/{id} - Service deactivated: business_id=%d, service_id=%d",
		session.BusinessID, serviceID)
	w.WriteHeader(http.StatusNoContent)
}
