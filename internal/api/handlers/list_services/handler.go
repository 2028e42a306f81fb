package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
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

// Handle GET /api/v1/businesses/{businessId}/services
// Query params: includeInactive (optional, true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /businesses/{id}/services - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.List(r.Context(), session, includeInactive)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/services - Failed to list services: business_id=%d, error=%v",
			session.BusinessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
