package list_professionals

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
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

// Handle GET /api/v1/businesses/{businessId}/professionals
// Query params: includeInactive (optional, true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /businesses/{id}/professionals - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.List(r.Context(), session, includeInactive)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/professionals - Failed to list professionals: business_id=%d, error=%v",
			session.BusinessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
