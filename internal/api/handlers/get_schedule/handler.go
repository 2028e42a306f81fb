package get_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /businesses/{id}/schedule - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), session)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/schedule - Failed to get schedule: business_id=%d, error=%v", session.BusinessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
