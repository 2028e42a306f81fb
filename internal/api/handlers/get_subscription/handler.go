package get_subscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/business"
)

const msgNotFound = "negocio no encontrado"

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/subscription
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /businesses/{id}/subscription - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetSubscription(r.Context(), session)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /businesses/{id}/subscription - Failed to get subscription: business_id=%d, error=%v",
			session.BusinessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
