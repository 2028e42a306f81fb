package change_plan

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
	msgUnknownPlan        = "plan desconocido"
)

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

// Handle PUT /api/v1/businesses/{businessId}/plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("PUT /businesses/{id}/plan - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.ChangePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/plan - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangePlan(r.Context(), session, &req)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, business.ErrUnknownPlan):
			h.logger.Warn("PUT /businesses/{id}/plan - Unknown plan: business_id=%d, plan=%s", session.BusinessID, req.PlanTier)
			handlers.RespondBadRequest(w, msgUnknownPlan)

		default:
			h.logger.Error("PUT /businesses/{id}/plan - Failed to change plan: business_id=%d, error=%v", session.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/plan - Plan changed: business_id=%d, plan=%s, ends_at=%v",
		session.BusinessID, result.PlanTier, result.EndsAt)
	handlers.RespondJSON(w, http.StatusOK, result)
}
