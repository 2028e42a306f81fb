package create_business

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
	msgMissingUserID      = "falta el identificador de usuario"
	msgInvalidData        = "datos del negocio inválidos"
	msgUnknownPlan        = "plan desconocido"
	msgSlugTaken          = "la dirección del negocio ya está en uso"
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

// Handle POST /api/v1/businesses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateBusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("POST /businesses - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, business.ErrUnknownPlan):
			handlers.RespondBadRequest(w, msgUnknownPlan)

		case errors.Is(err, business.ErrSlugTaken):
			h.logger.Warn("POST /businesses - Slug taken: slug=%s", req.Slug)
			handlers.RespondConflict(w, msgSlugTaken)

		default:
			h.logger.Error("POST /businesses - Failed to create business: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses - Business created: business_id=%d, owner_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
