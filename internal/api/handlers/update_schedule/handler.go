package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	businessModels "github.com/m04kA/SMC-AgendaService/internal/service/business/models"
	updateSchedule "github.com/m04kA/SMC-AgendaService/internal/usecase/update_schedule"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidSchedule    = "horario inválido"
	msgConflicts          = "hay reservas pendientes fuera del nuevo horario, reprográmalas o cancélalas primero"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("PUT /businesses/{id}/schedule - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session))
	if err != nil {
		var conflicts *updateSchedule.ConflictsError
		switch {
		case errors.As(err, &conflicts):
			h.logger.Warn("PUT /businesses/{id}/schedule - Conflicts with pending reservations: business_id=%d, count=%d",
				session.BusinessID, len(conflicts.Reservations))
			handlers.RespondJSON(w, http.StatusConflict, ToConflictsResponse(msgConflicts, conflicts.Reservations))

		case errors.Is(err, updateSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/schedule - Invalid schedule: business_id=%d, error=%v", session.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /businesses/{id}/schedule - Failed to update schedule: business_id=%d, error=%v",
				session.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/schedule - Schedule updated: business_id=%d, user_id=%d", session.BusinessID, session.ActorID)
	handlers.RespondJSON(w, http.StatusOK, businessModels.FromDomainSchedule(result.Schedule))
}
