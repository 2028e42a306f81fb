package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
)

const (
	msgInvalidDate       = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidResourceID = "identificador de profesional inválido"
	msgInvalidFilter     = "filtro inválido"
)

type Handler struct {
	service  ReservationService
	location *time.Location
	logger   Logger
}

func NewHandler(service ReservationService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/reservations
// Query params: date | from, to (YYYY-MM-DD), status, resourceId (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /businesses/{id}/reservations - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	req, err := h.parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.List(r.Context(), session, req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidFilter) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /businesses/{id}/reservations - Failed to list reservations: business_id=%d, error=%v",
			session.BusinessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/reservations - Reservations retrieved: business_id=%d, total=%d",
		session.BusinessID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery ошибки возвращаются с текстом для клиента
func (h *Handler) parseQuery(r *http.Request) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	var err error
	if req.Date, err = handlers.QueryDate(r, "date", h.location); err != nil {
		return nil, errors.New(msgInvalidDate)
	}
	if req.From, err = handlers.QueryDate(r, "from", h.location); err != nil {
		return nil, errors.New(msgInvalidDate)
	}
	if req.To, err = handlers.QueryDate(r, "to", h.location); err != nil {
		return nil, errors.New(msgInvalidDate)
	}

	if req.ResourceID, err = handlers.QueryInt64(r, "resourceId"); err != nil {
		return nil, errors.New(msgInvalidResourceID)
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}
	return req, nil
}
