package get_sales

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/sales"
	"github.com/m04kA/SMC-AgendaService/internal/service/sales/models"
)

const (
	formatXLSX      = "xlsx"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	msgInvalidDate   = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidFormat = "formato de exportación no soportado"
	msgInvalidPeriod = "periodo inválido"
)

type Handler struct {
	service  SalesService
	location *time.Location
	logger   Logger
}

func NewHandler(service SalesService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/sales
// Query params: from, to (YYYY-MM-DD, необязательные), format (json | xlsx)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("GET /businesses/{id}/sales - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	req := &models.ReportRequest{}
	from, err := handlers.QueryDate(r, "from", h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to", h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if from != nil {
		req.From = *from
	}
	if to != nil {
		req.To = *to
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		h.respondJSON(w, r, session, req)
	case formatXLSX:
		h.respondXLSX(w, r, session, req)
	default:
		h.logger.Warn("GET /businesses/{id}/sales - Unsupported format: %s", format)
		handlers.RespondBadRequest(w, msgInvalidFormat)
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, session domain.Session, req *models.ReportRequest) {
	report, err := h.service.Report(r.Context(), session, req)
	if err != nil {
		h.respondError(w, session.BusinessID, err)
		return
	}

	h.logger.Info("GET /businesses/{id}/sales - Report built: business_id=%d, period=%s..%s",
		session.BusinessID, report.From, report.To)
	handlers.RespondJSON(w, http.StatusOK, report)
}

func (h *Handler) respondXLSX(w http.ResponseWriter, r *http.Request, session domain.Session, req *models.ReportRequest) {
	// Файл собирается в буфер, чтобы при ошибке вернуть JSON с ошибкой
	var buf bytes.Buffer
	if err := h.service.ExportXLSX(r.Context(), session, req, &buf); err != nil {
		h.respondError(w, session.BusinessID, err)
		return
	}

	filename := fmt.Sprintf("ventas-%s.xlsx", time.Now().In(h.location).Format("2006-01-02"))
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /businesses/{id}/sales - Failed to write xlsx: business_id=%d, error=%v", session.BusinessID, err)
		return
	}

	h.logger.Info("GET /businesses/{id}/sales - Report exported: business_id=%d", session.BusinessID)
}

func (h *Handler) respondError(w http.ResponseWriter, businessID int64, err error) {
	if errors.Is(err, sales.ErrInvalidPeriod) {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	h.logger.Error("GET /businesses/{id}/sales - Failed to build report: business_id=%d, error=%v", businessID, err)
	handlers.RespondInternalError(w)
}
