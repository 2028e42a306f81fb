package get_sales

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/sales"
	"github.com/m04kA/SMC-AgendaService/internal/service/sales/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type salesMock struct{ mock.Mock }

func (m *salesMock) Report(ctx context.Context, session domain.Session, req *models.ReportRequest) (*models.ReportResponse, error) {
	args := m.Called(ctx, session, req)
	resp, _ := args.Get(0).(*models.ReportResponse)
	return resp, args.Error(1)
}

func (m *salesMock) ExportXLSX(ctx context.Context, session domain.Session, req *models.ReportRequest, w io.Writer) error {
	args := m.Called(ctx, session, req, w)
	if args.Error(0) == nil {
		_, _ = w.Write([]byte("PK"))
	}
	return args.Error(0)
}

func serve(h *Handler, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req = req.WithContext(middleware.WithSession(req.Context(), domain.Session{ActorID: 42, BusinessID: 5}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_JSONReportWithPeriod(t *testing.T) {
	svc := new(salesMock)
	svc.On("Report", mock.Anything, mock.Anything, mock.MatchedBy(func(r *models.ReportRequest) bool {
		return r.From.Format(domain.DateFormat) == "2025-02-01" && r.To.Format(domain.DateFormat) == "2025-02-28"
	})).Return(&models.ReportResponse{From: "2025-02-01", To: "2025-02-28"}, nil)

	rec := serve(NewHandler(svc, time.UTC, logger.Nop()), "/api/v1/businesses/5/sales?from=2025-02-01&to=2025-02-28")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"from":"2025-02-01"`)
}

func TestHandler_XLSX(t *testing.T) {
	svc := new(salesMock)
	svc.On("ExportXLSX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	rec := serve(NewHandler(svc, time.UTC, logger.Nop()), "/api/v1/businesses/5/sales?format=xlsx")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, "PK", rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	svc := new(salesMock)
	svc.On("Report", mock.Anything, mock.Anything, mock.Anything).Return(nil, sales.ErrInvalidPeriod)

	h := NewHandler(svc, time.UTC, logger.Nop())

	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/businesses/5/sales?from=2025-13-01").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/businesses/5/sales?format=pdf").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/businesses/5/sales").Code)
}
