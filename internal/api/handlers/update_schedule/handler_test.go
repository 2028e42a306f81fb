package update_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	updateSchedule "github.com/m04kA/SMC-AgendaService/internal/usecase/update_schedule"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type useCaseMock struct{ mock.Mock }

func (m *useCaseMock) Execute(ctx context.Context, req *updateSchedule.Request) (*updateSchedule.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*updateSchedule.Response)
	return resp, args.Error(1)
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/businesses/5/schedule", strings.NewReader(body))
	req = req.WithContext(middleware.WithSession(req.Context(), domain.Session{ActorID: 42, BusinessID: 5}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_AcceptsNumericAndStringInterval(t *testing.T) {
	for _, body := range []string{
		`{"hours": {"monday": {"open": "09:00", "close": "18:00"}}, "interval": 30}`,
		`{"hours": {"monday": {"open": "09:00", "close": "18:00"}}, "interval": "30"}`,
	} {
		uc := new(useCaseMock)
		uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *updateSchedule.Request) bool {
			return r.Interval == "30" && r.Hours["monday"].Open == "09:00" && r.Session.BusinessID == 5
		})).Return(&updateSchedule.Response{Schedule: &domain.Schedule{BusinessID: 5, IntervalMinutes: 30}}, nil)

		rec := serve(NewHandler(uc, logger.Nop()), body)

		assert.Equal(t, http.StatusOK, rec.Code, body)
		uc.AssertExpectations(t)
	}
}

func TestHandler_ConflictsListed(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &updateSchedule.ConflictsError{
		Reservations: []*domain.Reservation{{
			ID:         9,
			BusinessID: 5,
			Date:       time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
			Time:       types.MustTimeString("17:30"),
			Status:     domain.StatusPending,
		}},
	})

	rec := serve(NewHandler(uc, logger.Nop()), `{"hours": {}, "interval": 30}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body ConflictsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, int64(9), body.Conflicts[0].ID)
	assert.Equal(t, "2025-03-17", body.Conflicts[0].Date)
	assert.NotEmpty(t, body.Error)
}

func TestHandler_InvalidSchedule(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, updateSchedule.ErrInvalidInput)

	rec := serve(NewHandler(uc, logger.Nop()), `{"hours": {}, "interval": 3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
