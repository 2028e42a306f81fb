package create_reservation

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
	createReservation "github.com/m04kA/SMC-AgendaService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type useCaseMock struct{ mock.Mock }

func (m *useCaseMock) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createReservation.Response)
	return resp, args.Error(1)
}

var session = domain.Session{BusinessID: 5}

const validBody = `{
	"resourceId": 3,
	"date": "2025-03-12",
	"time": "10:30",
	"customer": {"name": "Ana", "email": "ana@example.com", "phone": "3001234567", "document": "123456"}
}`

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/5/reservations", strings.NewReader(body))
	req = req.WithContext(middleware.WithSession(req.Context(), session))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createReservation.Request) bool {
		return r.Session == session &&
			r.ResourceID == 3 &&
			r.Date.Format(domain.DateFormat) == "2025-03-12" &&
			r.Time.String() == "10:30" &&
			r.Customer.Document == "123456"
	})).Return(&createReservation.Response{
		Reservation: &domain.Reservation{
			ID:         77,
			BusinessID: 5,
			ResourceID: 3,
			Date:       time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Time:       types.MustTimeString("10:30"),
			Status:     domain.StatusPending,
		},
		PaymentURL: ptr.Ptr("https://pay.example.com/s/1"),
	}, nil)

	rec := serve(NewHandler(uc, time.UTC, logger.Nop()), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(77), body["id"])
	assert.Equal(t, "10:30", body["time"])
	assert.Equal(t, "https://pay.example.com/s/1", body["paymentUrl"])
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"slot taken", createReservation.ErrSlotNotAvailable, http.StatusConflict},
		{"duplicate", createReservation.ErrDuplicateReservation, http.StatusConflict},
		{"resource not found", createReservation.ErrResourceNotFound, http.StatusNotFound},
		{"past date", createReservation.ErrInvalidDate, http.StatusBadRequest},
		{"misconfigured", createReservation.ErrScheduleMisconfigured, http.StatusUnprocessableEntity},
		{"payment", createReservation.ErrPaymentLink, http.StatusBadGateway},
		{"internal", createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(useCaseMock)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, time.UTC, logger.Nop()), validBody)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"unknown field", `{"resourceId": 3, "foo": 1}`},
		{"bad date", `{"resourceId": 3, "date": "12/03/2025", "time": "10:30"}`},
		{"bad time", `{"resourceId": 3, "date": "2025-03-12", "time": "25:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(useCaseMock)

			rec := serve(NewHandler(uc, time.UTC, logger.Nop()), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
