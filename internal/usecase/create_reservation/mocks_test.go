package create_reservation

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type businessRepoMock struct{ mock.Mock }

func (m *businessRepoMock) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Business)
	return b, args.Error(1)
}

func (m *businessRepoMock) GetSchedule(ctx context.Context, businessID int64) (*domain.Schedule, error) {
	args := m.Called(ctx, businessID)
	s, _ := args.Get(0).(*domain.Schedule)
	return s, args.Error(1)
}

type resourceRepoMock struct{ mock.Mock }

func (m *resourceRepoMock) GetByID(ctx context.Context, businessID, id int64) (*domain.Resource, error) {
	args := m.Called(ctx, businessID, id)
	r, _ := args.Get(0).(*domain.Resource)
	return r, args.Error(1)
}

type catalogRepoMock struct{ mock.Mock }

func (m *catalogRepoMock) GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error) {
	args := m.Called(ctx, businessID, id)
	s, _ := args.Get(0).(*domain.Service)
	return s, args.Error(1)
}

type reservationRepoMock struct{ mock.Mock }

func (m *reservationRepoMock) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Reservation) *domain.Reservation); ok {
		return fn(ctx, res), args.Error(1)
	}
	r, _ := args.Get(0).(*domain.Reservation)
	return r, args.Error(1)
}

func (m *reservationRepoMock) Update(ctx context.Context, res *domain.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *reservationRepoMock) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *reservationRepoMock) BookedTimes(ctx context.Context, businessID, resourceID int64, date string) ([]types.TimeString, error) {
	args := m.Called(ctx, businessID, resourceID, date)
	times, _ := args.Get(0).([]types.TimeString)
	return times, args.Error(1)
}

type paymentsMock struct{ mock.Mock }

func (m *paymentsMock) CreatePaymentLink(ctx context.Context, amount int64, description string, metadata map[string]string) (string, error) {
	args := m.Called(ctx, amount, description, metadata)
	return args.String(0), args.Error(1)
}

type notifierMock struct{ mock.Mock }

func (m *notifierMock) SendConfirmationEmail(ctx context.Context, res *domain.Reservation, business *domain.Business) {
	m.Called(ctx, res, business)
}

type metricsStub struct{ events []string }

func (m *metricsStub) IncReservationEvent(event string) { m.events = append(m.events, event) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }
