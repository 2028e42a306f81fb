package get_available_slots

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type resourceRepoMock struct{ mock.Mock }

func (m *resourceRepoMock) GetByID(ctx context.Context, businessID, id int64) (*domain.Resource, error) {
	args := m.Called(ctx, businessID, id)
	res, _ := args.Get(0).(*domain.Resource)
	return res, args.Error(1)
}

type scheduleRepoMock struct{ mock.Mock }

func (m *scheduleRepoMock) GetSchedule(ctx context.Context, businessID int64) (*domain.Schedule, error) {
	args := m.Called(ctx, businessID)
	s, _ := args.Get(0).(*domain.Schedule)
	return s, args.Error(1)
}

type reservationRepoMock struct{ mock.Mock }

func (m *reservationRepoMock) BookedTimes(ctx context.Context, businessID, resourceID int64, date string) ([]types.TimeString, error) {
	args := m.Called(ctx, businessID, resourceID, date)
	times, _ := args.Get(0).([]types.TimeString)
	return times, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopMetrics struct{}

func (noopMetrics) ObserveSlots(int) {}
