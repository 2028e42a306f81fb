package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/availability"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business"
	resourceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// 2025-03-10 - понедельник
var now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type fixture struct {
	resources    *resourceRepoMock
	schedules    *scheduleRepoMock
	reservations *reservationRepoMock
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		resources:    &resourceRepoMock{},
		schedules:    &scheduleRepoMock{},
		reservations: &reservationRepoMock{},
	}
	f.uc = NewUseCase(f.resources, f.schedules, f.reservations, noopMetrics{}, fixedTime{now: now}, 60, logger.Nop())
	return f
}

func mondaySchedule() *domain.Schedule {
	return &domain.Schedule{
		BusinessID:      1,
		Hours:           domain.BusinessHours{domain.Lunes: {Open: "09:00", Close: "11:00"}},
		IntervalMinutes: 30,
		Blocked:         domain.Blocking{Hours: domain.BlockedHours{domain.Lunes: {"10:00"}}},
	}
}

func request(date time.Time) *Request {
	return &Request{Session: domain.Session{BusinessID: 1}, ResourceID: 2, Date: date}
}

func TestUseCase_Execute_FiltersBlockedAndBooked(t *testing.T) {
	f := newFixture()
	date := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(&domain.Resource{ID: 2, Active: true}, nil)
	f.schedules.On("GetSchedule", mock.Anything, int64(1)).Return(mondaySchedule(), nil)
	f.reservations.On("BookedTimes", mock.Anything, int64(1), int64(2), "2025-03-17").
		Return([]types.TimeString{"09:30"}, nil)

	resp, err := f.uc.Execute(context.Background(), request(date))

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:30"}, resp.Slots)
	assert.Equal(t, availability.ReasonNone, resp.Reason)
}

func TestUseCase_Execute_FullyBooked(t *testing.T) {
	f := newFixture()
	date := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(&domain.Resource{ID: 2, Active: true}, nil)
	f.schedules.On("GetSchedule", mock.Anything, int64(1)).Return(mondaySchedule(), nil)
	f.reservations.On("BookedTimes", mock.Anything, int64(1), int64(2), "2025-03-17").
		Return([]types.TimeString{"09:00", "09:30", "10:30"}, nil)

	resp, err := f.uc.Execute(context.Background(), request(date))

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, availability.ReasonFullyBooked, resp.Reason)
}

func TestUseCase_Execute_TodayCutoff(t *testing.T) {
	f := newFixture()

	f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(&domain.Resource{ID: 2, Active: true}, nil)
	schedule := mondaySchedule()
	schedule.Blocked = domain.Blocking{}
	f.schedules.On("GetSchedule", mock.Anything, int64(1)).Return(schedule, nil)
	f.reservations.On("BookedTimes", mock.Anything, int64(1), int64(2), "2025-03-10").Return([]types.TimeString{}, nil)

	f.uc.timeProvider = fixedTime{now: time.Date(2025, 3, 10, 9, 20, 0, 0, time.UTC)}
	resp, err := f.uc.Execute(context.Background(), request(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, err)
	// 09:20 + 15 = 09:35, остаются только более поздние отметки
	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, resp.Slots)
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	f := newFixture()

	f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(&domain.Resource{ID: 2, Active: true}, nil)
	f.schedules.On("GetSchedule", mock.Anything, int64(1)).Return(mondaySchedule(), nil)

	// вторник
	resp, err := f.uc.Execute(context.Background(), request(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, availability.ReasonClosed, resp.Reason)
	f.reservations.AssertNotCalled(t, "BookedTimes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_InvalidConfigurationIsNotAnError(t *testing.T) {
	f := newFixture()
	schedule := mondaySchedule()
	schedule.IntervalMinutes = 3

	f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(&domain.Resource{ID: 2, Active: true}, nil)
	f.schedules.On("GetSchedule", mock.Anything, int64(1)).Return(schedule, nil)

	resp, err := f.uc.Execute(context.Background(), request(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, availability.ReasonInvalidConfiguration, resp.Reason)
}

func TestUseCase_Execute_NoSchedule(t *testing.T) {
	f := newFixture()

	f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(&domain.Resource{ID: 2, Active: true}, nil)
	f.schedules.On("GetSchedule", mock.Anything, int64(1)).Return(nil, businessRepo.ErrScheduleNotFound)

	resp, err := f.uc.Execute(context.Background(), request(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, err)
	assert.Equal(t, availability.ReasonInvalidConfiguration, resp.Reason)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("date in the past", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Execute(context.Background(), request(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)))
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("date too far", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Execute(context.Background(), request(now.AddDate(0, 0, 61)))
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("resource not found", func(t *testing.T) {
		f := newFixture()
		f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(nil, resourceRepo.ErrResourceNotFound)
		_, err := f.uc.Execute(context.Background(), request(now))
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("inactive resource", func(t *testing.T) {
		f := newFixture()
		f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(&domain.Resource{ID: 2}, nil)
		_, err := f.uc.Execute(context.Background(), request(now))
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture()
		f.resources.On("GetByID", mock.Anything, int64(1), int64(2)).Return(nil, errors.New("connection reset"))
		_, err := f.uc.Execute(context.Background(), request(now))
		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, domain.ErrExternalService)
	})
}
