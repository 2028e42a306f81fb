package sales

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/sales/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type reservationRepoMock struct{ mock.Mock }

func (m *reservationRepoMock) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

type resourceRepoMock struct{ mock.Mock }

func (m *resourceRepoMock) List(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Resource, error) {
	args := m.Called(ctx, businessID, onlyActive)
	list, _ := args.Get(0).([]*domain.Resource)
	return list, args.Error(1)
}

type catalogRepoMock struct{ mock.Mock }

func (m *catalogRepoMock) List(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Service, error) {
	args := m.Called(ctx, businessID, onlyActive)
	list, _ := args.Get(0).([]*domain.Service)
	return list, args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var (
	now     = time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC)
	session = domain.Session{ActorID: 42, BusinessID: 5}
)

func fulfilled(resourceID int64, serviceID *int64) *domain.Reservation {
	return &domain.Reservation{
		BusinessID: 5,
		ResourceID: resourceID,
		ServiceID:  serviceID,
		Date:       time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Time:       types.MustTimeString("10:00"),
		Status:     domain.StatusFulfilled,
	}
}

func newService(list []*domain.Reservation) (*Service, *reservationRepoMock) {
	reservations := new(reservationRepoMock)
	reservations.On("List", mock.Anything, mock.Anything).Return(list, nil)

	resources := new(resourceRepoMock)
	resources.On("List", mock.Anything, int64(5), false).Return([]*domain.Resource{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Luis", Active: false},
	}, nil)

	catalog := new(catalogRepoMock)
	catalog.On("List", mock.Anything, int64(5), false).Return([]*domain.Service{
		{ID: 10, Name: "Corte", Price: 20000},
		{ID: 11, Name: "Barba", Price: 15000},
	}, nil)

	return NewService(reservations, resources, catalog, fixedClock{now: now}, logger.Nop()), reservations
}

func TestService_Report_Aggregates(t *testing.T) {
	svc, _ := newService([]*domain.Reservation{
		fulfilled(1, ptr.Ptr(int64(10))),
		fulfilled(1, ptr.Ptr(int64(11))),
		fulfilled(2, ptr.Ptr(int64(10))),
		fulfilled(2, nil),
		fulfilled(7, ptr.Ptr(int64(99))),
	})

	report, err := svc.Report(context.Background(), session, &models.ReportRequest{})

	require.NoError(t, err)
	assert.Equal(t, 5, report.TotalCount)
	assert.Equal(t, 55000.0, report.TotalRevenue)

	assert.Equal(t, []models.ReportLine{
		{ID: 1, Name: "Ana", Count: 2, Revenue: 35000},
		{ID: 2, Name: "Luis", Count: 2, Revenue: 20000},
		{ID: 7, Name: "Profesional #7", Count: 1, Revenue: 0},
	}, report.ByProfessional)

	assert.Equal(t, []models.ReportLine{
		{ID: 10, Name: "Corte", Count: 2, Revenue: 40000},
		{ID: 11, Name: "Barba", Count: 1, Revenue: 15000},
		{ID: 99, Name: "Servicio #99", Count: 1, Revenue: 0},
		{ID: 0, Name: "Sin servicio", Count: 1, Revenue: 0},
	}, report.ByService)
}

func TestService_Report_DefaultsToCurrentMonth(t *testing.T) {
	svc, reservations := newService(nil)

	report, err := svc.Report(context.Background(), session, &models.ReportRequest{})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", report.From)
	assert.Equal(t, "2025-03-20", report.To)
	assert.Empty(t, report.ByProfessional)
	reservations.AssertCalled(t, "List", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
		return f.BusinessID == 5 && len(f.Statuses) == 1 && f.Statuses[0] == domain.StatusFulfilled
	}))
}

func TestService_Report_InvalidPeriod(t *testing.T) {
	svc, reservations := newService(nil)

	_, err := svc.Report(context.Background(), session, &models.ReportRequest{
		From: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidPeriod)
	reservations.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestService_ExportXLSX(t *testing.T) {
	svc, _ := newService([]*domain.Reservation{
		fulfilled(1, ptr.Ptr(int64(10))),
	})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportXLSX(context.Background(), session, &models.ReportRequest{}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, professionalSheet, serviceSheet}, f.GetSheetList())

	name, err := f.GetCellValue(professionalSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)

	count, err := f.GetCellValue(serviceSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", count)

	total, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "1", total)
}
