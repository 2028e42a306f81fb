package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil, "agenda")), mock
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		BusinessID: 1,
		ResourceID: 2,
		ServiceID:  ptr.Ptr(int64(3)),
		Date:       time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Time:       types.MustTimeString("10:00"),
		Status:     domain.StatusPending,
		Customer: domain.Customer{
			Name:     "Ana Torres",
			Email:    "ana@example.com",
			Phone:    "3001234567",
			Document: "10203040",
		},
	}
}

func reservationRow(mock sqlmock.Sqlmock, id int64, at string, status domain.ReservationStatus) *sqlmock.Rows {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return mock.NewRows(columns).AddRow(
		id, int64(1), int64(2), int64(3),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), at+":00", string(status),
		"Ana Torres", "ana@example.com", "3001234567", "10203040",
		nil, nil, nil, nil, nil, nil, nil, nil,
		now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(int64(1), int64(2), sqlmock.AnyArg(), "2025-03-11", sqlmock.AnyArg(), sqlmock.AnyArg(),
			"Ana Torres", "ana@example.com", "3001234567", "10203040",
			nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), created, created))

	res, err := repo.Create(context.Background(), sampleReservation())

	require.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, created, res.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "reservations_active_slot_uniq"})

	_, err := repo.Create(context.Background(), sampleReservation())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, business_id, resource_id")).
		WithArgs(int64(1), int64(42)).
		WillReturnRows(reservationRow(mock, 42, "10:00", domain.StatusPending))

	res, err := repo.GetByID(context.Background(), 1, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, types.TimeString("10:00"), res.Time)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, int64(3), *res.ServiceID)
	assert.Nil(t, res.UnfulfilledReason)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WillReturnRows(mock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_List_Filters(t *testing.T) {
	repo, mock := newRepo(t)
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM reservations WHERE business_id = \$1 AND resource_id = \$2 AND reservation_date >= \$3 AND status IN \(\$4\) ORDER BY reservation_date ASC, reservation_time ASC`).
		WithArgs(int64(1), int64(2), "2025-03-10", "pending").
		WillReturnRows(reservationRow(mock, 1, "10:00", domain.StatusPending))

	list, err := repo.List(context.Background(), domain.ReservationFilter{
		BusinessID: 1,
		ResourceID: ptr.Ptr(int64(2)),
		From:       &from,
		Statuses:   []domain.ReservationStatus{domain.StatusPending},
	})

	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_CustomerDuplicates(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`WHERE business_id = \$1 AND \(customer_email = \$2 OR customer_document = \$3\)`).
		WithArgs(int64(1), "ana@example.com", "10203040").
		WillReturnRows(mock.NewRows(columns))

	list, err := repo.List(context.Background(), domain.ReservationFilter{
		BusinessID: 1,
		Email:      ptr.Ptr("ana@example.com"),
		Document:   ptr.Ptr("10203040"),
	})

	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BookedTimes(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT reservation_time FROM reservations").
		WillReturnRows(mock.NewRows([]string{"reservation_time"}).AddRow("10:00:00").AddRow("11:30:00"))

	times, err := repo.BookedTimes(context.Background(), 1, 2, "2025-03-11")

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:30"}, times)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepo(t)
	res := sampleReservation()
	res.ID = 42
	res.Status = domain.StatusFulfilled

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), res))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), res), ErrReservationNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
