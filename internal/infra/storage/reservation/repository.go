package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	table = "reservations"

	// uniqueViolation код ошибки PostgreSQL unique_violation
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"business_id",
	"resource_id",
	"service_id",
	"reservation_date",
	"reservation_time",
	"status",
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_document",
	"notes",
	"unfulfilled_reason",
	"reason_note",
	"reschedule_reason",
	"rescheduled_from_id",
	"rescheduled_to_id",
	"payment_url",
	"fulfilled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований. Записи не удаляются - только меняется статус.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Гонку за слот разрешает частичный уникальный индекс: при нарушении возвращается ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"business_id",
			"resource_id",
			"service_id",
			"reservation_date",
			"reservation_time",
			"status",
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_document",
			"notes",
			"reschedule_reason",
			"rescheduled_from_id",
			"payment_url",
		).
		Values(
			res.BusinessID,
			res.ResourceID,
			res.ServiceID,
			res.Date.Format(domain.DateFormat),
			res.Time,
			res.Status,
			res.Customer.Name,
			res.Customer.Email,
			res.Customer.Phone,
			res.Customer.Document,
			res.Notes,
			res.RescheduleReason,
			res.RescheduledFromID,
			res.PaymentURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование бизнеса по ID
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "business_id": businessID})

	// Внутри транзакции блокируем строку до конца перехода статуса
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования бизнеса по фильтру.
// Для конкретной даты сортировка по времени, для периода - по дате и времени.
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"business_id": filter.BusinessID})

	if filter.ResourceID != nil {
		builder = builder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"reservation_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"reservation_date": filter.From.Format(domain.DateFormat)})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"reservation_date": filter.To.Format(domain.DateFormat)})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		builder = builder.Where(squirrel.Eq{"status": statuses})
	}

	// Email и документ клиента - через ИЛИ: поиск дубликатов бронирования одного клиента
	customer := squirrel.Or{}
	if filter.Email != nil {
		customer = append(customer, squirrel.Eq{"customer_email": *filter.Email})
	}
	if filter.Document != nil {
		customer = append(customer, squirrel.Eq{"customer_document": *filter.Document})
	}
	if len(customer) > 0 {
		builder = builder.Where(customer)
	}

	if filter.Date != nil {
		builder = builder.OrderBy("reservation_time ASC")
	} else {
		builder = builder.OrderBy("reservation_date ASC", "reservation_time ASC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %v", ErrScanRow, err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// BookedTimes времена активных бронирований ресурса на дату
func (r *Repository) BookedTimes(ctx context.Context, businessID, resourceID int64, date string) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("reservation_time").
		From(table).
		Where(squirrel.Eq{
			"business_id":      businessID,
			"resource_id":      resourceID,
			"reservation_date": date,
			"status":           []string{string(domain.StatusPending), string(domain.StatusFulfilled)},
		}).
		OrderBy("reservation_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: BookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - iterate rows: %v", ErrScanRow, err)
	}

	return times, nil
}

// Update сохраняет изменяемые поля бронирования (статус, причины, ссылки, услугу, оплату)
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("service_id", res.ServiceID).
		Set("status", res.Status).
		Set("unfulfilled_reason", res.UnfulfilledReason).
		Set("reason_note", res.ReasonNote).
		Set("reschedule_reason", res.RescheduleReason).
		Set("rescheduled_to_id", res.RescheduledToID).
		Set("payment_url", res.PaymentURL).
		Set("fulfilled_at", res.FulfilledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID, "business_id": res.BusinessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res       domain.Reservation
		reason    sql.NullString
		fulfilled sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.BusinessID,
		&res.ResourceID,
		&res.ServiceID,
		&res.Date,
		&res.Time,
		&res.Status,
		&res.Customer.Name,
		&res.Customer.Email,
		&res.Customer.Phone,
		&res.Customer.Document,
		&res.Notes,
		&reason,
		&res.ReasonNote,
		&res.RescheduleReason,
		&res.RescheduledFromID,
		&res.RescheduledToID,
		&res.PaymentURL,
		&fulfilled,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reason.Valid {
		r := domain.UnfulfilledReason(reason.String)
		res.UnfulfilledReason = &r
	}
	if fulfilled.Valid {
		res.FulfilledAt = &fulfilled.Time
	}

	return &res, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
