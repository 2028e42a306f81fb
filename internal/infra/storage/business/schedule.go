package business

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const scheduleTable = "business_schedules"

// GetSchedule получает расписание бизнеса. Часы и блокировки хранятся в JSONB.
func (r *Repository) GetSchedule(ctx context.Context, businessID int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"business_id",
		"hours",
		"interval_minutes",
		"blocked_days",
		"blocked_hours",
		"blocked_dates",
		"updated_at",
	).
		From(scheduleTable).
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.Schedule
	var hours, blockedDays, blockedHours, blockedDates []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.BusinessID,
		&hours,
		&schedule.IntervalMinutes,
		&blockedDays,
		&blockedHours,
		&blockedDates,
		&schedule.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - scan schedule: %v", ErrScanRow, err)
	}

	if err := decodeJSON(hours, &schedule.Hours); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - hours: %v", ErrEncodeSchedule, err)
	}
	if err := decodeJSON(blockedDays, &schedule.Blocked.Days); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - blocked days: %v", ErrEncodeSchedule, err)
	}
	if err := decodeJSON(blockedHours, &schedule.Blocked.Hours); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - blocked hours: %v", ErrEncodeSchedule, err)
	}
	if err := decodeJSON(blockedDates, &schedule.BlockedDates); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - blocked dates: %v", ErrEncodeSchedule, err)
	}

	return &schedule, nil
}

// UpsertSchedule создаёт или полностью заменяет расписание бизнеса
func (r *Repository) UpsertSchedule(ctx context.Context, schedule *domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hours, err := encodeJSON(schedule.Hours, "{}")
	if err != nil {
		return fmt.Errorf("%w: UpsertSchedule - hours: %v", ErrEncodeSchedule, err)
	}
	blockedDays, err := encodeJSON(schedule.Blocked.Days, "[]")
	if err != nil {
		return fmt.Errorf("%w: UpsertSchedule - blocked days: %v", ErrEncodeSchedule, err)
	}
	blockedHours, err := encodeJSON(schedule.Blocked.Hours, "{}")
	if err != nil {
		return fmt.Errorf("%w: UpsertSchedule - blocked hours: %v", ErrEncodeSchedule, err)
	}
	blockedDates, err := encodeJSON(schedule.BlockedDates, "[]")
	if err != nil {
		return fmt.Errorf("%w: UpsertSchedule - blocked dates: %v", ErrEncodeSchedule, err)
	}

	query, args, err := psqlbuilder.Insert(scheduleTable).
		Columns(
			"business_id",
			"hours",
			"interval_minutes",
			"blocked_days",
			"blocked_hours",
			"blocked_dates",
		).
		Values(
			schedule.BusinessID,
			hours,
			schedule.IntervalMinutes,
			blockedDays,
			blockedHours,
			blockedDates,
		).
		Suffix(`ON CONFLICT (business_id) DO UPDATE SET
			hours = EXCLUDED.hours,
			interval_minutes = EXCLUDED.interval_minutes,
			blocked_days = EXCLUDED.blocked_days,
			blocked_hours = EXCLUDED.blocked_hours,
			blocked_dates = EXCLUDED.blocked_dates,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertSchedule - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&schedule.UpdatedAt); err != nil {
		return fmt.Errorf("%w: UpsertSchedule - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

func decodeJSON(raw []byte, v interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// encodeJSON сериализует значение, пустые коллекции сохраняются как empty
func encodeJSON(v interface{}, empty string) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(raw) == "null" {
		return empty, nil
	}
	return string(raw), nil
}
