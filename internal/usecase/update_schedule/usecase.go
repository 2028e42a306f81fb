package update_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/availability"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business"
)

// UseCase use case для изменения расписания бизнеса
type UseCase struct {
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	reservationRepo ReservationRepository,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute проверяет новое расписание и сохраняет его, если оно не затрагивает pending бронирования.
// При конфликтах возвращает *ConflictsError: бронирования нужно перенести или отменить вручную.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: business=%d, actor=%d", req.Session.BusinessID, req.Session.ActorID)

	// 1. Валидация и сборка нового расписания
	schedule, err := buildSchedule(req)
	if err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее расписание (его может не быть)
	current, err := uc.scheduleRepo.GetSchedule(ctx, req.Session.BusinessID)
	if err != nil && !errors.Is(err, businessRepo.ErrScheduleNotFound) {
		uc.logger.Error("UpdateSchedule: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if current == nil {
		current = &domain.Schedule{BusinessID: req.Session.BusinessID}
	}

	// 3. Pending бронирования начиная с сегодня
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now, now.Location())
	pending, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		BusinessID: req.Session.BusinessID,
		From:       &today,
		Statuses:   []domain.ReservationStatus{domain.StatusPending},
	})
	if err != nil {
		uc.logger.Error("UpdateSchedule: failed to list pending reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// Просроченные будут переведены в unfulfilled при следующем чтении и не мешают изменению
	upcoming := make([]*domain.Reservation, 0, len(pending))
	for _, r := range pending {
		if !r.IsOverdue(now) {
			upcoming = append(upcoming, r)
		}
	}

	// 4. Ищем конфликты
	conflicts := availability.DetectConflicts(current.Hours, current.Blocked, schedule.Hours, schedule.Blocked, upcoming)
	conflicts = appendBlockedDateConflicts(conflicts, current, schedule, upcoming)
	if len(conflicts) > 0 {
		uc.metrics.AddScheduleConflicts(len(conflicts))
		uc.logger.Warn("UpdateSchedule: %d pending reservations conflict with the new schedule", len(conflicts))
		return nil, &ConflictsError{Reservations: conflicts}
	}

	// 5. Сохраняем
	if err := uc.scheduleRepo.UpsertSchedule(ctx, schedule); err != nil {
		uc.logger.Error("UpdateSchedule: failed to save schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to save schedule: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateSchedule: schedule of business=%d updated", req.Session.BusinessID)
	return &Response{Schedule: schedule}, nil
}

// appendBlockedDateConflicts добавляет бронирования на даты, которые закрываются новым расписанием.
// Бронирования, недопустимые и по текущему расписанию, не учитываются.
func appendBlockedDateConflicts(conflicts []*domain.Reservation, current, next *domain.Schedule, pending []*domain.Reservation) []*domain.Reservation {
	seen := make(map[int64]bool, len(conflicts))
	for _, r := range conflicts {
		seen[r.ID] = true
	}
	for _, r := range pending {
		if seen[r.ID] {
			continue
		}
		if !availability.Accepts(current.Hours, current.Blocked, r) {
			continue
		}
		if next.IsDateBlocked(r.Date) && !current.IsDateBlocked(r.Date) {
			seen[r.ID] = true
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}
