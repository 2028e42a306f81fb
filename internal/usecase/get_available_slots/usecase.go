package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/availability"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business"
	resourceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// UseCase use case для получения доступных слотов ресурса на дату
type UseCase struct {
	resourceRepo    ResourceRepository
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	metrics         Metrics
	timeProvider    TimeProvider
	maxAdvanceDays  int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	scheduleRepo ScheduleRepository,
	reservationRepo ReservationRepository,
	metrics Metrics,
	timeProvider TimeProvider,
	maxAdvanceDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo:    resourceRepo,
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    timeProvider,
		maxAdvanceDays:  maxAdvanceDays,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Некорректное расписание бизнеса не является ошибкой запроса: возвращается пустой список с причиной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, resource=%d, date=%s",
		req.Session.BusinessID, req.ResourceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.maxAdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:       req.Date,
		ResourceID: req.ResourceID,
		Slots:      []types.TimeString{},
	}

	// 3. Проверяем ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, req.Session.BusinessID, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailableSlots: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}
	if !resource.Active {
		uc.logger.Warn("GetAvailableSlots: resource id=%d is inactive", req.ResourceID)
		return nil, ErrResourceNotFound
	}

	// 4. Получаем расписание бизнеса
	schedule, err := uc.scheduleRepo.GetSchedule(ctx, req.Session.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d has no schedule", req.Session.BusinessID)
			resp.Reason = availability.ReasonInvalidConfiguration
			return resp, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты на дату
	slots, reason, err := availability.SlotsForDate(schedule, req.Date, now, req.Session.DemoMode)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid configuration for business id=%d: %v", req.Session.BusinessID, err)
		resp.Reason = reason
		return resp, nil
	}
	if len(slots) == 0 {
		resp.Reason = reason
		return resp, nil
	}

	// 6. Исключаем занятые слоты
	booked, err := uc.reservationRepo.BookedTimes(ctx, req.Session.BusinessID, req.ResourceID, req.Date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	resp.Slots = availability.FilterOccupied(slots, booked)
	if len(resp.Slots) == 0 {
		resp.Reason = availability.ReasonFullyBooked
	}

	uc.metrics.ObserveSlots(len(resp.Slots))
	uc.logger.Info("GetAvailableSlots: %d slots available (%d generated, %d booked)", len(resp.Slots), len(slots), len(booked))

	return resp, nil
}
