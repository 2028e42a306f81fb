package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/availability"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
)

// UseCase use case для переноса бронирования на другое время, дату или ресурс
type UseCase struct {
	businessRepo    BusinessRepository
	resourceRepo    ResourceRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	resourceRepo ResourceRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		resourceRepo:    resourceRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет перенос. Исходное бронирование становится rescheduled и ссылается на новое,
// новое pending бронирование ссылается на исходное. Обе записи сохраняются в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: business=%d, reservation=%d, date=%s, time=%s, resource=%d",
		req.Session.BusinessID, req.ReservationID, req.Date.Format(domain.DateFormat), req.Time, req.ResourceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if domain.DateOnly(req.Date, now.Location()).Before(domain.DateOnly(now, now.Location())) {
		return nil, ErrInvalidDate
	}

	// 3. Получаем бизнес (для уведомления)
	business, err := uc.businessRepo.GetByID(ctx, req.Session.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("RescheduleReservation: failed to get business id=%d: %v", req.Session.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	var resp Response

	// 4. Переводим исходное бронирование и создаём новое в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем бронирование с блокировкой строки
		previous, err := uc.reservationRepo.GetByID(txCtx, business.ID, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("RescheduleReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 4.2. Переход статуса и построение нового бронирования
		successor, err := previous.Reschedule(domain.DateOnly(req.Date, now.Location()), req.Time, req.ResourceID, req.Reason)
		if err != nil {
			uc.logger.Warn("RescheduleReservation: reservation id=%d cannot be rescheduled: %v", previous.ID, err)
			return err
		}

		// 4.3. Новый ресурс должен быть активен
		if successor.ResourceID != previous.ResourceID {
			if err := uc.checkResource(txCtx, business.ID, successor.ResourceID); err != nil {
				return err
			}
		}

		// 4.4. Новое время должно быть свободным слотом
		if err := uc.checkSlot(txCtx, business.ID, successor, now, req.Session.DemoMode); err != nil {
			return err
		}

		// 4.5. Сохраняем новое бронирование
		successor, err = uc.reservationRepo.Create(txCtx, successor)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.metrics.IncReservationEvent(metrics.EventSlotTaken)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("RescheduleReservation: failed to create successor: %v", err)
			return fmt.Errorf("%w: failed to create successor: %v", ErrInternal, err)
		}

		// 4.6. Связываем исходное бронирование с новым
		previous.RescheduledToID = &successor.ID
		if err := uc.reservationRepo.Update(txCtx, previous); err != nil {
			uc.logger.Error("RescheduleReservation: failed to update reservation id=%d: %v", previous.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		resp.Previous = previous
		resp.Reservation = successor
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncReservationEvent(metrics.EventRescheduled)
	uc.logger.Info("RescheduleReservation: reservation id=%d rescheduled to id=%d", resp.Previous.ID, resp.Reservation.ID)

	// 5. Подтверждение клиенту о новом времени
	uc.notifier.SendConfirmationEmail(ctx, resp.Reservation, business)

	return &resp, nil
}

func (uc *UseCase) checkResource(ctx context.Context, businessID, resourceID int64) error {
	resource, err := uc.resourceRepo.GetByID(ctx, businessID, resourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}
	if !resource.Active {
		return ErrResourceNotFound
	}
	return nil
}

func (uc *UseCase) checkSlot(ctx context.Context, businessID int64, successor *domain.Reservation, now time.Time, demoMode bool) error {
	schedule, err := uc.businessRepo.GetSchedule(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrScheduleNotFound) {
			return ErrScheduleMisconfigured
		}
		return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	slots, reason, err := availability.SlotsForDate(schedule, successor.Date, now, demoMode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
	}
	if len(slots) == 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotAvailable, reason)
	}

	booked, err := uc.reservationRepo.BookedTimes(ctx, businessID, successor.ResourceID, successor.Date.Format(domain.DateFormat))
	if err != nil {
		return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	if !availability.Contains(availability.FilterOccupied(slots, booked), successor.Time) {
		uc.logger.Warn("RescheduleReservation: time %s is not an available slot", successor.Time)
		return ErrSlotNotAvailable
	}
	return nil
}
