package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/availability"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/payments"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// UseCase use case для создания бронирования клиентом
type UseCase struct {
	businessRepo    BusinessRepository
	resourceRepo    ResourceRepository
	catalogRepo     CatalogRepository
	reservationRepo ReservationRepository
	payments        PaymentClient
	notifier        Notifier
	metrics         Metrics
	timeProvider    TimeProvider
	maxAdvanceDays  int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// paymentClient может быть nil, если платежи выключены.
func NewUseCase(
	businessRepo BusinessRepository,
	resourceRepo ResourceRepository,
	catalogRepo CatalogRepository,
	reservationRepo ReservationRepository,
	paymentClient PaymentClient,
	notifier Notifier,
	metrics Metrics,
	timeProvider TimeProvider,
	maxAdvanceDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		resourceRepo:    resourceRepo,
		catalogRepo:     catalogRepo,
		reservationRepo: reservationRepo,
		payments:        paymentClient,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    timeProvider,
		maxAdvanceDays:  maxAdvanceDays,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка слота перед вставкой не гарантирует отсутствие гонки: её разрешает уникальный индекс хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.Customer = normalizeCustomer(req.Customer)

	uc.logger.Info("CreateReservation: business=%d, resource=%d, date=%s, time=%s",
		req.Session.BusinessID, req.ResourceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.maxAdvanceDays); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}
	today := domain.DateOnly(now, now.Location())

	// 3. Получаем бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.Session.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateReservation: business id=%d not found", req.Session.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateReservation: failed to get business id=%d: %v", req.Session.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Проверяем ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, business.ID, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("CreateReservation: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}
	if !resource.Active {
		uc.logger.Warn("CreateReservation: resource id=%d is inactive", req.ResourceID)
		return nil, ErrResourceNotFound
	}

	// 5. Проверяем услугу, если выбрана
	if req.ServiceID != nil {
		service, err := uc.catalogRepo.GetByID(ctx, business.ID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateReservation: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.Active {
			return nil, ErrServiceNotFound
		}
	}

	// 6. Проверяем, что время - свободный слот
	if err := uc.checkSlot(ctx, req, business, now); err != nil {
		return nil, err
	}

	// 7. У клиента не должно быть другого активного бронирования в этом бизнесе
	duplicates, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		BusinessID: business.ID,
		From:       &today,
		Statuses:   []domain.ReservationStatus{domain.StatusPending},
		Email:      ptr.Ptr(req.Customer.Email),
		Document:   ptr.Ptr(req.Customer.Document),
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check duplicates: %v", err)
		return nil, fmt.Errorf("%w: failed to check duplicates: %v", ErrInternal, err)
	}
	if len(duplicates) > 0 {
		uc.logger.Warn("CreateReservation: customer already has reservation id=%d", duplicates[0].ID)
		return nil, ErrDuplicateReservation
	}

	// 8. Сохраняем бронирование
	reservation, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
		BusinessID: business.ID,
		ResourceID: resource.ID,
		ServiceID:  req.ServiceID,
		Date:       domain.DateOnly(req.Date, now.Location()),
		Time:       req.Time,
		Status:     domain.StatusPending,
		Customer:   req.Customer,
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.metrics.IncReservationEvent(metrics.EventSlotTaken)
			uc.logger.Warn("CreateReservation: slot %s %s was taken concurrently", req.Date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}
	uc.metrics.IncReservationEvent(metrics.EventCreated)
	uc.logger.Info("CreateReservation: reservation id=%d created", reservation.ID)

	// 9. Ссылка на предоплату
	if err := uc.attachPaymentLink(ctx, reservation, business, resource); err != nil {
		return nil, err
	}

	// 10. Подтверждение клиенту (ошибки только логируются)
	uc.notifier.SendConfirmationEmail(ctx, reservation, business)

	return &Response{Reservation: reservation, PaymentURL: reservation.PaymentURL}, nil
}

// checkSlot проверяет, что время входит в свободные слоты ресурса на дату
func (uc *UseCase) checkSlot(ctx context.Context, req *Request, business *domain.Business, now time.Time) error {
	schedule, err := uc.businessRepo.GetSchedule(ctx, business.ID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateReservation: business id=%d has no schedule", business.ID)
			return ErrScheduleMisconfigured
		}
		uc.logger.Error("CreateReservation: failed to get schedule: %v", err)
		return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	slots, reason, err := availability.SlotsForDate(schedule, req.Date, now, business.DemoMode)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid configuration for business id=%d: %v", business.ID, err)
		return fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
	}
	if len(slots) == 0 {
		uc.logger.Warn("CreateReservation: no slots on %s: %s", req.Date.Format(domain.DateFormat), reason)
		return fmt.Errorf("%w: %s", ErrSlotNotAvailable, reason)
	}

	booked, err := uc.reservationRepo.BookedTimes(ctx, business.ID, req.ResourceID, req.Date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get booked times: %v", err)
		return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	if !availability.Contains(availability.FilterOccupied(slots, booked), req.Time) {
		uc.logger.Warn("CreateReservation: time %s is not an available slot", req.Time)
		return ErrSlotNotAvailable
	}
	return nil
}

// attachPaymentLink создаёт ссылку на депозит и сохраняет её в бронировании.
// При ошибке шлюза бронирование снимается, чтобы клиент мог повторить запрос.
func (uc *UseCase) attachPaymentLink(ctx context.Context, res *domain.Reservation, business *domain.Business, resource *domain.Resource) error {
	if !business.RequiresDeposit || business.DepositAmount <= 0 {
		return nil
	}
	if uc.payments == nil {
		uc.logger.Warn("CreateReservation: business id=%d requires deposit but payments are disabled", business.ID)
		return nil
	}

	description := fmt.Sprintf("%s - %s %s %s", business.Name, resource.Name, res.Date.Format(domain.DateFormat), res.Time)
	url, err := uc.payments.CreatePaymentLink(ctx, payments.ToMinorUnits(business.DepositAmount), description, map[string]string{
		"business_id":    strconv.FormatInt(business.ID, 10),
		"reservation_id": strconv.FormatInt(res.ID, 10),
	})
	if err != nil {
		uc.logger.Error("CreateReservation: payment link for reservation id=%d failed: %v", res.ID, err)
		uc.release(ctx, res)
		return fmt.Errorf("%w: reservation id=%d: %v", ErrPaymentLink, res.ID, err)
	}

	res.PaymentURL = &url
	if err := uc.reservationRepo.Update(ctx, res); err != nil {
		uc.logger.Error("CreateReservation: failed to save payment link for reservation id=%d: %v", res.ID, err)
		return fmt.Errorf("%w: failed to save payment link: %v", ErrInternal, err)
	}
	return nil
}

// release освобождает слот бронирования, для которого не удалось оформить предоплату
func (uc *UseCase) release(ctx context.Context, res *domain.Reservation) {
	if err := res.Abandon(domain.ReasonPaymentFailed); err != nil {
		uc.logger.Error("CreateReservation: cannot release reservation id=%d: %v", res.ID, err)
		return
	}
	if err := uc.reservationRepo.Update(ctx, res); err != nil {
		uc.logger.Error("CreateReservation: failed to release reservation id=%d: %v", res.ID, err)
		return
	}
	uc.logger.Warn("CreateReservation: reservation id=%d released after payment failure", res.ID)
}
