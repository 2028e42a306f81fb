package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
)

// maxListPeriodDays максимальная длина периода в списке бронирований
const maxListPeriodDays = 366

// Service сервис бронирований для панели владельца
type Service struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// List получает бронирования бизнеса по фильтру.
// Просроченные pending бронирования при чтении переводятся в unfulfilled.
func (s *Service) List(ctx context.Context, session domain.Session, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for business=%d", session.BusinessID)

	filter, err := toDomainFilter(session.BusinessID, req)
	if err != nil {
		s.logger.Warn("List: invalid filter for business=%d: %v", session.BusinessID, err)
		return nil, err
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", session.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.sweep(ctx, list)

	// После перевода в unfulfilled запись может перестать подходить под фильтр по статусу
	if len(filter.Statuses) > 0 {
		list = filterByStatus(list, filter.Statuses)
	}

	s.logger.Info("List: fetched %d reservations for business=%d", len(list), session.BusinessID)
	return models.FromDomainReservationList(list), nil
}

// Get получает бронирование бизнеса по ID
func (s *Service) Get(ctx context.Context, session domain.Session, id int64) (*models.ReservationResponse, error) {
	res, err := s.get(ctx, "Get", session.BusinessID, id)
	if err != nil {
		return nil, err
	}

	s.sweep(ctx, []*domain.Reservation{res})
	return models.FromDomainReservation(res), nil
}

// MarkFulfilled отмечает визит как состоявшийся
func (s *Service) MarkFulfilled(ctx context.Context, session domain.Session, id int64, req *models.MarkFulfilledRequest) (*models.ReservationResponse, error) {
	s.logger.Info("MarkFulfilled: reservation id=%d in business=%d by user=%d", id, session.BusinessID, session.ActorID)

	now := s.timeProvider.Now()
	var res *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.get(ctx, "MarkFulfilled", session.BusinessID, id)
		if err != nil {
			return err
		}

		serviceID := req.ServiceID
		if serviceID == nil {
			serviceID = res.ServiceID
		}
		if serviceID != nil {
			if err := s.checkService(ctx, session.BusinessID, *serviceID); err != nil {
				return err
			}
		}

		if err := res.MarkFulfilled(serviceID, now, session.DemoMode); err != nil {
			s.logger.Warn("MarkFulfilled: reservation id=%d: %v", id, err)
			return err
		}
		return s.update(ctx, "MarkFulfilled", res)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncReservationEvent(metrics.EventFulfilled)
	s.logger.Info("MarkFulfilled: reservation id=%d fulfilled", id)
	return models.FromDomainReservation(res), nil
}

// MarkUnfulfilled отмечает визит как несостоявшийся с причиной
func (s *Service) MarkUnfulfilled(ctx context.Context, session domain.Session, id int64, req *models.MarkUnfulfilledRequest) (*models.ReservationResponse, error) {
	s.logger.Info("MarkUnfulfilled: reservation id=%d in business=%d, reason=%s", id, session.BusinessID, req.Reason)

	now := s.timeProvider.Now()
	var res *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.get(ctx, "MarkUnfulfilled", session.BusinessID, id)
		if err != nil {
			return err
		}

		if err := res.MarkUnfulfilled(domain.UnfulfilledReason(req.Reason), req.Note, now, session.DemoMode); err != nil {
			s.logger.Warn("MarkUnfulfilled: reservation id=%d: %v", id, err)
			return err
		}
		return s.update(ctx, "MarkUnfulfilled", res)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncReservationEvent(metrics.EventUnfulfilled)
	s.logger.Info("MarkUnfulfilled: reservation id=%d marked unfulfilled", id)
	return models.FromDomainReservation(res), nil
}

// sweep сохраняет автоматический перевод просроченных бронирований.
// Ошибка сохранения не прерывает чтение: запись остаётся pending и будет переведена при следующем чтении.
func (s *Service) sweep(ctx context.Context, list []*domain.Reservation) {
	now := s.timeProvider.Now()

	before := make(map[*domain.Reservation]domain.Reservation)
	for _, res := range list {
		if res.IsOverdue(now) {
			before[res] = *res
		}
	}

	for _, res := range domain.SweepOverdue(list, now) {
		if err := s.reservationRepo.Update(ctx, res); err != nil {
			*res = before[res]
			s.logger.Warn("sweep: failed to persist reservation id=%d: %v", res.ID, err)
			continue
		}
		s.metrics.IncReservationEvent(metrics.EventSwept)
		s.logger.Info("sweep: reservation id=%d marked unfulfilled automatically", res.ID)
	}
}

func (s *Service) get(ctx context.Context, op string, businessID, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found in business=%d", op, id, businessID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}

func (s *Service) update(ctx context.Context, op string, res *domain.Reservation) error {
	if err := s.reservationRepo.Update(ctx, res); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("%s: failed to update reservation id=%d: %v", op, res.ID, err)
		return fmt.Errorf("%w: %s - update reservation: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) checkService(ctx context.Context, businessID, serviceID int64) error {
	if _, err := s.catalogRepo.GetByID(ctx, businessID, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("checkService: service id=%d not found in business=%d", serviceID, businessID)
			return ErrServiceNotFound
		}
		return fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	return nil
}

func toDomainFilter(businessID int64, req *models.ListReservationsRequest) (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		BusinessID: businessID,
		ResourceID: req.ResourceID,
	}

	switch {
	case req.Date != nil:
		filter.Date = req.Date
	case req.From != nil || req.To != nil:
		if req.From != nil && req.To != nil {
			if req.To.Before(*req.From) {
				return filter, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidFilter)
			}
			if req.To.Sub(*req.From) > maxListPeriodDays*24*time.Hour {
				return filter, fmt.Errorf("%w: period is longer than %d days", ErrInvalidFilter, maxListPeriodDays)
			}
		}
		filter.From = req.From
		filter.To = req.To
	}

	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, *req.Status)
		}
		filter.Statuses = []domain.ReservationStatus{status}
	}

	return filter, nil
}

func filterByStatus(list []*domain.Reservation, statuses []domain.ReservationStatus) []*domain.Reservation {
	result := make([]*domain.Reservation, 0, len(list))
	for _, res := range list {
		for _, status := range statuses {
			if res.Status == status {
				result = append(result, res)
				break
			}
		}
	}
	return result
}
