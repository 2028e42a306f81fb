package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog/models"
)

const (
	maxNameLength      = 100
	maxPrice           = 100_000_000
	maxDurationMinutes = 24 * 60
)

// Service сервис каталога услуг бизнеса
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Create добавляет услугу в каталог
func (s *Service) Create(ctx context.Context, session domain.Session, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: adding service to business=%d by user=%d", session.BusinessID, session.ActorID)

	req.Name = strings.TrimSpace(req.Name)
	if err := validate(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.Create(ctx, req.ToDomainService(session.BusinessID))
	if err != nil {
		s.logger.Error("Create: repository error for business=%d: %v", session.BusinessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%d added to business=%d", created.ID, session.BusinessID)
	return models.FromDomainService(created), nil
}

// List возвращает услуги бизнеса. Неактивные только по запросу.
func (s *Service) List(ctx context.Context, session domain.Session, includeInactive bool) (*models.ServiceListResponse, error) {
	list, err := s.catalogRepo.List(ctx, session.BusinessID, !includeInactive)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", session.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(list), nil
}

// Update обновляет услугу. Цена в уже выполненных бронированиях пересчитывается по новой цене в отчёте.
func (s *Service) Update(ctx context.Context, session domain.Session, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d in business=%d", id, session.BusinessID)

	service, err := s.get(ctx, "Update", session.BusinessID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	req.ApplyToService(service)
	if err := validate(service.Name, service.Price, service.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.catalogRepo.Update(ctx, service); err != nil {
		return nil, s.updateError("Update", id, err)
	}

	return models.FromDomainService(service), nil
}

// Deactivate убирает услугу из формы бронирования
func (s *Service) Deactivate(ctx context.Context, session domain.Session, id int64) error {
	s.logger.Info("Deactivate: deactivating service id=%d in business=%d", id, session.BusinessID)

	service, err := s.get(ctx, "Deactivate", session.BusinessID, id)
	if err != nil {
		return err
	}
	if !service.Active {
		return nil
	}

	service.Active = false
	if err := s.catalogRepo.Update(ctx, service); err != nil {
		return s.updateError("Deactivate", id, err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, op string, businessID, id int64) (*domain.Service, error) {
	service, err := s.catalogRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%d not found in business=%d", op, id, businessID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return service, nil
}

func (s *Service) updateError(op string, id int64, err error) error {
	if errors.Is(err, catalogRepo.ErrServiceNotFound) {
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validate(name string, price float64, duration int) error {
	if name == "" || len([]rune(name)) > maxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, maxNameLength)
	}
	if price < 0 || price > maxPrice {
		return fmt.Errorf("%w: price out of range", ErrInvalidInput)
	}
	if duration <= 0 || duration > maxDurationMinutes {
		return fmt.Errorf("%w: duration must be 1-%d minutes", ErrInvalidInput, maxDurationMinutes)
	}
	return nil
}
