package professionals

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business"
	resourceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

const maxNameLength = 100

// Service сервис управления специалистами (и кортами) бизнеса
type Service struct {
	businessRepo BusinessRepository
	resourceRepo ResourceRepository
	quotas       domain.PlanQuotas
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	businessRepo BusinessRepository,
	resourceRepo ResourceRepository,
	quotas domain.PlanQuotas,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		businessRepo: businessRepo,
		resourceRepo: resourceRepo,
		quotas:       quotas,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create добавляет ресурс, если тариф бизнеса это позволяет.
// Бизнес блокируется на время проверки лимита, чтобы параллельные добавления не превысили его.
func (s *Service) Create(ctx context.Context, session domain.Session, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: adding professional to business=%d by user=%d", session.BusinessID, session.ActorID)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Resource
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.businessRepo.GetByID(ctx, session.BusinessID)
		if err != nil {
			if errors.Is(err, businessRepo.ErrBusinessNotFound) {
				return ErrBusinessNotFound
			}
			return fmt.Errorf("%w: Create - get business: %v", ErrInternal, err)
		}

		count, err := s.resourceRepo.CountActive(ctx, b.ID)
		if err != nil {
			return fmt.Errorf("%w: Create - count resources: %v", ErrInternal, err)
		}
		if !s.quotas.CanAddResource(count, b.PlanTier) {
			s.logger.Warn("Create: plan %s of business=%d allows no more resources (current=%d)", b.PlanTier, b.ID, count)
			return ErrQuotaExceeded
		}

		created, err = s.resourceRepo.Create(ctx, req.ToDomainResource(b.ID))
		if err != nil {
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Create: %v", err)
		}
		return nil, err
	}

	s.logger.Info("Create: professional id=%d added to business=%d", created.ID, session.BusinessID)
	return models.FromDomainResource(created), nil
}

// List возвращает ресурсы бизнеса. Неактивные только по запросу.
func (s *Service) List(ctx context.Context, session domain.Session, includeInactive bool) (*models.ProfessionalListResponse, error) {
	list, err := s.resourceRepo.List(ctx, session.BusinessID, !includeInactive)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", session.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainResourceList(list), nil
}

// Update обновляет данные ресурса
func (s *Service) Update(ctx context.Context, session domain.Session, id int64, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Update: updating professional id=%d in business=%d", id, session.BusinessID)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	res, err := s.get(ctx, "Update", session.BusinessID, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToResource(res)
	if err := s.resourceRepo.Update(ctx, res); err != nil {
		return nil, s.updateError("Update", id, err)
	}

	return models.FromDomainResource(res), nil
}

// Deactivate скрывает ресурс из формы бронирования. Бронирования ресурса не меняются.
func (s *Service) Deactivate(ctx context.Context, session domain.Session, id int64) error {
	s.logger.Info("Deactivate: deactivating professional id=%d in business=%d", id, session.BusinessID)

	res, err := s.get(ctx, "Deactivate", session.BusinessID, id)
	if err != nil {
		return err
	}
	if !res.Active {
		return nil
	}

	res.Active = false
	if err := s.resourceRepo.Update(ctx, res); err != nil {
		return s.updateError("Deactivate", id, err)
	}

	s.logger.Info("Deactivate: professional id=%d deactivated", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, businessID, id int64) (*domain.Resource, error) {
	res, err := s.resourceRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("%s: professional id=%d not found in business=%d", op, id, businessID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("%s: repository error for professional id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}

func (s *Service) updateError(op string, id int64, err error) error {
	if errors.Is(err, resourceRepo.ErrResourceNotFound) {
		return ErrProfessionalNotFound
	}
	s.logger.Error("%s: repository error for professional id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateCreate(req *models.CreateProfessionalRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return err
	}
	if req.Kind != "" && !domain.ResourceKind(req.Kind).IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, req.Kind)
	}
	if req.Email != nil && *req.Email != "" {
		return validateEmail(*req.Email)
	}
	return nil
}

func validateUpdate(req *models.UpdateProfessionalRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return err
		}
		req.Name = &name
	}
	if req.Email != nil && *req.Email != "" {
		return validateEmail(*req.Email)
	}
	return nil
}

func validateName(name string) error {
	if name == "" || len([]rune(name)) > maxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, maxNameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}
