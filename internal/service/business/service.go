package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AgendaService/internal/service/business/models"
)

// Service сервис профиля, расписания и подписки бизнеса
type Service struct {
	businessRepo      BusinessRepository
	plans             Plans
	txManager         TransactionManager
	timeProvider      TimeProvider
	renewalPeriodDays int
	renewalBannerDays int
	logger            Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(
	businessRepo BusinessRepository,
	plans Plans,
	txManager TransactionManager,
	timeProvider TimeProvider,
	renewalPeriodDays int,
	renewalBannerDays int,
	logger Logger,
) *Service {
	return &Service{
		businessRepo:      businessRepo,
		plans:             plans,
		txManager:         txManager,
		timeProvider:      timeProvider,
		renewalPeriodDays: renewalPeriodDays,
		renewalBannerDays: renewalBannerDays,
		logger:            logger,
	}
}

// Create регистрирует бизнес. Пользователь становится владельцем, пробный период берётся из тарифа.
func (s *Service) Create(ctx context.Context, actorID int64, req *models.CreateBusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Create: creating business slug=%s by user=%d", req.Slug, actorID)

	if actorID <= 0 {
		return nil, ErrAccessDenied
	}
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	tier := domain.PlanTier(req.PlanTier)
	if tier == "" {
		tier = domain.PlanBasico
	}
	if !s.plans.PlanQuotas().Has(tier) {
		s.logger.Warn("Create: unknown plan tier=%s", tier)
		return nil, ErrUnknownPlan
	}

	b := &domain.Business{
		OwnerID:              actorID,
		Name:                 req.Name,
		Slug:                 req.Slug,
		ContactEmail:         req.ContactEmail,
		Phone:                req.Phone,
		PlanTier:             tier,
		NotificationsEnabled: true,
	}
	if days := s.plans.TrialDays(tier); days > 0 {
		trialEndsAt := s.timeProvider.Now().AddDate(0, 0, days)
		b.TrialEndsAt = &trialEndsAt
	}

	created, err := s.businessRepo.Create(ctx, b)
	if err != nil {
		if errors.Is(err, businessRepo.ErrSlugTaken) {
			s.logger.Warn("Create: slug=%s is already taken", req.Slug)
			return nil, ErrSlugTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: business id=%d created for owner=%d", created.ID, actorID)
	return models.FromDomainBusiness(created), nil
}

// ResolveSession строит контекст вызова для бизнеса.
// Для панели владельца (requireOwner) пользователь должен быть владельцем.
func (s *Service) ResolveSession(ctx context.Context, actorID, businessID int64, requireOwner bool) (domain.Session, error) {
	b, err := s.getBusiness(ctx, "ResolveSession", businessID)
	if err != nil {
		return domain.Session{}, err
	}

	if requireOwner && !b.IsOwner(actorID) {
		s.logger.Warn("ResolveSession: user=%d is not the owner of business=%d", actorID, businessID)
		return domain.Session{}, ErrAccessDenied
	}

	return domain.Session{
		ActorID:    actorID,
		BusinessID: b.ID,
		DemoMode:   b.DemoMode,
	}, nil
}

// Get получает профиль бизнеса
func (s *Service) Get(ctx context.Context, session domain.Session) (*models.BusinessResponse, error) {
	b, err := s.getBusiness(ctx, "Get", session.BusinessID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBusiness(b), nil
}

// UpdateProfile обновляет профиль бизнеса. Обновляются только переданные поля.
func (s *Service) UpdateProfile(ctx context.Context, session domain.Session, req *models.UpdateProfileRequest) (*models.BusinessResponse, error) {
	s.logger.Info("UpdateProfile: updating business id=%d by user=%d", session.BusinessID, session.ActorID)

	if err := validateProfile(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Business
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.getBusiness(ctx, "UpdateProfile", session.BusinessID)
		if err != nil {
			return err
		}

		req.ApplyToBusiness(b)
		if b.RequiresDeposit && b.DepositAmount <= 0 {
			return fmt.Errorf("%w: deposit amount must be positive when a deposit is required", ErrInvalidInput)
		}

		if err := s.businessRepo.Update(ctx, b); err != nil {
			s.logger.Error("UpdateProfile: repository error for business id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateProfile: business id=%d updated", session.BusinessID)
	return models.FromDomainBusiness(updated), nil
}

// GetSchedule получает расписание бизнеса. Если расписание ещё не настроено, возвращается пустое.
func (s *Service) GetSchedule(ctx context.Context, session domain.Session) (*models.ScheduleResponse, error) {
	schedule, err := s.businessRepo.GetSchedule(ctx, session.BusinessID)
	if err != nil {
		if !errors.Is(err, businessRepo.ErrScheduleNotFound) {
			s.logger.Error("GetSchedule: repository error for business id=%d: %v", session.BusinessID, err)
			return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
		}
		schedule = &domain.Schedule{
			BusinessID:      session.BusinessID,
			Hours:           domain.BusinessHours{},
			IntervalMinutes: domain.DefaultIntervalMinutes,
		}
	}
	return models.FromDomainSchedule(schedule), nil
}

func (s *Service) getBusiness(ctx context.Context, op string, id int64) (*domain.Business, error) {
	b, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("%s: business id=%d not found", op, id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("%s: repository error for business id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return b, nil
}
