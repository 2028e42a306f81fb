package business

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/business/models"
)

// GetSubscription возвращает состояние подписки: пробный период, оплачено, скоро истекает, истекла
func (s *Service) GetSubscription(ctx context.Context, session domain.Session) (*models.SubscriptionResponse, error) {
	b, err := s.getBusiness(ctx, "GetSubscription", session.BusinessID)
	if err != nil {
		return nil, err
	}

	sub := b.Subscription(s.timeProvider.Now(), s.renewalBannerDays)
	return models.FromDomainSubscription(sub, s.maxResources(b.PlanTier)), nil
}

// ChangePlan меняет тариф и продлевает оплаченный период.
// При понижении тарифа существующие ресурсы не трогаются, лимит действует только на новые.
func (s *Service) ChangePlan(ctx context.Context, session domain.Session, req *models.ChangePlanRequest) (*models.SubscriptionResponse, error) {
	s.logger.Info("ChangePlan: business id=%d, tier=%s", session.BusinessID, req.PlanTier)

	tier := domain.PlanTier(req.PlanTier)
	if !s.plans.PlanQuotas().Has(tier) {
		s.logger.Warn("ChangePlan: unknown plan tier=%s", req.PlanTier)
		return nil, ErrUnknownPlan
	}

	now := s.timeProvider.Now()
	var sub domain.Subscription
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.getBusiness(ctx, "ChangePlan", session.BusinessID)
		if err != nil {
			return err
		}

		b.PlanTier = tier
		b.Renew(now, s.renewalPeriodDays)

		if err := s.businessRepo.Update(ctx, b); err != nil {
			s.logger.Error("ChangePlan: repository error for business id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: ChangePlan - repository error: %v", ErrInternal, err)
		}
		sub = b.Subscription(now, s.renewalBannerDays)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ChangePlan: business id=%d switched to tier=%s, paid until %s",
		session.BusinessID, tier, sub.EndsAt.Format(domain.DateFormat))
	return models.FromDomainSubscription(sub, s.maxResources(tier)), nil
}

func (s *Service) maxResources(tier domain.PlanTier) int {
	limit, ok := s.plans.PlanQuotas()[tier]
	if !ok {
		return 0
	}
	return limit
}
