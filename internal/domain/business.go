package domain

import (
	"math"
	"time"
)

// Business арендатор: владелец, профиль, тариф и флаги
type Business struct {
	ID                   int64
	OwnerID              int64
	Name                 string
	Slug                 string
	LogoURL              *string
	ContactEmail         string
	Phone                *string
	PlanTier             PlanTier
	TrialEndsAt          *time.Time
	PaidUntil            *time.Time
	DemoMode             bool
	NotificationsEnabled bool
	RequiresDeposit      bool    // вариант с арендой кортов: бронирование подтверждается после предоплаты
	DepositAmount        float64 // в основных единицах валюты
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsOwner true, если actorID владелец бизнеса
func (b *Business) IsOwner(actorID int64) bool {
	return actorID > 0 && b.OwnerID == actorID
}

// SubscriptionStatus состояние подписки
type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionExpiring SubscriptionStatus = "expiring"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// Subscription вычисленное состояние подписки для отображения
type Subscription struct {
	Tier              PlanTier
	Status            SubscriptionStatus
	EndsAt            *time.Time
	DaysLeft          int
	ShowRenewalBanner bool
}

// Subscription вычисляет состояние подписки на момент now.
// Оплаченный период важнее пробного; баннер показывается за bannerDays до окончания и после него.
func (b *Business) Subscription(now time.Time, bannerDays int) Subscription {
	sub := Subscription{Tier: b.PlanTier, Status: SubscriptionExpired, ShowRenewalBanner: true}

	switch {
	case b.PaidUntil != nil && now.Before(*b.PaidUntil):
		sub.EndsAt = b.PaidUntil
		sub.DaysLeft = daysLeft(now, *b.PaidUntil)
		sub.Status = SubscriptionActive
		sub.ShowRenewalBanner = sub.DaysLeft <= bannerDays
		if sub.ShowRenewalBanner {
			sub.Status = SubscriptionExpiring
		}
	case b.TrialEndsAt != nil && now.Before(*b.TrialEndsAt):
		sub.EndsAt = b.TrialEndsAt
		sub.DaysLeft = daysLeft(now, *b.TrialEndsAt)
		sub.Status = SubscriptionTrial
		sub.ShowRenewalBanner = sub.DaysLeft <= bannerDays
	case b.PaidUntil != nil:
		sub.EndsAt = b.PaidUntil
	case b.TrialEndsAt != nil:
		sub.EndsAt = b.TrialEndsAt
	}

	return sub
}

// Renew продлевает оплаченный период на days дней от max(now, PaidUntil)
func (b *Business) Renew(now time.Time, days int) {
	from := now
	if b.PaidUntil != nil && b.PaidUntil.After(now) {
		from = *b.PaidUntil
	}
	until := from.AddDate(0, 0, days)
	b.PaidUntil = &until
}

func daysLeft(now, end time.Time) int {
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}
