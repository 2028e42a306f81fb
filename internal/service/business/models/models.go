package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модели

// CreateBusinessRequest запрос на регистрацию бизнеса
type CreateBusinessRequest struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	ContactEmail string  `json:"contactEmail"`
	Phone        *string `json:"phone,omitempty"`
	PlanTier     string  `json:"planTier"`
}

// UpdateProfileRequest частичное обновление профиля. Обновляются только переданные поля.
type UpdateProfileRequest struct {
	Name                 *string  `json:"name,omitempty"`
	LogoURL              *string  `json:"logoUrl,omitempty"`
	ContactEmail         *string  `json:"contactEmail,omitempty"`
	Phone                *string  `json:"phone,omitempty"`
	DemoMode             *bool    `json:"demoMode,omitempty"`
	NotificationsEnabled *bool    `json:"notificationsEnabled,omitempty"`
	RequiresDeposit      *bool    `json:"requiresDeposit,omitempty"`
	DepositAmount        *float64 `json:"depositAmount,omitempty"`
}

// ApplyToBusiness применяет обновления к бизнесу
func (r *UpdateProfileRequest) ApplyToBusiness(b *domain.Business) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.LogoURL != nil {
		b.LogoURL = emptyToNil(*r.LogoURL)
	}
	if r.ContactEmail != nil {
		b.ContactEmail = *r.ContactEmail
	}
	if r.Phone != nil {
		b.Phone = emptyToNil(*r.Phone)
	}
	if r.DemoMode != nil {
		b.DemoMode = *r.DemoMode
	}
	if r.NotificationsEnabled != nil {
		b.NotificationsEnabled = *r.NotificationsEnabled
	}
	if r.RequiresDeposit != nil {
		b.RequiresDeposit = *r.RequiresDeposit
	}
	if r.DepositAmount != nil {
		b.DepositAmount = *r.DepositAmount
	}
}

// ChangePlanRequest запрос на смену тарифа
type ChangePlanRequest struct {
	PlanTier string `json:"planTier"`
}

// Response модели

// BusinessResponse профиль бизнеса
type BusinessResponse struct {
	ID                   int64      `json:"id"`
	OwnerID              int64      `json:"ownerId"`
	Name                 string     `json:"name"`
	Slug                 string     `json:"slug"`
	LogoURL              *string    `json:"logoUrl,omitempty"`
	ContactEmail         string     `json:"contactEmail"`
	Phone                *string    `json:"phone,omitempty"`
	PlanTier             string     `json:"planTier"`
	TrialEndsAt          *time.Time `json:"trialEndsAt,omitempty"`
	PaidUntil            *time.Time `json:"paidUntil,omitempty"`
	DemoMode             bool       `json:"demoMode"`
	NotificationsEnabled bool       `json:"notificationsEnabled"`
	RequiresDeposit      bool       `json:"requiresDeposit"`
	DepositAmount        float64    `json:"depositAmount"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// DayHoursResponse часы работы в день недели
type DayHoursResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ScheduleResponse расписание бизнеса
type ScheduleResponse struct {
	BusinessID   int64                       `json:"businessId"`
	Hours        map[string]DayHoursResponse `json:"hours"`
	Interval     int                         `json:"interval"`
	BlockedDays  []string                    `json:"blockedDays"`
	BlockedHours map[string][]string         `json:"blockedHours"`
	BlockedDates []string                    `json:"blockedDates"`
	UpdatedAt    *time.Time                  `json:"updatedAt,omitempty"`
}

// SubscriptionResponse состояние подписки
type SubscriptionResponse struct {
	PlanTier          string     `json:"planTier"`
	Status            string     `json:"status"`
	EndsAt            *time.Time `json:"endsAt,omitempty"`
	DaysLeft          int        `json:"daysLeft"`
	ShowRenewalBanner bool       `json:"showRenewalBanner"`
	MaxResources      int        `json:"maxResources"` // -1 = без ограничений
}

// Конвертеры

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}
	return &BusinessResponse{
		ID:                   b.ID,
		OwnerID:              b.OwnerID,
		Name:                 b.Name,
		Slug:                 b.Slug,
		LogoURL:              b.LogoURL,
		ContactEmail:         b.ContactEmail,
		Phone:                b.Phone,
		PlanTier:             string(b.PlanTier),
		TrialEndsAt:          b.TrialEndsAt,
		PaidUntil:            b.PaidUntil,
		DemoMode:             b.DemoMode,
		NotificationsEnabled: b.NotificationsEnabled,
		RequiresDeposit:      b.RequiresDeposit,
		DepositAmount:        b.DepositAmount,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// FromDomainSchedule конвертирует расписание в DTO. Пустые коллекции отдаются как [] и {}.
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		BusinessID:   s.BusinessID,
		Hours:        make(map[string]DayHoursResponse, len(s.Hours)),
		Interval:     s.IntervalMinutes,
		BlockedDays:  make([]string, 0, len(s.Blocked.Days)),
		BlockedHours: make(map[string][]string, len(s.Blocked.Hours)),
		BlockedDates: make([]string, 0, len(s.BlockedDates)),
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	for wd, h := range s.Hours {
		resp.Hours[string(wd)] = DayHoursResponse{Open: h.Open.String(), Close: h.Close.String()}
	}
	for _, wd := range s.Blocked.Days {
		resp.BlockedDays = append(resp.BlockedDays, string(wd))
	}
	for wd, times := range s.Blocked.Hours {
		list := make([]string, 0, len(times))
		for _, t := range times {
			list = append(list, t.String())
		}
		resp.BlockedHours[string(wd)] = list
	}
	resp.BlockedDates = append(resp.BlockedDates, s.BlockedDates...)

	return resp
}

// FromDomainSubscription конвертирует состояние подписки в DTO
func FromDomainSubscription(sub domain.Subscription, maxResources int) *SubscriptionResponse {
	return &SubscriptionResponse{
		PlanTier:          string(sub.Tier),
		Status:            string(sub.Status),
		EndsAt:            sub.EndsAt,
		DaysLeft:          sub.DaysLeft,
		ShowRenewalBanner: sub.ShowRenewalBanner,
		MaxResources:      maxResources,
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
