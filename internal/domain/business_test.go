package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusiness_Subscription(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	in := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name       string
		business   Business
		wantStatus SubscriptionStatus
		wantDays   int
		wantBanner bool
	}{
		{
			name:       "trial with time left",
			business:   Business{TrialEndsAt: in(10 * 24 * time.Hour)},
			wantStatus: SubscriptionTrial,
			wantDays:   10,
		},
		{
			name:       "trial ending soon",
			business:   Business{TrialEndsAt: in(36 * time.Hour)},
			wantStatus: SubscriptionTrial,
			wantDays:   2,
			wantBanner: true,
		},
		{
			name:       "paid wins over trial",
			business:   Business{TrialEndsAt: in(48 * time.Hour), PaidUntil: in(20 * 24 * time.Hour)},
			wantStatus: SubscriptionActive,
			wantDays:   20,
		},
		{
			name:       "paid expiring",
			business:   Business{PaidUntil: in(5 * 24 * time.Hour)},
			wantStatus: SubscriptionExpiring,
			wantDays:   5,
			wantBanner: true,
		},
		{
			name:       "expired",
			business:   Business{PaidUntil: in(-time.Hour)},
			wantStatus: SubscriptionExpired,
			wantBanner: true,
		},
		{
			name:       "never subscribed",
			business:   Business{},
			wantStatus: SubscriptionExpired,
			wantBanner: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := tt.business.Subscription(now, 7)
			assert.Equal(t, tt.wantStatus, sub.Status)
			assert.Equal(t, tt.wantDays, sub.DaysLeft)
			assert.Equal(t, tt.wantBanner, sub.ShowRenewalBanner)
		})
	}
}

func TestBusiness_Renew(t *testing.T) {
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	b := Business{}
	b.Renew(now, 30)
	require.NotNil(t, b.PaidUntil)
	assert.Equal(t, now.AddDate(0, 0, 30), *b.PaidUntil)

	// Продление активной подписки считается от её окончания
	b.Renew(now, 30)
	assert.Equal(t, now.AddDate(0, 0, 60), *b.PaidUntil)
}
