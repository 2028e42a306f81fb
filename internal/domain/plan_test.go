package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanQuotas_CanAddResource(t *testing.T) {
	tests := []struct {
		name    string
		tier    PlanTier
		current int
		want    bool
	}{
		{name: "basico empty", tier: PlanBasico, current: 0, want: true},
		{name: "basico with one professional", tier: PlanBasico, current: 1, want: false},
		{name: "profesional below cap", tier: PlanProfesional, current: 3, want: true},
		{name: "profesional at cap", tier: PlanProfesional, current: 4, want: false},
		{name: "premium unbounded", tier: PlanPremium, current: 500, want: true},
		{name: "unknown tier", tier: "gratis", current: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultPlanQuotas.CanAddResource(tt.current, tt.tier))
		})
	}
}

func TestPlanQuotas_OverCapAfterDowngrade(t *testing.T) {
	// После понижения тарифа ресурсов больше лимита: добавлять нельзя, но это не ошибка
	assert.False(t, DefaultPlanQuotas.CanAddResource(6, PlanBasico))
}
