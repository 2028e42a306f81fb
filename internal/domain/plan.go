package domain

// PlanTier тариф подписки
type PlanTier string

const (
	PlanBasico      PlanTier = "basico"
	PlanProfesional PlanTier = "profesional"
	PlanPremium     PlanTier = "premium"
)

// Unlimited значение лимита без ограничений
const Unlimited = -1

// PlanQuotas максимальное количество ресурсов по тарифам (задаётся конфигурацией)
type PlanQuotas map[PlanTier]int

// DefaultPlanQuotas лимиты по умолчанию
var DefaultPlanQuotas = PlanQuotas{
	PlanBasico:      1,
	PlanProfesional: 4,
	PlanPremium:     Unlimited,
}

// Has true, если тариф известен
func (q PlanQuotas) Has(tier PlanTier) bool {
	_, ok := q[tier]
	return ok
}

// CanAddResource можно ли добавить ещё один ресурс при текущем количестве currentCount.
// Проверяется только при создании: понижение тарифа существующие ресурсы не затрагивает.
// Для неизвестного тарифа - false.
func (q PlanQuotas) CanAddResource(currentCount int, tier PlanTier) bool {
	limit, ok := q[tier]
	if !ok {
		return false
	}
	if limit == Unlimited {
		return true
	}
	return currentCount < limit
}
