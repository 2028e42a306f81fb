package domain

import "time"

// ResourceKind тип бронируемого ресурса
type ResourceKind string

const (
	ResourceProfessional ResourceKind = "professional"
	ResourceCourt        ResourceKind = "court"
)

// IsValid true для известного типа
func (k ResourceKind) IsValid() bool {
	return k == ResourceProfessional || k == ResourceCourt
}

// Resource бронируемая единица бизнеса: специалист или корт
type Resource struct {
	ID         int64
	BusinessID int64
	Kind       ResourceKind
	Name       string
	Email      *string
	Phone      *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Service услуга из каталога бизнеса
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	Price           float64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
