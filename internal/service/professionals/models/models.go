package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модели

// CreateProfessionalRequest запрос на добавление специалиста или корта
type CreateProfessionalRequest struct {
	Name  string  `json:"name"`
	Kind  string  `json:"kind,omitempty"` // professional (по умолчанию) или court
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ToDomainResource конвертирует запрос в domain модель
func (r *CreateProfessionalRequest) ToDomainResource(businessID int64) *domain.Resource {
	kind := domain.ResourceKind(r.Kind)
	if kind == "" {
		kind = domain.ResourceProfessional
	}
	return &domain.Resource{
		BusinessID: businessID,
		Kind:       kind,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Active:     true,
	}
}

// UpdateProfessionalRequest частичное обновление. Обновляются только переданные поля.
type UpdateProfessionalRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ApplyToResource применяет обновления к ресурсу
func (r *UpdateProfessionalRequest) ApplyToResource(res *domain.Resource) {
	if r.Name != nil {
		res.Name = *r.Name
	}
	if r.Email != nil {
		res.Email = emptyToNil(*r.Email)
	}
	if r.Phone != nil {
		res.Phone = emptyToNil(*r.Phone)
	}
}

// Response модели

// ProfessionalResponse ответ с данными ресурса
type ProfessionalResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	Kind       string    `json:"kind"`
	Name       string    `json:"name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProfessionalListResponse список ресурсов
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(res *domain.Resource) *ProfessionalResponse {
	if res == nil {
		return nil
	}
	return &ProfessionalResponse{
		ID:         res.ID,
		BusinessID: res.BusinessID,
		Kind:       string(res.Kind),
		Name:       res.Name,
		Email:      res.Email,
		Phone:      res.Phone,
		Active:     res.Active,
		CreatedAt:  res.CreatedAt,
		UpdatedAt:  res.UpdatedAt,
	}
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(list []*domain.Resource) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{
		Professionals: make([]ProfessionalResponse, 0, len(list)),
	}
	for _, res := range list {
		resp.Professionals = append(resp.Professionals, *FromDomainResource(res))
	}
	return resp
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
