package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на добавление услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ToDomainService конвертирует запрос в domain модель
func (r *CreateServiceRequest) ToDomainService(businessID int64) *domain.Service {
	return &domain.Service{
		BusinessID:      businessID,
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Active:          true,
	}
}

// UpdateServiceRequest частичное обновление. Обновляются только переданные поля.
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

// ApplyToService применяет обновления к услуге
func (r *UpdateServiceRequest) ApplyToService(s *domain.Service) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.DurationMinutes != nil {
		s.DurationMinutes = *r.DurationMinutes
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	BusinessID      int64     `json:"businessId"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		BusinessID:      s.BusinessID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(list)),
	}
	for _, s := range list {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}
