package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модели

// ListReservationsRequest фильтр списка бронирований бизнеса.
// Date имеет приоритет над периодом From-To.
type ListReservationsRequest struct {
	Date       *time.Time
	From       *time.Time
	To         *time.Time
	Status     *string
	ResourceID *int64
}

// MarkFulfilledRequest отметка о выполнении. Если услуга не передана, используется выбранная клиентом.
type MarkFulfilledRequest struct {
	ServiceID *int64 `json:"serviceId,omitempty"`
}

// MarkUnfulfilledRequest отметка о несостоявшемся визите
type MarkUnfulfilledRequest struct {
	Reason string `json:"reason"`
	Note   string `json:"note,omitempty"` // только для reason = other
}

// Response модели

// CustomerResponse данные клиента
type CustomerResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                int64            `json:"id"`
	BusinessID        int64            `json:"businessId"`
	ResourceID        int64            `json:"resourceId"`
	ServiceID         *int64           `json:"serviceId,omitempty"`
	Date              string           `json:"date"` // "2025-10-15"
	Time              string           `json:"time"` // "10:00"
	Status            string           `json:"status"`
	Customer          CustomerResponse `json:"customer"`
	Notes             *string          `json:"notes,omitempty"`
	UnfulfilledReason *string          `json:"unfulfilledReason,omitempty"`
	ReasonNote        *string          `json:"reasonNote,omitempty"`
	RescheduleReason  *string          `json:"rescheduleReason,omitempty"`
	RescheduledFromID *int64           `json:"rescheduledFromId,omitempty"`
	RescheduledToID   *int64           `json:"rescheduledToId,omitempty"`
	PaymentURL        *string          `json:"paymentUrl,omitempty"`
	FulfilledAt       *time.Time       `json:"fulfilledAt,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		ResourceID: r.ResourceID,
		ServiceID:  r.ServiceID,
		Date:       r.Date.Format(domain.DateFormat),
		Time:       r.Time.String(),
		Status:     string(r.Status),
		Customer: CustomerResponse{
			Name:     r.Customer.Name,
			Email:    r.Customer.Email,
			Phone:    r.Customer.Phone,
			Document: r.Customer.Document,
		},
		Notes:             r.Notes,
		ReasonNote:        r.ReasonNote,
		RescheduleReason:  r.RescheduleReason,
		RescheduledFromID: r.RescheduledFromID,
		RescheduledToID:   r.RescheduledToID,
		PaymentURL:        r.PaymentURL,
		FulfilledAt:       r.FulfilledAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.UnfulfilledReason != nil {
		reason := string(*r.UnfulfilledReason)
		resp.UnfulfilledReason = &reason
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}
