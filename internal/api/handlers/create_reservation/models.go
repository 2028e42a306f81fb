package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reservationModels "github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-AgendaService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// CustomerRequest данные клиента из публичной формы
type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ResourceID int64           `json:"resourceId"`
	ServiceID  *int64          `json:"serviceId,omitempty"`
	Date       string          `json:"date"` // "2025-10-15"
	Time       string          `json:"time"` // "10:00"
	Customer   CustomerRequest `json:"customer"`
	Notes      *string         `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(session domain.Session, loc *time.Location) (*createReservation.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Session:    session,
		ResourceID: r.ResourceID,
		ServiceID:  r.ServiceID,
		Date:       date,
		Time:       startTime,
		Customer: domain.Customer{
			Name:     r.Customer.Name,
			Email:    r.Customer.Email,
			Phone:    r.Customer.Phone,
			Document: r.Customer.Document,
		},
		Notes: r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *reservationModels.ReservationResponse {
	result := reservationModels.FromDomainReservation(resp.Reservation)
	if resp.PaymentURL != nil {
		result.PaymentURL = resp.PaymentURL
	}
	return result
}
