package reschedule_reservation

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reservationModels "github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
	rescheduleReservation "github.com/m04kA/SMC-AgendaService/internal/usecase/reschedule_reservation"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// RescheduleReservationRequest HTTP request model
type RescheduleReservationRequest struct {
	Date       string `json:"date"`                 // "2025-10-15"
	Time       string `json:"time"`                 // "10:00"
	ResourceID int64  `json:"resourceId,omitempty"` // 0 - тот же специалист
	Reason     string `json:"reason"`
}

// RescheduleReservationResponse исходное и новое бронирования
type RescheduleReservationResponse struct {
	Previous    *reservationModels.ReservationResponse `json:"previous"`
	Reservation *reservationModels.ReservationResponse `json:"reservation"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleReservationRequest) ToUseCaseRequest(session domain.Session, reservationID int64, loc *time.Location) (*rescheduleReservation.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &rescheduleReservation.Request{
		Session:       session,
		ReservationID: reservationID,
		Date:          date,
		Time:          startTime,
		ResourceID:    r.ResourceID,
		Reason:        r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleReservation.Response) *RescheduleReservationResponse {
	return &RescheduleReservationResponse{
		Previous:    reservationModels.FromDomainReservation(resp.Previous),
		Reservation: reservationModels.FromDomainReservation(resp.Reservation),
	}
}
