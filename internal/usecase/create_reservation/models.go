package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на создание бронирования с публичной формы
type Request struct {
	Session    domain.Session
	ResourceID int64
	ServiceID  *int64 // Необязательна при бронировании, обязательна при отметке "состоялось"
	Date       time.Time
	Time       types.TimeString
	Customer   domain.Customer
	Notes      *string
}

// Response модель ответа
type Response struct {
	Reservation *domain.Reservation
	PaymentURL  *string // Ссылка на предоплату, если бизнес требует депозит
}
