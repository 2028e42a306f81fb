package reschedule_reservation

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	Session       domain.Session
	ReservationID int64
	Date          time.Time
	Time          types.TimeString
	ResourceID    int64 // 0 - тот же ресурс
	Reason        string
}

// Response модель ответа: исходное (rescheduled) и новое (pending) бронирования
type Response struct {
	Previous    *domain.Reservation
	Reservation *domain.Reservation
}
