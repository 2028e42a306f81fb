package update_schedule

import (
	"encoding/json"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reservationModels "github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
	updateSchedule "github.com/m04kA/SMC-AgendaService/internal/usecase/update_schedule"
)

// DayHoursRequest часы работы дня
type DayHoursRequest struct {
	Open  string `json:"open"`  // "09:00"
	Close string `json:"close"` // "18:00"
}

// UpdateScheduleRequest HTTP request model. Заменяет расписание целиком.
type UpdateScheduleRequest struct {
	Hours        map[string]DayHoursRequest `json:"hours"`
	Interval     json.Number                `json:"interval"` // 30 или "30"
	BlockedDays  []string                   `json:"blockedDays,omitempty"`
	BlockedHours map[string][]string        `json:"blockedHours,omitempty"`
	BlockedDates []string                   `json:"blockedDates,omitempty"`
}

// ConflictsResponse ответ 409 со списком бронирований, которые мешают изменению
type ConflictsResponse struct {
	Error     string                                  `json:"error"`
	Conflicts []*reservationModels.ReservationResponse `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateScheduleRequest) ToUseCaseRequest(session domain.Session) *updateSchedule.Request {
	hours := make(map[string]updateSchedule.DayHours, len(r.Hours))
	for day, h := range r.Hours {
		hours[day] = updateSchedule.DayHours{Open: h.Open, Close: h.Close}
	}

	return &updateSchedule.Request{
		Session:      session,
		Hours:        hours,
		Interval:     r.Interval.String(),
		BlockedDays:  r.BlockedDays,
		BlockedHours: r.BlockedHours,
		BlockedDates: r.BlockedDates,
	}
}

// ToConflictsResponse конвертирует конфликтующие бронирования в тело ответа
func ToConflictsResponse(message string, list []*domain.Reservation) *ConflictsResponse {
	conflicts := make([]*reservationModels.ReservationResponse, len(list))
	for i, res := range list {
		conflicts[i] = reservationModels.FromDomainReservation(res)
	}
	return &ConflictsResponse{Error: message, Conflicts: conflicts}
}
