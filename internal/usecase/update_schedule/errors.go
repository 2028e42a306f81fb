package update_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrScheduleConflicts возвращается, когда новое расписание затрагивает pending бронирования
	ErrScheduleConflicts = fmt.Errorf("%w: update_schedule: schedule change conflicts with pending reservations", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: update_schedule: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: update_schedule: internal error", domain.ErrExternalService)
)

// ConflictsError бронирования, которые нужно перенести или отменить перед сохранением расписания
type ConflictsError struct {
	Reservations []*domain.Reservation
}

func (e *ConflictsError) Error() string {
	return fmt.Sprintf("%v: %d reservations", ErrScheduleConflicts, len(e.Reservations))
}

func (e *ConflictsError) Unwrap() error {
	return ErrScheduleConflicts
}
