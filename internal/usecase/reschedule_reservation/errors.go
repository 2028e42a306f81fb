package reschedule_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reschedule_reservation: reservation not found", domain.ErrNotFound)

	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = fmt.Errorf("%w: reschedule_reservation: business not found", domain.ErrNotFound)

	// ErrResourceNotFound возвращается, когда новый ресурс не найден или неактивен
	ErrResourceNotFound = fmt.Errorf("%w: reschedule_reservation: resource not found", domain.ErrNotFound)

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = fmt.Errorf("%w: reschedule_reservation: date is in the past", domain.ErrValidation)

	// ErrSlotNotAvailable возвращается, когда новое время не является свободным слотом
	ErrSlotNotAvailable = fmt.Errorf("%w: reschedule_reservation: slot is not available", domain.ErrConflict)

	// ErrScheduleMisconfigured возвращается, когда расписание бизнеса некорректно
	ErrScheduleMisconfigured = fmt.Errorf("%w: reschedule_reservation: business schedule is misconfigured", domain.ErrConfiguration)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: reschedule_reservation: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: reschedule_reservation: internal error", domain.ErrExternalService)
)
