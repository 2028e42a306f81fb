package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = fmt.Errorf("%w: create_reservation: business not found", domain.ErrNotFound)

	// ErrResourceNotFound возвращается, когда ресурс не найден или неактивен
	ErrResourceNotFound = fmt.Errorf("%w: create_reservation: resource not found", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = fmt.Errorf("%w: create_reservation: service not found", domain.ErrNotFound)

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = fmt.Errorf("%w: create_reservation: date is in the past", domain.ErrValidation)

	// ErrDateTooFarInFuture возвращается, когда дата дальше max_advance_days
	ErrDateTooFarInFuture = fmt.Errorf("%w: create_reservation: date is too far in the future", domain.ErrValidation)

	// ErrSlotNotAvailable возвращается, когда время не входит в доступные слоты или слот успели занять
	ErrSlotNotAvailable = fmt.Errorf("%w: create_reservation: slot is not available", domain.ErrConflict)

	// ErrDuplicateReservation возвращается, когда у клиента уже есть активное бронирование в этом бизнесе
	ErrDuplicateReservation = fmt.Errorf("%w: create_reservation: customer already has an active reservation", domain.ErrConflict)

	// ErrScheduleMisconfigured возвращается, когда расписание бизнеса некорректно
	ErrScheduleMisconfigured = fmt.Errorf("%w: create_reservation: business schedule is misconfigured", domain.ErrConfiguration)

	// ErrPaymentLink возвращается, когда не удалось получить ссылку на предоплату. Бронирование остаётся pending.
	ErrPaymentLink = fmt.Errorf("%w: create_reservation: failed to create payment link", domain.ErrExternalService)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_reservation: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: create_reservation: internal error", domain.ErrExternalService)
)
