package domain

import (
	"errors"
	"fmt"
)

// Корневые категории ошибок. Ошибки пакетов оборачивают одну из них,
// чтобы обработчики могли выбрать ответ по категории.
var (
	// ErrValidation некорректные входные данные (не требует обращения к хранилищу)
	ErrValidation = errors.New("validation error")

	// ErrConflict слот уже занят, дубликат активного бронирования, недопустимый переход статуса
	ErrConflict = errors.New("conflict")

	// ErrConfiguration у бизнеса некорректное расписание (нет часов на день, интервал < 5)
	ErrConfiguration = errors.New("invalid business configuration")

	// ErrExternalService сбой хранилища или платёжного шлюза
	ErrExternalService = errors.New("external service error")

	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("not found")

	// ErrForbidden действие недоступно текущему пользователю
	ErrForbidden = errors.New("forbidden")
)

// Ошибки жизненного цикла бронирования
var (
	ErrInvalidTransition  = fmt.Errorf("%w: invalid reservation status transition", ErrConflict)
	ErrServiceRequired    = fmt.Errorf("%w: a service must be selected to fulfil a reservation", ErrValidation)
	ErrTooEarly           = fmt.Errorf("%w: reservation time has not been reached yet", ErrValidation)
	ErrReasonRequired     = fmt.Errorf("%w: a reason is required", ErrValidation)
	ErrUnknownReason      = fmt.Errorf("%w: unknown reason", ErrValidation)
	ErrNoteNotAllowed     = fmt.Errorf("%w: free text is only allowed for reason \"other\"", ErrValidation)
	ErrRescheduleSameSlot = fmt.Errorf("%w: new date and time must differ from the current ones", ErrValidation)
)
