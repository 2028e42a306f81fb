package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден или неактивен
	ErrResourceNotFound = fmt.Errorf("%w: get_available_slots: resource not found", domain.ErrNotFound)

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = fmt.Errorf("%w: get_available_slots: date is in the past", domain.ErrValidation)

	// ErrDateTooFarInFuture возвращается, когда дата дальше max_advance_days
	ErrDateTooFarInFuture = fmt.Errorf("%w: get_available_slots: date is too far in the future", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: get_available_slots: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: get_available_slots: internal error", domain.ErrExternalService)
)
