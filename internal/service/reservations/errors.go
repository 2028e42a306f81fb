package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservations: reservation not found", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда выбранная услуга не найдена
	ErrServiceNotFound = fmt.Errorf("%w: reservations: service not found", domain.ErrNotFound)

	// ErrInvalidFilter возвращается при некорректном фильтре списка
	ErrInvalidFilter = fmt.Errorf("%w: reservations: invalid filter", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: reservations: internal error", domain.ErrExternalService)
)
