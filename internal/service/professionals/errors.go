package professionals

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = fmt.Errorf("%w: professionals: business not found", domain.ErrNotFound)

	// ErrProfessionalNotFound возвращается, когда ресурс не найден
	ErrProfessionalNotFound = fmt.Errorf("%w: professionals: professional not found", domain.ErrNotFound)

	// ErrQuotaExceeded возвращается, когда тариф не позволяет добавить ещё один ресурс
	ErrQuotaExceeded = fmt.Errorf("%w: professionals: plan quota exceeded", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: professionals: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: professionals: internal error", domain.ErrExternalService)
)
