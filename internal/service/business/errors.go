package business

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = fmt.Errorf("%w: business: business not found", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда пользователь не владелец бизнеса
	ErrAccessDenied = fmt.Errorf("%w: business: access denied", domain.ErrForbidden)

	// ErrSlugTaken возвращается, когда адрес страницы бизнеса уже занят
	ErrSlugTaken = fmt.Errorf("%w: business: slug is already taken", domain.ErrConflict)

	// ErrUnknownPlan возвращается для неизвестного тарифа
	ErrUnknownPlan = fmt.Errorf("%w: business: unknown plan tier", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: business: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: business: internal error", domain.ErrExternalService)
)
