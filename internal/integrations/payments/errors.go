package payments

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrGateway возвращается при ошибке платёжного шлюза
	ErrGateway = fmt.Errorf("%w: payments client: gateway error", domain.ErrExternalService)

	// ErrInvalidAmount возвращается для неположительной суммы
	ErrInvalidAmount = fmt.Errorf("%w: payments client: amount must be positive", domain.ErrValidation)

	// ErrEmptyURL возвращается, когда шлюз не вернул ссылку на оплату
	ErrEmptyURL = fmt.Errorf("%w: payments client: empty checkout url", domain.ErrExternalService)
)
