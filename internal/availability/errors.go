package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrInvalidInterval интервал не число или меньше MinInterval
	ErrInvalidInterval = fmt.Errorf("%w: slot interval must be a number >= %d", domain.ErrConfiguration, MinInterval)

	// ErrInvalidHours время открытия не раньше времени закрытия (или некорректный формат)
	ErrInvalidHours = fmt.Errorf("%w: open time must be before close time on the same day", domain.ErrConfiguration)
)
