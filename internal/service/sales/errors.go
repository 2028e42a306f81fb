package sales

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrInvalidPeriod возвращается при некорректном периоде отчёта
	ErrInvalidPeriod = fmt.Errorf("%w: sales: invalid period", domain.ErrValidation)

	// ErrExport возвращается, когда не удалось сформировать файл отчёта
	ErrExport = fmt.Errorf("%w: sales: failed to export report", domain.ErrExternalService)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: sales: internal error", domain.ErrExternalService)
)
