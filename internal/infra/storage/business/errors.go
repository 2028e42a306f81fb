package business

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = fmt.Errorf("%w: business.repository: business not found", domain.ErrNotFound)

	// ErrScheduleNotFound возвращается, когда у бизнеса нет расписания
	ErrScheduleNotFound = fmt.Errorf("%w: business.repository: schedule not found", domain.ErrNotFound)

	// ErrSlugTaken возвращается, когда адрес страницы бронирования уже занят
	ErrSlugTaken = fmt.Errorf("%w: business.repository: slug already taken", domain.ErrConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("business.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: business.repository: failed to execute query", domain.ErrExternalService)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("business.repository: failed to scan row")

	// ErrEncodeSchedule возвращается при ошибке (де)сериализации JSONB полей расписания
	ErrEncodeSchedule = errors.New("business.repository: failed to encode schedule")
)
