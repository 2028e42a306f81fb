package reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation.repository: reservation not found", domain.ErrNotFound)

	// ErrSlotTaken возвращается, когда на ресурс, дату и время уже есть активное бронирование
	ErrSlotTaken = fmt.Errorf("%w: reservation.repository: slot already taken", domain.ErrConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: reservation.repository: failed to execute query", domain.ErrExternalService)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
