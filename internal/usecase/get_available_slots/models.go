package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/availability"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Session    domain.Session
	ResourceID int64     // ID специалиста или корта
	Date       time.Time // Дата в часовом поясе сервиса (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time
	ResourceID int64
	Slots      []types.TimeString  // По возрастанию, HH:MM
	Reason     availability.Reason // Почему слотов нет (пусто, если есть)
}
