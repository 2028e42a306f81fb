package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate дата не в прошлом и не дальше maxAdvanceDays (0 - без ограничения)
func validateDate(date, now time.Time, maxAdvanceDays int) error {
	today := domain.DateOnly(now, now.Location())
	day := domain.DateOnly(date, now.Location())

	if day.Before(today) {
		return ErrInvalidDate
	}
	if maxAdvanceDays > 0 && day.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}
	return nil
}
