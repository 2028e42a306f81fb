package reschedule_reservation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.ResourceID < 0 {
		return fmt.Errorf("%w: resourceID must not be negative", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrReasonRequired)
	}
	if utf8.RuneCountInString(reason) > domain.MaxReasonNoteLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxReasonNoteLength)
	}
	return nil
}
