package create_reservation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

const maxNameLength = 100

var (
	namePattern     = regexp.MustCompile(`^[\p{L} ]+$`)
	documentPattern = regexp.MustCompile(`^[0-9]{6,12}$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{7,15}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")
)

// normalizeCustomer убирает пробелы по краям, приводит email к нижнему регистру, телефон - к цифрам
func normalizeCustomer(c domain.Customer) domain.Customer {
	return domain.Customer{
		Name:     strings.Join(strings.Fields(c.Name), " "),
		Email:    strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:    phoneSeparators.Replace(strings.TrimSpace(c.Phone)),
		Document: strings.TrimSpace(c.Document),
	}
}

// validateCustomer проверяет данные клиента
func validateCustomer(c domain.Customer) error {
	if c.Name == "" || utf8.RuneCountInString(c.Name) > maxNameLength || !namePattern.MatchString(c.Name) {
		return fmt.Errorf("%w: name must contain only letters and spaces", ErrInvalidInput)
	}
	if !isValidEmail(c.Email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if !documentPattern.MatchString(c.Document) {
		return fmt.Errorf("%w: document must contain 6 to 12 digits", ErrInvalidInput)
	}
	if !phonePattern.MatchString(c.Phone) {
		return fmt.Errorf("%w: phone must contain 7 to 15 digits", ErrInvalidInput)
	}
	return nil
}

// isValidEmail адрес с доменом (есть точка после @)
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return validateCustomer(req.Customer)
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
