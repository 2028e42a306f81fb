package business

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/service/business/models"
)

const (
	maxNameLength    = 100
	maxDepositAmount = 10_000_000
)

var slugRegexp = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateCreate(req *models.CreateBusinessRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)

	if err := validateName(req.Name); err != nil {
		return err
	}
	if len(req.Slug) < 3 || len(req.Slug) > 50 || !slugRegexp.MatchString(req.Slug) {
		return fmt.Errorf("%w: slug must be 3-50 lowercase letters, digits or dashes", ErrInvalidInput)
	}
	return validateEmail(req.ContactEmail)
}

func validateProfile(req *models.UpdateProfileRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return err
		}
		req.Name = &name
	}
	if req.ContactEmail != nil {
		email := strings.TrimSpace(*req.ContactEmail)
		if err := validateEmail(email); err != nil {
			return err
		}
		req.ContactEmail = &email
	}
	if req.DepositAmount != nil && (*req.DepositAmount < 0 || *req.DepositAmount > maxDepositAmount) {
		return fmt.Errorf("%w: deposit amount out of range", ErrInvalidInput)
	}
	return nil
}

func validateName(name string) error {
	if name == "" || len([]rune(name)) > maxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, maxNameLength)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid contact email", ErrInvalidInput)
	}
	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: contact email domain must contain a dot", ErrInvalidInput)
	}
	return nil
}
