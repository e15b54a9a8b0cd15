package impl

import (
	"strconv"
	"strings"
	"unicode/utf8"

	domainerrors "blog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

const (
	maxEmailLength = 255
	maxTitleLength = 255
	// bcrypt only looks at the first 72 bytes.
	maxPasswordBytes = 72
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// normalizeEmail trims and lower-cases so lookups and the unique index agree.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email: is required")
	}
	if len(email) > maxEmailLength || validate.Var(email, "email") != nil {
		return domainerrors.ErrValidationFailed.WithDetails("email: must be a valid email address")
	}

	return nil
}

func validatePassword(password string, minLength int) error {
	if utf8.RuneCountInString(password) < minLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			"password: must be at least " + strconv.Itoa(minLength) + " characters")
	}
	if len(password) > maxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails(
			"password: must be at most " + strconv.Itoa(maxPasswordBytes) + " bytes")
	}

	return nil
}

// requireText rejects empty and whitespace-only values.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.ErrValidationFailed.WithDetails(field + ": must not be blank")
	}

	return nil
}

func validateTitle(title string) error {
	if err := requireText("title", title); err != nil {
		return err
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			"title: must be at most " + strconv.Itoa(maxTitleLength) + " characters")
	}

	return nil
}
