package validators

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/founder-directory/models"
)

// maxFieldLength bounds a single content value, in runes. Biographies are
// the longest values the directory holds.
const maxFieldLength = 8000

// earliestYearJoined is the first year a founder can have joined.
const earliestYearJoined = 1900

type FounderValidator struct{}

func NewFounderValidator() Validator {
	return &FounderValidator{}
}

// Validate accepts a [models.Founder] or a field map. With field names only
// those fields are checked, otherwise every content field is.
func (v *FounderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Founder:
		return v.validateFounder(value, fields...)
	case *models.Founder:
		return v.validateFounder(*value, fields...)
	case map[string]string:
		return v.validateFields(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FounderValidator) validateFounder(f models.Founder, fields ...string) error {
	if strings.TrimSpace(f.ID) == "" {
		return ErrInvalidID
	}
	return v.validateFields(f.Fields, fields...)
}

func (v *FounderValidator) validateFields(values map[string]string, fields ...string) error {
	if len(fields) == 0 {
		fields = models.FounderFields
	}

	var errs []error
	for _, name := range fields {
		if err := validateField(name, values[name]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func validateField(name, value string) error {
	if !models.IsContentField(name) {
		return ErrUnknownField
	}

	value = strings.TrimSpace(models.NormalizeValue(value))
	if value == "" {
		return nil
	}
	if utf8.RuneCountInString(value) > maxFieldLength {
		return ErrValueTooLong
	}

	switch name {
	case models.Email, models.SpouseEmail:
		return validateEmail(value)
	case models.YearJoined:
		return validateYear(value)
	case models.MailingSameAs:
		if value != "0" && value != "1" {
			return ErrInvalidFlag
		}
	}
	return nil
}

func validateEmail(value string) error {
	local, domain, ok := strings.Cut(value, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") || strings.ContainsAny(value, " \t") {
		return ErrInvalidEmail
	}
	return nil
}

func validateYear(value string) error {
	year, err := strconv.Atoi(value)
	if err != nil || len(value) != 4 || year < earliestYearJoined {
		return ErrInvalidYearJoined
	}
	return nil
}
