package utils

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateStruct runs validator tags over a decoded form struct and folds the
// failures into a single message suitable for re-rendering the page.
func ValidateStruct(validate *validator.Validate, data any) error {

	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	var msgs []string

	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("Field %s is required", fieldErr.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("Field %s must be at least %s", fieldErr.Field(), fieldErr.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("Field %s must be %s or more", fieldErr.Field(), fieldErr.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("Field %s is invalid", fieldErr.Field()))
		}
	}

	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// ParsePositiveInt parses a form quantity, rejecting the malformed values the
// browser form could submit instead of silently coercing them.
func ParsePositiveInt(raw string) (int, error) {

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}

	if n <= 0 {
		return 0, fmt.Errorf("must be a positive number, got %d", n)
	}

	return n, nil
}

// ParsePrice parses a non-negative decimal form field.
func ParsePrice(raw string) (float64, error) {

	p, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}

	if p < 0 {
		return 0, fmt.Errorf("must not be negative, got %v", p)
	}

	return p, nil
}
