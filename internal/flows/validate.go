package flows

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MinYear     = 2020
	MaxYear     = 2035
	DefaultYear = 2025

	DefaultTuition = 800000
	DefaultYears   = 4
)

// ValidationError rejects a form before any request is built.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ParseYear reads a graduation year. Blank input means "no year" and yields nil.
func ParseYear(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalid("year", "Graduation year must be a whole number between %d and %d.", MinYear, MaxYear)
	}
	if err := CheckYear(&year); err != nil {
		return nil, err
	}
	return &year, nil
}

// CheckYear accepts nil or a year within [MinYear, MaxYear].
func CheckYear(year *int) error {
	if year == nil {
		return nil
	}
	if *year < MinYear || *year > MaxYear {
		return invalid("year", "Graduation year must be between %d and %d.", MinYear, MaxYear)
	}
	return nil
}

// ClampYear pins year into [MinYear, MaxYear]; the TUI stepper uses it.
func ClampYear(year int) int {
	switch {
	case year < MinYear:
		return MinYear
	case year > MaxYear:
		return MaxYear
	default:
		return year
	}
}

// ParseTuition reads a non-negative tuition total. Blank input uses DefaultTuition.
func ParseTuition(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return DefaultTuition, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalid("tuition_total", "Total tuition must be a number.")
	}
	if err := CheckTuition(value); err != nil {
		return 0, err
	}
	return value, nil
}

// CheckTuition rejects negative or non-finite tuition.
func CheckTuition(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return invalid("tuition_total", "Total tuition must be a number.")
	}
	if value < 0 {
		return invalid("tuition_total", "Total tuition cannot be negative.")
	}
	return nil
}

// ParseProgramYears reads a program length of at least one year. Blank input uses DefaultYears.
func ParseProgramYears(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultYears, nil
	}
	years, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("years", "Program length must be a whole number of years.")
	}
	if err := CheckProgramYears(years); err != nil {
		return 0, err
	}
	return years, nil
}

// CheckProgramYears requires at least one year.
func CheckProgramYears(years int) error {
	if years < 1 {
		return invalid("years", "Program length must be at least 1 year.")
	}
	return nil
}
