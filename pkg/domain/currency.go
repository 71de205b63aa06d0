package domain

import (
	"strings"

	dErrors "compliance-advisor/pkg/domain-errors"
)

// CurrencyCode is an upper-case three-letter ISO 4217 style code.
// Invariant: exactly three ASCII letters, upper case.
//
// Usage: construct via ParseCurrencyCode at trust boundaries.
type CurrencyCode string

// EUR is the settlement currency for SEPA and local transfers.
const EUR CurrencyCode = "EUR"

// ParseCurrencyCode trims and upper-cases s and validates its shape.
// It does not check the code against an ISO registry.
func ParseCurrencyCode(s string) (CurrencyCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "currency is required")
	}
	if len(s) != 3 {
		return "", dErrors.New(dErrors.CodeValidation, "currency must be a 3-letter code")
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", dErrors.New(dErrors.CodeValidation, "currency must be a 3-letter code")
		}
	}
	return CurrencyCode(s), nil
}

func (c CurrencyCode) String() string {
	return string(c)
}

// maxCountryNameLength bounds free-form country input.
const maxCountryNameLength = 100

// ParseCountryName trims surrounding whitespace and rejects empty or
// oversized names. Case and inner spelling are preserved: rule sets match
// country names exactly.
func ParseCountryName(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, field+" is required")
	}
	if len(s) > maxCountryNameLength {
		return "", dErrors.New(dErrors.CodeValidation, field+" is too long")
	}
	return s, nil
}
