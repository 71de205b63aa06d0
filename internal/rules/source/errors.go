package source

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory is the normalized failure taxonomy for rule acquisition.
type ErrorCategory string

const (
	// CategoryConfiguration indicates missing credentials or endpoint settings.
	CategoryConfiguration ErrorCategory = "configuration"

	// CategoryRemote indicates a transport failure or a non-success response.
	CategoryRemote ErrorCategory = "remote"

	// CategoryExtraction indicates the fetched content held no usable rules.
	CategoryExtraction ErrorCategory = "extraction"

	// CategoryInternal indicates an unexpected failure.
	CategoryInternal ErrorCategory = "internal"
)

// ConfigurationError is returned by every call when required settings are absent.
// Callers treat it exactly like a network failure.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("rule source not configured: missing %s", strings.Join(e.Missing, ", "))
}

// RemoteError wraps a non-success response or a transport failure.
// Status is zero when no response was received.
type RemoteError struct {
	Status     int
	Message    string
	DocumentID string
	Timeout    bool
	Underlying error
}

func (e *RemoteError) Error() string {
	doc := e.DocumentID
	if doc == "" {
		doc = "?"
	}
	if e.Underlying != nil {
		return fmt.Sprintf("rule source document %s [status %d]: %s: %v", doc, e.Status, e.Message, e.Underlying)
	}
	return fmt.Sprintf("rule source document %s [status %d]: %s", doc, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Underlying
}

// ErrExtractionFailed signals that content was fetched but held no usable rules,
// most likely because the source page format changed.
var ErrExtractionFailed = errors.New("rule extraction failed")

// GetCategory classifies err into the acquisition failure taxonomy.
func GetCategory(err error) ErrorCategory {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return CategoryConfiguration
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return CategoryRemote
	}
	if errors.Is(err, ErrExtractionFailed) {
		return CategoryExtraction
	}
	return CategoryInternal
}

// IsConfigurationError reports whether err stems from missing settings.
func IsConfigurationError(err error) bool {
	return GetCategory(err) == CategoryConfiguration
}
