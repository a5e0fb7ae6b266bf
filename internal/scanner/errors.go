package scanner

import (
	"context"
	"errors"
	"fmt"

	"cedula/pkg/platform/sentinel"
)

// ErrorCategory is the normalized failure taxonomy of document analysis.
type ErrorCategory string

const (
	// ErrorTimeout indicates the OCR or storage call took too long
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the OCR service returned data we cannot read
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorProviderOutage indicates the OCR or storage service is unavailable
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorNoDocument indicates no identity card MRZ was found in the image
	ErrorNoDocument ErrorCategory = "no_document"

	// ErrorCanceled indicates the caller gave up before analysis finished
	ErrorCanceled ErrorCategory = "canceled"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// AnalysisError wraps analysis failures with normalized categorization.
type AnalysisError struct {
	Category   ErrorCategory
	Stage      string
	Message    string
	Underlying error
	Retryable  bool
}

func (e *AnalysisError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("analysis %s [%s]: %s: %v", e.Stage, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("analysis %s [%s]: %s", e.Stage, e.Category, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Underlying
}

// NewAnalysisError creates a categorized analysis error. Timeouts and
// outages are retryable.
func NewAnalysisError(category ErrorCategory, stage, message string, underlying error) *AnalysisError {
	return &AnalysisError{
		Category:   category,
		Stage:      stage,
		Message:    message,
		Underlying: underlying,
		Retryable:  category == ErrorTimeout || category == ErrorProviderOutage,
	}
}

// IsRetryable checks if an error is worth retrying
func IsRetryable(err error) bool {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Category
	}
	return ErrorInternal
}

// classify maps adapter errors onto the taxonomy.
func classify(err error) ErrorCategory {
	switch {
	case errors.Is(err, context.Canceled):
		return ErrorCanceled
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, sentinel.ErrTimeout):
		return ErrorTimeout
	case errors.Is(err, sentinel.ErrInvalidResponse):
		return ErrorBadData
	case errors.Is(err, sentinel.ErrUnavailable):
		return ErrorProviderOutage
	default:
		return ErrorInternal
	}
}
