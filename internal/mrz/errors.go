package mrz

import "fmt"

// ErrorKind classifies a validation failure. It implements error so callers
// can match any FieldError with errors.Is(err, KindChecksumMismatch).
type ErrorKind string

const (
	// KindInvalidLineCount means the input did not contain exactly three lines.
	KindInvalidLineCount ErrorKind = "invalid_line_count"

	// KindInvalidDocumentType means the document type letter is not A, C or I.
	KindInvalidDocumentType ErrorKind = "invalid_document_type"

	// KindUnresolvedTerritory means a territory code is not in the registry.
	KindUnresolvedTerritory ErrorKind = "unresolved_territory"

	// KindUnresolvedLocality means the municipality/department pair is unknown.
	KindUnresolvedLocality ErrorKind = "unresolved_locality"

	// KindMalformedDate means a date fragment is not a valid YYMMDD date.
	KindMalformedDate ErrorKind = "malformed_date"

	// KindChecksumMismatch means a check digit does not match its field.
	KindChecksumMismatch ErrorKind = "checksum_mismatch"

	// KindNonNumericField means a field that must be digits is not.
	KindNonNumericField ErrorKind = "non_numeric_field"
)

func (k ErrorKind) Error() string {
	return string(k)
}

// FieldError is a validation failure attached to a single MRZ field.
type FieldError struct {
	Kind    ErrorKind `json:"kind"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
}

func newFieldError(kind ErrorKind, field, format string, args ...any) *FieldError {
	return &FieldError{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid MRZ format: %s", e.Message)
	}
	return fmt.Sprintf("invalid MRZ format: %s: %s", e.Field, e.Message)
}

// Unwrap exposes the kind for errors.Is.
func (e *FieldError) Unwrap() error {
	return e.Kind
}
