package handler

import (
	"strings"

	dErrors "cedula/pkg/domain-errors"
)

const maxMRZLength = 256

// ParseRequest is the HTTP request body for POST /mrz/parse. Exactly one of
// MRZ or Lines is set.
type ParseRequest struct {
	MRZ   string   `json:"mrz"`
	Lines []string `json:"lines"`
}

// Validate validates the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ParseRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.MRZ) > maxMRZLength {
		return dErrors.New(dErrors.CodeValidation, "mrz must be at most 256 characters")
	}
	for _, l := range r.Lines {
		if len(l) > maxMRZLength {
			return dErrors.New(dErrors.CodeValidation, "each line must be at most 256 characters")
		}
	}

	hasText := strings.TrimSpace(r.MRZ) != ""
	hasLines := r.Lines != nil
	switch {
	case hasText && hasLines:
		return dErrors.New(dErrors.CodeValidation, "provide either mrz or lines, not both")
	case !hasText && !hasLines:
		return dErrors.New(dErrors.CodeValidation, "mrz or lines is required")
	case hasLines && len(r.Lines) != 3:
		return dErrors.New(dErrors.CodeValidation, "lines must contain exactly 3 entries")
	}
	return nil
}
