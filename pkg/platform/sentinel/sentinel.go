package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Adapters for external services
// (object storage, document analysis) return these, optionally wrapped, so
// services can translate them into domain errors without knowing the SDK.
//
// - ErrUnavailable: the remote service could not be reached or refused the call
// - ErrTimeout: the remote call exceeded its deadline
// - ErrInvalidResponse: the remote service answered with data we cannot use
var (
	ErrUnavailable     = errors.New("unavailable")
	ErrTimeout         = errors.New("timeout")
	ErrInvalidResponse = errors.New("invalid response")
)
