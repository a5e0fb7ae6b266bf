package testutil

import (
	"net/http"
	"time"

	"cedula/pkg/requestcontext"
)

// WithRequestTime freezes the request-scoped clock, which is what the
// requesttime middleware would otherwise set.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// WithRequestID adds a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithClientMetadata adds the client IP and User-Agent the metadata
// middleware would otherwise set.
func WithClientMetadata(req *http.Request, clientIP, userAgent string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), clientIP, userAgent))
}
