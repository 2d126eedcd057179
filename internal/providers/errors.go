package providers

import (
	"context"
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrorKind classifies upstream failures.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindStatus    ErrorKind = "status"
	KindShape     ErrorKind = "shape"
	KindCanceled  ErrorKind = "canceled"
	KindUnknown   ErrorKind = "unknown"
)

// TransportError wraps failures to reach the upstream at all (DNS, refused, timeout).
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError captures a non-2xx upstream response.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// ShapeError captures a 2xx response whose body is not the expected JSON shape.
type ShapeError struct {
	Endpoint string
	Err      error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Endpoint, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// Classify maps an error onto the upstream failure taxonomy.
func Classify(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return KindStatus
	}
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		return KindShape
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) || errors.Is(err, context.DeadlineExceeded) {
		return KindTransport
	}
	return KindUnknown
}
