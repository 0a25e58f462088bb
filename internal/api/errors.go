package api

import (
	"errors"
	"fmt"
)

// ErrDecode marks a 2xx response whose body could not be decoded.
var ErrDecode = errors.New("decode response")

// StatusError is returned for any non-2xx response. The body is never parsed.
type StatusError struct {
	Path       string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned %s", e.Path, e.Status)
}

// TransportError wraps connectivity failures: refused connections, DNS, timeouts.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FailureKind buckets errors for logging. Users see the same notice for all of them.
type FailureKind string

const (
	FailureTransport FailureKind = "transport"
	FailureStatus    FailureKind = "status"
	FailureDecode    FailureKind = "decode"
	FailureOther     FailureKind = "other"
)

// Classify reports which bucket err falls into.
func Classify(err error) FailureKind {
	var statusErr *StatusError
	var transportErr *TransportError
	switch {
	case errors.As(err, &statusErr):
		return FailureStatus
	case errors.As(err, &transportErr):
		return FailureTransport
	case errors.Is(err, ErrDecode):
		return FailureDecode
	default:
		return FailureOther
	}
}
