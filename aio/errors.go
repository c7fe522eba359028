package aio

import (
	"errors"
	"fmt"
)

// ErrConfig reports invalid construction input: missing credentials or a
// rejected option argument.
var ErrConfig = errors.New("invalid client configuration")

// ErrTransport reports a failure surfaced by the underlying *http.Client.
// The client never retries it; configure retry on the transport (WithRetry)
// if desired.
var ErrTransport = errors.New("transport failure")

// ErrAPI reports a non-2xx response from the service.
var ErrAPI = errors.New("api error")

// ErrDecode reports a response body that is not valid JSON for the target.
var ErrDecode = errors.New("response decode failure")

// ConfigError carries the reason construction failed while satisfying
// errors.Is(_, ErrConfig).
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "aio: " + e.Reason }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// TransportError wraps the error returned by http.Client.Do.
type TransportError struct {
	Op  string // "GET feeds/temperature/data/last"
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("aio: %s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// APIError is returned for any non-2xx status. Body holds the raw response
// body for diagnostics; the service reports errors as JSON but that is not
// relied upon here.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("aio: %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

func (e *APIError) Is(target error) bool { return target == ErrAPI }

// DecodeError wraps a JSON decoding failure.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("aio: %s: decode: %v", e.Op, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
