package proxy

import (
	"errors"
	"net/http"
)

// Kind classifies why a proxied call did not produce a value.
type Kind int

const (
	// KindConfig means the call was refused before any outbound request, e.g. a missing API key.
	KindConfig Kind = iota + 1
	// KindInvalidInput means the caller supplied a value the endpoint cannot use.
	KindInvalidInput
	// KindUpstreamStatus means the upstream answered with a status the endpoint does not accept.
	KindUpstreamStatus
	// KindTransport means the call failed on the wire or the body could not be decoded.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInvalidInput:
		return "invalid_input"
	case KindUpstreamStatus:
		return "upstream_status"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the tagged failure returned by Fetch and the endpoint services.
// Status and Message are what the caller receives; Err keeps the underlying cause.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same kind, status and message,
// so copies still match the exported templates they were made from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e == nil {
		return false
	}
	return e.Kind == t.Kind && e.Status == t.Status && e.Message == t.Message
}

// Clone returns a shallow copy of e, or nil when e is nil.
func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// ConfigError reports a missing or unusable setting.
func ConfigError(message string) *Error {
	return &Error{Kind: KindConfig, Status: http.StatusInternalServerError, Message: message}
}

// InvalidInput reports a caller-supplied value that was rejected.
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Status: http.StatusBadRequest, Message: message}
}

// StatusError maps an upstream status to a fixed response status and message.
func StatusError(status int, message string) *Error {
	return &Error{Kind: KindUpstreamStatus, Status: status, Message: message}
}

// TransportError wraps a network or decoding failure. The cause message is what the caller sees.
func TransportError(err error) *Error {
	return &Error{Kind: KindTransport, Status: http.StatusInternalServerError, Message: err.Error(), Err: err}
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
