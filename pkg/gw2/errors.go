package gw2

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure produced by the request pipeline.
// New kinds may be added; callers should match the kinds they care about and
// treat anything else as a generic failure.
type ErrorKind int

const (
	// ErrorKindTransport wraps a DNS, connection, TLS or deadline failure.
	ErrorKindTransport ErrorKind = iota + 1
	// ErrorKindTimeout is a 408 reported by the server.
	ErrorKindTimeout
	// ErrorKindForbidden is a 403, usually an insufficiently scoped API key.
	ErrorKindForbidden
	// ErrorKindNotFound is a 404.
	ErrorKindNotFound
	// ErrorKindKeyNotSet is returned before any I/O when an authenticated
	// endpoint is requested without an API key.
	ErrorKindKeyNotSet
	// ErrorKindEndpointDisabled is a 503.
	ErrorKindEndpointDisabled
	// ErrorKindUnexpectedStatus is the catch-all for every other status.
	ErrorKindUnexpectedStatus
	// ErrorKindDecode wraps a JSON decoding failure on a 200 or 206 body.
	ErrorKindDecode
	// ErrorKindInvalidRequest is a client-side misuse such as an empty id list.
	ErrorKindInvalidRequest
)

// String returns a short identifier for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport"
	case ErrorKindTimeout:
		return "timeout"
	case ErrorKindForbidden:
		return "forbidden"
	case ErrorKindNotFound:
		return "not_found"
	case ErrorKindKeyNotSet:
		return "key_not_set"
	case ErrorKindEndpointDisabled:
		return "endpoint_disabled"
	case ErrorKindUnexpectedStatus:
		return "unexpected_status"
	case ErrorKindDecode:
		return "decode"
	case ErrorKindInvalidRequest:
		return "invalid_request"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the error type returned by every fallible step of the pipeline.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Status is the HTTP status code for server-classified kinds, 0 otherwise.
	Status int
	// Detail is the server's "text" message for error statuses, or the reason
	// for an invalid request.
	Detail string
	// Err is the underlying cause for transport and decode failures.
	Err error
}

// Error implements the error interface. Fixed kinds always render the same
// message so they can be logged and grepped as-is.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindTransport:
		if e.Err != nil {
			return "request failed: " + e.Err.Error()
		}

		return "request failed"
	case ErrorKindTimeout:
		return "client timed out, check your internet connection or the status of the official API"
	case ErrorKindForbidden:
		return "unable to access resource, the API key probably lacks the permissions required for it"
	case ErrorKindNotFound:
		return "unable to find the endpoint"
	case ErrorKindKeyNotSet:
		return "API key not set while trying to access a resource that needs one"
	case ErrorKindEndpointDisabled:
		return "this endpoint is disabled"
	case ErrorKindUnexpectedStatus:
		msg := fmt.Sprintf("unexpected status code %d", e.Status)
		if e.Detail != "" {
			msg += ": " + e.Detail
		}

		return msg
	case ErrorKindDecode:
		if e.Err != nil {
			return "failed to decode response: " + e.Err.Error()
		}

		return "failed to decode response"
	case ErrorKindInvalidRequest:
		return "invalid request: " + e.Detail
	default:
		return fmt.Sprintf("%s error", e.Kind)
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, which makes the
// sentinel values below usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// Sentinels for errors.Is matching. They compare by kind only.
var (
	ErrTransport        = &Error{Kind: ErrorKindTransport}
	ErrTimeout          = &Error{Kind: ErrorKindTimeout}
	ErrForbidden        = &Error{Kind: ErrorKindForbidden}
	ErrNotFound         = &Error{Kind: ErrorKindNotFound}
	ErrKeyNotSet        = &Error{Kind: ErrorKindKeyNotSet}
	ErrEndpointDisabled = &Error{Kind: ErrorKindEndpointDisabled}
	ErrUnexpectedStatus = &Error{Kind: ErrorKindUnexpectedStatus}
	ErrDecode           = &Error{Kind: ErrorKindDecode}
	ErrInvalidRequest   = &Error{Kind: ErrorKindInvalidRequest}
)

// Descriptor and registry errors. These are configuration mistakes in a
// static endpoint table, never caused by request input.
// Static errors for err113 compliance.
var (
	ErrInvalidDescriptor     = errors.New("invalid endpoint descriptor")
	ErrUnknownKind           = errors.New("unknown endpoint kind")
	ErrParamCountMismatch    = errors.New("parameter count does not match endpoint kind")
	ErrDuplicateParam        = errors.New("duplicate parameter name")
	ErrMalformedTemplate     = errors.New("malformed endpoint template")
	ErrDuplicateEndpoint     = errors.New("endpoint already registered")
	ErrEndpointNotRegistered = errors.New("endpoint not registered")
	ErrUnknownLanguage       = errors.New("unknown language")
)

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	return 0
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return KindOf(err) == ErrorKindNotFound
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return KindOf(err) == ErrorKindForbidden
}

// IsKeyNotSet checks if the error was caused by a missing API key.
func IsKeyNotSet(err error) bool {
	return KindOf(err) == ErrorKindKeyNotSet
}

// IsEndpointDisabled checks if the endpoint is disabled server-side.
func IsEndpointDisabled(err error) bool {
	return KindOf(err) == ErrorKindEndpointDisabled
}

// IsTimeout checks if the server answered 408.
func IsTimeout(err error) bool {
	return KindOf(err) == ErrorKindTimeout
}

// IsTransport checks if the request never produced an HTTP response.
func IsTransport(err error) bool {
	return KindOf(err) == ErrorKindTransport
}

// IsDecode checks if the response body could not be decoded.
func IsDecode(err error) bool {
	return KindOf(err) == ErrorKindDecode
}

func invalidRequest(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorKindInvalidRequest, Detail: fmt.Sprintf(format, args...)}
}
