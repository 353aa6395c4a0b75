// Package ecjperr defines the structured error type returned by every
// exported call in this module, and the error-code enumeration they carry.
package ecjperr

import "fmt"

// ErrorCode enumerates the outcomes a parsing or lookup call can report.
// It is the Go rendering of ecjp_return_code_t.
type ErrorCode int

const (
	NoError ErrorCode = iota
	GenericError
	BracketsMissing
	SyntaxError
	NullPointer
	EmptyString
	NoMoreKey
	NoSpaceInBufferValue
	IndexOutOfBounds
	IndexNotFound
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "no_error"
	case GenericError:
		return "generic_error"
	case BracketsMissing:
		return "brackets_missing"
	case SyntaxError:
		return "syntax_error"
	case NullPointer:
		return "null_pointer"
	case EmptyString:
		return "empty_string"
	case NoMoreKey:
		return "no_more_key"
	case NoSpaceInBufferValue:
		return "no_space_in_buffer_value"
	case IndexOutOfBounds:
		return "index_out_of_bounds"
	case IndexNotFound:
		return "index_not_found"
	default:
		return fmt.Sprintf("error_code(%d)", int(c))
	}
}

// Error is a structured error carrying a code, a human message, an
// optional wrapped cause, and free-form context for diagnostics.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an *Error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error wrapping an existing cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// WithContext attaches a diagnostic key/value pair and returns the receiver
// for chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode from err if it is (or wraps) an *Error,
// returning GenericError otherwise. A nil err returns NoError.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return NoError
	}
	var e *Error
	if ok := asError(err, &e); ok {
		return e.Code
	}
	return GenericError
}

// asError is a small local errors.As to avoid importing "errors" just for
// a single type switch in the common case, while still unwrapping chains.
func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
