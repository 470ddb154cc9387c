package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidConfig is matched by every error built with NewConfig.
var ErrInvalidConfig = errors.New("invalid configuration")

// Type classifies errors by where they originate.
type Type int

const (
	TypeServer     Type = iota // Failures inside the service.
	TypeValidation             // Malformed requests.
	TypeConfig                 // Rejected settings, such as a log level.
)

func (t Type) String() string {
	switch t {
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeConfig:
		return "ERROR_TYPE_CONFIG"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier reported to clients and mapped to HTTP status
// codes.
type Code int

const (
	CodeInternal      Code = iota
	CodeInvalidFormat      // body could not be decoded
	CodeOutOfRange         // number outside the allowed range
	CodeUnknownName        // name matching no known value
	CodeTypeMismatch       // value of an unsupported type
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeOutOfRange:
		return "ERROR_CODE_OUT_OF_RANGE"
	case CodeUnknownName:
		return "ERROR_CODE_UNKNOWN_NAME"
	case CodeTypeMismatch:
		return "ERROR_CODE_TYPE_MISMATCH"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error carries a client-facing message, a type and a code, and may wrap the
// error that caused it.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeConfig:
		return "Invalid configuration"
	default:
		return "Internal error"
	}
}

// String is the verbose form used in debug logs.
func (e *Error) String() string {
	return fmt.Sprintf("Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType, e.code, e.msg, e.err)
}

func (e *Error) Msg() string { return e.msg }

func (e *Error) Type() Type { return e.errType }

func (e *Error) Code() Code { return e.code }

func (e *Error) Unwrap() error { return e.err }

// Is reports ErrInvalidConfig for configuration errors.
func (e *Error) Is(target error) bool {
	//nolint:errorlint // sentinel compare
	return target == ErrInvalidConfig && e.errType == TypeConfig
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeTypeMismatch:
		return http.StatusBadRequest
	case CodeOutOfRange, CodeUnknownName:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer wraps an unexpected failure; clients only see a generic message.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewInvalidFormat reports a request body that could not be decoded.
func NewInvalidFormat() error {
	return new(nil, "invalid request body", TypeValidation, CodeInvalidFormat)
}

// NewConfig reports a rejected setting. The message is err's text so callers
// can show it verbatim.
func NewConfig(err error, code Code) error {
	msg := ErrInvalidConfig.Error()
	if err != nil {
		msg = err.Error()
	}
	return new(err, msg, TypeConfig, code)
}
