package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// Kind classifies primitive failures
type Kind string

const (
	KindInvalidInput     Kind = "InvalidInput"
	KindInvalidKey       Kind = "InvalidKey"
	KindInvalidFormat    Kind = "InvalidFormat"
	KindDecodeError      Kind = "DecodeError"
	KindKeyTooShort      Kind = "KeyTooShort"
	KindUnknownOperation Kind = "UnknownOperation"
	KindInternal         Kind = "Internal"
)

// Sentinels for errors.Is matching against any AppError of the same kind
var (
	ErrInvalidInput     = &AppError{Kind: KindInvalidInput, Message: "invalid input"}
	ErrInvalidKey       = &AppError{Kind: KindInvalidKey, Message: "invalid key"}
	ErrInvalidFormat    = &AppError{Kind: KindInvalidFormat, Message: "invalid format"}
	ErrDecode           = &AppError{Kind: KindDecodeError, Message: "decode error"}
	ErrKeyTooShort      = &AppError{Kind: KindKeyTooShort, Message: "key too short"}
	ErrUnknownOperation = &AppError{Kind: KindUnknownOperation, Message: "unknown operation"}
)

// AppError represents a structured application error
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports kind equality so sentinels match errors carrying a different message
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewInvalidInput creates an invalid input error
func NewInvalidInput(message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message}
}

// NewInvalidInputWithCause creates an invalid input error with cause
func NewInvalidInputWithCause(message string, cause error) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message, Cause: cause}
}

// NewInvalidKey creates an invalid key error
func NewInvalidKey(message string) *AppError {
	return &AppError{Kind: KindInvalidKey, Message: message}
}

// NewInvalidFormat creates an invalid format error
func NewInvalidFormat(message string) *AppError {
	return &AppError{Kind: KindInvalidFormat, Message: message}
}

// NewInvalidFormatWithCause creates an invalid format error with cause
func NewInvalidFormatWithCause(message string, cause error) *AppError {
	return &AppError{Kind: KindInvalidFormat, Message: message, Cause: cause}
}

// NewDecodeError creates a decode error
func NewDecodeError(message string) *AppError {
	return &AppError{Kind: KindDecodeError, Message: message}
}

// NewKeyTooShort creates a key too short error
func NewKeyTooShort(message string) *AppError {
	return &AppError{Kind: KindKeyTooShort, Message: message}
}

// NewUnknownOperation creates an unknown operation error
func NewUnknownOperation(name string) *AppError {
	return &AppError{Kind: KindUnknownOperation, Message: fmt.Sprintf("unknown operation: %s", name)}
}

// NewInternalWithCause creates an internal error with cause
func NewInternalWithCause(message string, cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Cause: cause}
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// ToExitCode converts an error to a process exit code
func ToExitCode(err error) int {
	if err == nil {
		return 0
	}
	if stderrors.Is(err, context.Canceled) {
		return 130
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return 2
	case KindInvalidKey, KindKeyTooShort:
		return 3
	case KindInvalidFormat, KindDecodeError:
		return 4
	case KindUnknownOperation:
		return 64
	default:
		return 1
	}
}
