package board

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind classifies a board error for transports.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindInvalidInput Kind = "INVALID_INPUT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindConflict     Kind = "CONFLICT"
	KindInternal     Kind = "INTERNAL"
)

// User-facing messages.
const (
	MsgEmailRegistered    = "Email already registered"
	MsgInvalidCredentials = "Invalid credentials"
	MsgAccountDeactivated = "Account is deactivated"
	MsgAlreadyApplied     = "Already applied to this job"
)

// Error is returned by every Service method that fails.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack captured when the error was created.
func (e *Error) StackTrace() []byte {
	return e.Stack
}

func newError(kind Kind, message string, err error) *Error {
	var stack []byte
	var withStack *goerrors.Error
	switch {
	case errors.As(err, &withStack):
		stack = withStack.Stack()
	case err != nil:
		stack = goerrors.Wrap(err, 2).Stack()
	default:
		stack = goerrors.Wrap(message, 2).Stack()
	}

	return &Error{Kind: kind, Message: message, Err: err, Stack: stack}
}

func NotFound(message string) *Error {
	return newError(KindNotFound, message, nil)
}

func InvalidInput(message string, err error) *Error {
	return newError(KindInvalidInput, message, err)
}

func Unauthorized(message string) *Error {
	return newError(KindUnauthorized, message, nil)
}

func Forbidden(message string) *Error {
	return newError(KindForbidden, message, nil)
}

func Conflict(message string) *Error {
	return newError(KindConflict, message, nil)
}

func Internal(message string, err error) *Error {
	return newError(KindInternal, message, err)
}

// KindOf returns the kind of a board error, or KindInternal for anything else.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}
