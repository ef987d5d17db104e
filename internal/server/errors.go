// Package server provides the HTTP API for the job board.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/smartjob/internal/board"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var verr *ErrValidation
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	switch board.KindOf(err) {
	case board.KindNotFound:
		return http.StatusNotFound
	case board.KindInvalidInput:
		return http.StatusBadRequest
	case board.KindUnauthorized:
		return http.StatusUnauthorized
	case board.KindForbidden:
		return http.StatusForbidden
	case board.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides internal causes from clients.
func publicMessage(err error) string {
	var be *board.Error
	if errors.As(err, &be) {
		if be.Kind == board.KindInternal {
			return "internal server error"
		}
		return be.Message
	}
	var verr *ErrValidation
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return "internal server error"
}
