package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrInvalidData    ErrorCode = "INVALID_DATA"
)

const (
	MsgInvalidData    = "invalid Data"
	MsgInternalServer = "Internal server error"
)

// Store-level sentinels. Repositories return these (wrapped) so services can
// tell an expected miss from an infrastructure failure.
var (
	ErrRecordNotFound      = stderrors.New("record not found")
	ErrConstraintViolation = stderrors.New("constraint violation")
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus maps the error code to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

func InvalidData(err error) *AppError {
	return NewAppError(ErrInvalidData, MsgInvalidData, err)
}

func Internal(err error) *AppError {
	return NewAppError(ErrInternalServer, MsgInternalServer, err)
}

// FromStore classifies a repository error. A missing row becomes a 404 with
// notFoundMsg, a rejected write becomes invalid data, anything else is
// internal.
func FromStore(err error, notFoundMsg string) *AppError {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, ErrRecordNotFound):
		return NewAppError(ErrNotFound, notFoundMsg, err)
	case stderrors.Is(err, ErrConstraintViolation):
		return InvalidData(err)
	default:
		return Internal(err)
	}
}

// As is errors.As from the standard library, re-exported so callers that
// import this package under the name errors keep access to it.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
