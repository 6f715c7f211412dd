package errors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeDuplicateName   = "DUPLICATE_NAME"
	ErrCodeInvalidCategory = "INVALID_CATEGORY"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

func InvalidInputError(message string) *AppError {
	return NewAppError(ErrCodeInvalidInput, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

// Form-level errors re-display the originating form instead of surfacing an
// HTTP error status, so they carry status 200.

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusOK)
}

func DuplicateNameError(message string) *AppError {
	return NewAppError(ErrCodeDuplicateName, message, http.StatusOK)
}

func InvalidCategoryError(message string) *AppError {
	return NewAppError(ErrCodeInvalidCategory, message, http.StatusOK)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// IsFormError reports whether err should be handled by re-displaying the
// submitted form rather than rendering an error page.
func IsFormError(err error) (*AppError, bool) {
	appErr, ok := IsAppError(err)
	if !ok {
		return nil, false
	}

	switch appErr.Code {
	case ErrCodeValidation, ErrCodeDuplicateName, ErrCodeInvalidCategory:
		return appErr, true
	}

	return nil, false
}
