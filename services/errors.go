package services

import (
	"errors"

	"BabyNest/response"

	"gorm.io/gorm"
)

// AppError is a failure the caller can act on; everything else is a 500.
type AppError struct {
	Kind    response.Kind
	Message string
}

func (e *AppError) Error() string            { return e.Message }
func (e *AppError) ErrorKind() response.Kind { return e.Kind }

func Invalid(msg string) error      { return &AppError{Kind: response.KindValidation, Message: msg} }
func NotFound(msg string) error     { return &AppError{Kind: response.KindNotFound, Message: msg} }
func Unauthorized(msg string) error { return &AppError{Kind: response.KindUnauthorized, Message: msg} }
func Forbidden(msg string) error    { return &AppError{Kind: response.KindForbidden, Message: msg} }
func Conflict(msg string) error     { return &AppError{Kind: response.KindConflict, Message: msg} }
func Business(msg string) error     { return &AppError{Kind: response.KindBusiness, Message: msg} }

// notFoundOr turns gorm's missing-row error into a not-found AppError.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(msg)
	}
	return err
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind response.Kind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == kind
}
