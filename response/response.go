// Package response writes the JSON envelope every endpoint returns:
// {success, message, data?, errors?}.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Kind classifies a failure for status mapping.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindBusiness     Kind = "business"
)

// Classified is implemented by domain errors that know their kind.
type Classified interface {
	error
	ErrorKind() Kind
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Message: message})
}

func Invalid(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Envelope{Message: message, Errors: fields})
}

func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Message: message})
}

func Forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{Message: message})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Envelope{Message: "Internal server error"})
}

// StatusOf maps an error onto its HTTP status; unclassified errors are 500.
func StatusOf(err error) int {
	var ce Classified
	if !errors.As(err, &ce) {
		return http.StatusInternalServerError
	}
	switch ce.ErrorKind() {
	case KindValidation, KindBusiness:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Error writes the failure envelope for err. It reports whether err was
// unclassified so the caller can log it.
func Error(c *gin.Context, err error) bool {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		ServerError(c)
		return true
	}
	c.JSON(status, Envelope{Message: err.Error()})
	return false
}
