package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/cosmic-blueprint/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// fromDomainError maps an application error code onto a response.
func fromDomainError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	var appErr *apperrors.AppError
	message := "something went wrong"
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	switch code {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, code, message, err)
	case apperrors.CodeNotFound:
		return NewHTTPError(http.StatusNotFound, code, message, err)
	case apperrors.CodeRateLimited:
		return NewHTTPError(http.StatusTooManyRequests, code, message, err)
	case apperrors.CodeStorage:
		return NewHTTPError(http.StatusInternalServerError, code, message, err)
	default:
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeInternal, "something went wrong", err)
	}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    apperrors.CodeInternal,
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
