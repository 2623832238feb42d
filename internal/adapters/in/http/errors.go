package http

import (
	"errors"
	"net/http"

	"deliverytech/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error to an HTTP status. Unclassified errors
// become an opaque 500 so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrBusinessRule):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

// writeBadRequest reports a malformed request body or parameter.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
