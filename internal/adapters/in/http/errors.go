package http

import (
	"errors"
	"net/http"

	"dotrack/internal/generated/servers"
	"dotrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps domain errors to HTTP status codes. Unrecognized errors are
// internal: the domain vocabulary is closed, so anything else is a bug or an
// infrastructure failure.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbiddenDepartment):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrDuplicateNumber),
		errors.Is(err, errs.ErrAlreadyTerminal),
		errors.Is(err, errs.ErrStorageConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes the error body with the status derived from the
// domain error.
func errorResponse(ctx echo.Context, err error) error {
	code := statusOf(err)
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}

// badRequest writes a 400 for request decoding and validation failures.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
