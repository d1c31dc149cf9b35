package http

import (
	"errors"
	"net/http"

	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps the error taxonomy onto status codes. Handlers that owe
// the contract a specific wording intercept the relevant sentinel before
// falling back here.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrPreconditionFailed):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return c.JSON(http.StatusConflict, messageResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}
}
