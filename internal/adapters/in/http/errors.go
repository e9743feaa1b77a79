package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"havenpos/internal/core/application/usecases/commands"
	"havenpos/internal/core/domain/model/access"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrBadRequest marks malformed input caught before a handler runs.
var ErrBadRequest = errors.New("bad request")

type errorMapping struct {
	err    error
	status int
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{ErrMissingToken, http.StatusUnauthorized},
	{ErrInvalidToken, http.StatusUnauthorized},
	{access.ErrPermissionDenied, http.StatusForbidden},
	{errs.ErrObjectNotFound, http.StatusNotFound},
	{order.ErrIllegalTransition, http.StatusBadRequest},
	{commands.ErrMenuItemUnavailable, http.StatusBadRequest},
	{commands.ErrOrderIsNotActive, http.StatusBadRequest},
	{order.ErrLineAlreadySubmitted, http.StatusBadRequest},
	{table.ErrTableIsInactive, http.StatusBadRequest},
	{payment.ErrOrderIsCancelled, http.StatusBadRequest},
	{payment.ErrAmountMustBePositive, http.StatusBadRequest},
	{ErrBadRequest, http.StatusBadRequest},
	{errs.ErrValueIsInvalid, http.StatusBadRequest},
	{errs.ErrValueIsRequired, http.StatusBadRequest},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest},
	{order.ErrTableRequired, http.StatusBadRequest},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{context.Canceled, http.StatusServiceUnavailable},
}

// StatusFor maps an error onto the HTTP status of its response.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// ErrorHandler renders every error as Error JSON. Internal failures are
// logged and their details kept out of the response.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := StatusFor(err)
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		}
		if status == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
			message = "internal server error"
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
