package http

import (
	"errors"
	"net/http"

	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/generated/servers"
	"wreaths/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor classifies an error returned by a use case. Data-integrity errors are checked
// before the generic validation errors because a bad stored status matches both.
func statusFor(err error) int {
	var illegal *order.IllegalTransitionError
	switch {
	case errors.As(err, &illegal), errors.Is(err, order.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, order.ErrStatusNotInFlow),
		errors.Is(err, order.ErrInvalidDeliveryMethod),
		errors.Is(err, order.ErrTotalMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response. Client errors echo the domain message; server errors are
// logged and reported with the generic message only.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusFor(err)
	switch {
	case code >= http.StatusInternalServerError:
		s.logger.Error(message,
			zap.Error(err),
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
		)
	case code == http.StatusUnprocessableEntity:
		s.logger.Warn("stored data breaks the order workflow", zap.Error(err), zap.String("path", ctx.Path()))
		message = err.Error()
	default:
		message = err.Error()
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders errors that escape the handlers (routing, parameter binding, panics
// caught by Recover) in the same {code, message} shape.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}
		if code >= http.StatusInternalServerError {
			logger.Error("unhandled request error", zap.Error(err), zap.String("path", ctx.Path()))
		}

		if err = ctx.JSON(code, servers.Error{Code: code, Message: message}); err != nil {
			logger.Error("failed to write error response", zap.Error(err))
		}
	}
}
