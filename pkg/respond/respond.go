// Package respond shapes every JSON body the surfaces emit: successes as
// {status,data} or {status,message,data}, failures as {status,message}.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmlink/pkg/apperr"
)

func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, map[string]any{"status": "success", "data": data})
}

func Created(c echo.Context, message string, data any) error {
	body := map[string]any{"status": "success", "data": data}
	if message != "" {
		body["message"] = message
	}
	return c.JSON(http.StatusCreated, body)
}

// ErrorHandler maps failure kinds to status codes: 4xx bodies carry
// status "fail", 5xx carry status "error".
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "internal server error"

		if ae, ok := apperr.As(err); ok {
			code = ae.HTTPStatus()
			msg = ae.Message
		} else if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			} else {
				msg = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
		}

		status := "fail"
		if code >= http.StatusInternalServerError {
			status = "error"
		}
		_ = c.JSON(code, map[string]any{"status": status, "message": msg})
	}
}
