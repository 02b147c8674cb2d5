package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fisiodesk/fisiodesk/internal/form"
	"github.com/fisiodesk/fisiodesk/internal/platform/session"
	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

// ErrorHandler maps the gateway's error taxonomy onto HTTP responses:
//
//   - upstream.ErrUnauthorized: session cleared, 401 + sign-in redirect
//   - form.ValidationError: 422 with the field-keyed error map
//   - upstream.APIError: status and extracted message passed through
//   - echo.HTTPError: as-is
//   - anything else (network, decode): 502 with a generic message
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, upstream.ErrUnauthorized) {
			_ = session.Expire(c)
			return
		}

		var vErr *form.ValidationError
		if errors.As(err, &vErr) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"message": "Revise los campos marcados.",
				"errors":  vErr.Fields,
			})
			return
		}

		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			_ = c.JSON(apiErr.Status, map[string]string{"message": apiErr.Message})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, map[string]string{"message": fmt.Sprintf("%v", httpErr.Message)})
			return
		}

		rid, _ := c.Get("request_id").(string)
		logger.Error().Err(err).
			Str("request_id", rid).
			Str("path", c.Request().URL.Path).
			Msg("unexpected error")
		_ = c.JSON(http.StatusBadGateway, map[string]string{"message": upstream.FallbackMessage})
	}
}
