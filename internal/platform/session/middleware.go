package session

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

const contextKey = "session"

// SignInPath is where an unauthenticated browser is pointed.
const SignInPath = "/signin"

// Middleware reads the session cookie, when present, and makes the session
// available both to handlers (echo context) and to the upstream client
// (request context, via upstream.WithToken). An invalid or expired cookie is
// treated as no session at all.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			s, err := m.Parse(cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(contextKey, s)
			req := c.Request()
			c.SetRequest(req.WithContext(upstream.WithToken(req.Context(), s.Token)))
			return next(c)
		}
	}
}

// FromEchoContext returns the session stored by Middleware.
func FromEchoContext(c echo.Context) (Session, bool) {
	s, ok := c.Get(contextKey).(Session)
	return s, ok
}

// RequireAuth rejects requests that carry no valid session. The response
// includes the sign-in location so the browser can redirect, mirroring the
// 401 handling of upstream calls.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := FromEchoContext(c); !ok {
				return Expire(c)
			}
			return next(c)
		}
	}
}

// Expire clears the session cookie and answers 401. The sign-in redirect is
// included unless the request already targets the sign-in flow, which would
// otherwise loop.
func Expire(c echo.Context) error {
	c.SetCookie(Clear())

	body := map[string]string{"message": "Sesión expirada. Inicie sesión nuevamente."}
	path := c.Request().URL.Path
	if !strings.HasPrefix(path, SignInPath) && !strings.HasPrefix(path, "/api/auth/login") {
		body["redirect"] = SignInPath
	}
	return c.JSON(http.StatusUnauthorized, body)
}
