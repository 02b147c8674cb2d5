package authn

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fisiodesk/fisiodesk/internal/platform/session"
)

type Handler struct {
	svc      *Service
	sessions *session.Manager
}

func NewHandler(svc *Service, sessions *session.Manager) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

// RegisterRoutes mounts login and logout on the open group and me on the
// guarded one.
func (h *Handler) RegisterRoutes(open, guarded *echo.Group) {
	open.POST("/auth/login", h.Login)
	open.POST("/auth/logout", h.Logout)
	guarded.GET("/auth/me", h.Me)
}

func (h *Handler) Login(c echo.Context) error {
	var creds Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido")
	}

	token, user, err := h.svc.Login(c.Request().Context(), &creds)
	if err != nil {
		return err
	}

	_, cookie, err := h.sessions.Issue(token, creds.Email, creds.Remember)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, echo.Map{
		"ok":   true,
		"user": user,
		"name": user.DisplayName(),
	})
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(session.Clear())
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (h *Handler) Me(c echo.Context) error {
	user, err := h.svc.Me(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user": user,
		"name": user.DisplayName(),
	})
}
