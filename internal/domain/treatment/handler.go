package treatment

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/treatment-sessions", h.List)
	api.POST("/treatment-sessions", h.Create)
	api.GET("/treatment-sessions/:id", h.Get)
	api.PUT("/treatment-sessions/:id", h.Update)
	api.DELETE("/treatment-sessions/:id", h.Delete)
}

func paramID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	consultationID, err := strconv.Atoi(c.QueryParam("consultation_id"))
	if err != nil || consultationID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "consultation_id inválido")
	}
	sessions, err := h.svc.ListByConsultation(c.Request().Context(), consultationID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "sessions": sessions})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	s, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "session": s})
}

func (h *Handler) Create(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido")
	}
	s, err := h.svc.Create(c.Request().Context(), &f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "session": s})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido")
	}
	s, err := h.svc.Update(c.Request().Context(), id, &f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "session": s})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
