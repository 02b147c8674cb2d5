package therapist

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fisiodesk/fisiodesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/therapists", h.List)
	api.POST("/therapists", h.Create)
	api.GET("/therapists/:id", h.Get)
	api.PUT("/therapists/:id", h.Update)
	api.DELETE("/therapists/:id", h.Delete)
}

func paramID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	result, err := h.svc.List(c.Request().Context(), c.QueryParam("q"), pg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(result.Items, result.Page, result.LastPage, result.Total))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	t, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "therapist": t})
}

func (h *Handler) Create(c echo.Context) error {
	var f CreateForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido")
	}
	t, err := h.svc.Create(c.Request().Context(), &f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "therapist": t})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var f UpdateForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido")
	}
	t, err := h.svc.Update(c.Request().Context(), id, &f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "therapist": t})
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
