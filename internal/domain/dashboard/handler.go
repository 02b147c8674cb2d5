package dashboard

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
	api.GET("/dashboard/summary", h.Summary)
	api.GET("/dashboard/charts", h.Charts)
}

func (h *Handler) Summary(c echo.Context) error {
	summary, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"ok":              true,
		"cards":           summary.Cards,
		"latest_sessions": summary.LatestSessions,
	})
}

func (h *Handler) Charts(c echo.Context) error {
	year := 0
	if v := c.QueryParam("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "year inválido")
		}
		year = n
	}

	charts, err := h.svc.Charts(c.Request().Context(), year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"ok":                    true,
		"labels":                charts.Labels,
		"series":                charts.Series,
		"payment_methods_month": charts.PaymentMethodsMonth,
	})
}
