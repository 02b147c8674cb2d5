package consultation

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fisiodesk/fisiodesk/internal/form"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/consultations", h.List)
	api.POST("/consultations", h.Create)
	api.GET("/consultations/options", h.Options)
	api.GET("/consultations/latest", h.Latest)
	api.GET("/consultations/:id", h.Get)
	api.PUT("/consultations/:id", h.Update)
}

func paramID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	filter := ListFilter{Desc: c.QueryParam("order") == "desc"}
	if v := c.QueryParam("patient_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "patient_id inválido")
		}
		filter.PatientID = id
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit inválido")
		}
		filter.Limit = n
	}

	list, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "consultations": list})
}

// Options serves the choice lists the consultation form is built from.
func (h *Handler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"zonas":        ZoneOptions,
		"tecnicas":     TechniqueOptions,
		"ejercicios":   ExerciseOptions,
		"metodos_pago": form.PaymentMethods,
	})
}

// Latest serves the "última consulta" header of the session form: the most
// recent consultation of a patient, or null when there is none yet.
func (h *Handler) Latest(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("patient_id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id inválido")
	}
	latest, err := h.svc.Latest(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "consultation": latest})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	consultation, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "consultation": consultation})
}

func (h *Handler) Create(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido")
	}
	consultation, err := h.svc.Create(c.Request().Context(), &f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "consultation": consultation})
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
	consultation, err := h.svc.Update(c.Request().Context(), id, &f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "consultation": consultation})
}
