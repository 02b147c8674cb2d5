package patient

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandlerGet_WrapsPatient(t *testing.T) {
	h := NewHandler(newTestService(&mockRepo{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"ok":true`) || !strings.Contains(body, `"patient"`) {
		t.Errorf("body = %s", body)
	}
}

func TestHandlerGet_BadID(t *testing.T) {
	h := NewHandler(newTestService(&mockRepo{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("got %v, want 400", err)
	}
}

func TestHandlerCreate_Returns201(t *testing.T) {
	h := NewHandler(newTestService(&mockRepo{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/patients",
		strings.NewReader(`{"nombres":"Ana","apellidos":"Mora"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestHandlerHistory_Shape(t *testing.T) {
	h := NewHandler(newTestService(&mockRepo{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients/7/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.History(c); err != nil {
		t.Fatalf("History: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"consultations":[]`) {
		t.Errorf("empty history should serialize as [], got %s", body)
	}
}
