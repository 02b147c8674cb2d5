package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fisiodesk/fisiodesk/internal/domain/consultation"
	"github.com/fisiodesk/fisiodesk/internal/form"
	"github.com/fisiodesk/fisiodesk/pkg/pagination"
)

func testNow() time.Time {
	return time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

type mockRepo struct {
	list    *ListResult
	history *History
	created *Payload
	updated *Payload
	calls   int
}

func (m *mockRepo) List(ctx context.Context, q string, p pagination.Params) (*ListResult, error) {
	m.calls++
	if m.list != nil {
		return m.list, nil
	}
	return &ListResult{Items: []*Patient{}, Page: 1, LastPage: 1}, nil
}

func (m *mockRepo) Get(ctx context.Context, id int) (*Patient, error) {
	m.calls++
	return &Patient{ID: id, Nombres: "Ana", Apellidos: "Mora", FechaNacimiento: strPtr("1990-08-31")}, nil
}

func (m *mockRepo) Create(ctx context.Context, payload *Payload) (*Patient, error) {
	m.calls++
	m.created = payload
	return &Patient{ID: 1, Nombres: payload.Nombres, Apellidos: payload.Apellidos}, nil
}

func (m *mockRepo) Update(ctx context.Context, id int, payload *Payload) (*Patient, error) {
	m.calls++
	m.updated = payload
	return &Patient{ID: id, Nombres: payload.Nombres, Apellidos: payload.Apellidos}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int) error {
	m.calls++
	return nil
}

func (m *mockRepo) History(ctx context.Context, id int) (*History, error) {
	m.calls++
	if m.history != nil {
		return m.history, nil
	}
	return &History{Patient: &Patient{ID: id}, Consultations: []*consultation.Consultation{}}, nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = testNow
	return svc
}

func TestCreate_InvalidFormNeverReachesUpstream(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &Form{
		Nombres:        "",
		Apellidos:      "Mora",
		Identificacion: "123",
	})

	var vErr *form.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want validation error", err)
	}
	if vErr.Fields["nombres"] != "Ingrese nombres." {
		t.Errorf("nombres error = %q", vErr.Fields["nombres"])
	}
	if vErr.Fields["identificacion"] != "La cédula debe tener 10 dígitos." {
		t.Errorf("identificacion error = %q", vErr.Fields["identificacion"])
	}
	if repo.calls != 0 {
		t.Error("invalid form must not trigger an upstream call")
	}
}

func TestCreate_NormalizesPayload(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &Form{
		Nombres:        "  Ana   María ",
		Apellidos:      "Mora",
		Identificacion: "09-9887-7665",
		Celular:        "099 887 7665",
		Sector:         "   ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p := repo.created
	if p.Nombres != "Ana María" {
		t.Errorf("Nombres = %q, want collapsed whitespace", p.Nombres)
	}
	if p.Identificacion == nil || *p.Identificacion != "0998877665" {
		t.Errorf("Identificacion = %v, want digits only", p.Identificacion)
	}
	if p.Celular == nil || *p.Celular != "0998877665" {
		t.Errorf("Celular = %v, want digits only", p.Celular)
	}
	if p.Sector != nil {
		t.Errorf("Sector = %v, blank should serialize as null", p.Sector)
	}
}

func TestGet_DerivesAge(t *testing.T) {
	svc := newTestService(&mockRepo{})

	p, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Edad == nil || *p.Edad != 36 {
		t.Errorf("Edad = %v, want 36", p.Edad)
	}
}

func TestHistory_DerivesConsultationProgress(t *testing.T) {
	repo := &mockRepo{history: &History{
		Patient: &Patient{ID: 1},
		Consultations: []*consultation.Consultation{{
			SesionesPlanificadas: 10,
			SesionesRealizadas:   4,
		}},
	}}
	svc := newTestService(repo)

	h, err := svc.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	c := h.Consultations[0]
	if c.Progreso == nil || c.Progreso.Pending != 6 || c.Progreso.Percent != 40 {
		t.Errorf("Progreso = %+v", c.Progreso)
	}
}
