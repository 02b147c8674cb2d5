package treatment

import (
	"encoding/json"
	"testing"
)

func TestDecodeSession_Envelopes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bare", `{"id":7,"consultation_id":3,"fecha":"2026-05-01"}`},
		{"session", `{"ok":true,"session":{"id":7,"consultation_id":3,"fecha":"2026-05-01"}}`},
		{"treatment_session", `{"treatment_session":{"id":7,"consultation_id":3,"fecha":"2026-05-01"}}`},
		{"data", `{"data":{"id":7,"consultation_id":3,"fecha":"2026-05-01"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := decodeSession(json.RawMessage(tc.body))
			if err != nil {
				t.Fatalf("decodeSession: %v", err)
			}
			if s.ID != 7 || s.ConsultationID != 3 || s.Fecha != "2026-05-01" {
				t.Errorf("got %+v", s)
			}
		})
	}
}

func TestDecodeSession_AlternateKeys(t *testing.T) {
	body := `{"id":9,"consultationId":4,"date":"2026-05-02T10:30:00Z","metodoPago":"efectivo","referenciaPago":"REF-1"}`
	s, err := decodeSession(json.RawMessage(body))
	if err != nil {
		t.Fatalf("decodeSession: %v", err)
	}
	if s.ConsultationID != 4 {
		t.Errorf("ConsultationID = %d, want 4", s.ConsultationID)
	}
	if s.Fecha != "2026-05-02" {
		t.Errorf("Fecha = %q, want truncated date", s.Fecha)
	}
	if s.MetodoPago == nil || *s.MetodoPago != "Efectivo" {
		t.Errorf("MetodoPago = %v, want canonical Efectivo", s.MetodoPago)
	}
	if s.ReferenciaPago == nil || *s.ReferenciaPago != "REF-1" {
		t.Errorf("ReferenciaPago = %v", s.ReferenciaPago)
	}
}

func TestDecodeSession_StringNumbers(t *testing.T) {
	body := `{"id":1,"consultation_id":2,"fecha":"2026-05-01","eva":"7,5","abono":"20.00"}`
	s, err := decodeSession(json.RawMessage(body))
	if err != nil {
		t.Fatalf("decodeSession: %v", err)
	}
	if s.EVA == nil || s.EVA.Float() != 7.5 {
		t.Errorf("EVA = %v, want 7.5", s.EVA)
	}
	if s.Abono == nil || s.Abono.Float() != 20 {
		t.Errorf("Abono = %v, want 20", s.Abono)
	}
}

func TestDecodeSessionList_Shapes(t *testing.T) {
	item := `{"id":1,"consultation_id":2,"fecha":"2026-05-01"}`
	cases := []struct {
		name string
		body string
		want int
	}{
		{"array", `[` + item + `]`, 1},
		{"sessions", `{"sessions":[` + item + `]}`, 1},
		{"items", `{"items":[` + item + `]}`, 1},
		{"data", `{"data":[` + item + `,` + item + `]}`, 2},
		{"empty object", `{"ok":true}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions, err := decodeSessionList(json.RawMessage(tc.body))
			if err != nil {
				t.Fatalf("decodeSessionList: %v", err)
			}
			if len(sessions) != tc.want {
				t.Errorf("len = %d, want %d", len(sessions), tc.want)
			}
		})
	}
}

func TestCreatePayload_OmitsBlankNumbers(t *testing.T) {
	f := &Form{ConsultationID: 3, Fecha: "2026-05-01", Observaciones: "  ", MetodoPago: ""}
	p, errs := f.validate(testNow(), true)
	if !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	data, err := json.Marshal(f.createPayload(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := body["eva"]; ok {
		t.Error("blank eva should be omitted on create")
	}
	if _, ok := body["abono"]; ok {
		t.Error("blank abono should be omitted on create")
	}
	if string(body["observaciones"]) != "null" {
		t.Errorf("observaciones = %s, want null", body["observaciones"])
	}
	if string(body["metodo_pago"]) != "null" {
		t.Errorf("metodo_pago = %s, want null", body["metodo_pago"])
	}
}

func TestUpdatePayload_NullsBlankNumbers(t *testing.T) {
	f := &Form{Fecha: "2026-05-01"}
	p, errs := f.validate(testNow(), false)
	if !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	data, err := json.Marshal(f.updatePayload(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if string(body["eva"]) != "null" {
		t.Errorf("eva = %s, want explicit null on update", body["eva"])
	}
	if string(body["abono"]) != "null" {
		t.Errorf("abono = %s, want explicit null on update", body["abono"])
	}
}
