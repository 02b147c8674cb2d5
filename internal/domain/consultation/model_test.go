package consultation

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeConsultation_Envelopes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bare", `{"id":5,"patient_id":2,"motivo_consulta":"Esguince"}`},
		{"wrapped", `{"ok":true,"consultation":{"id":5,"patient_id":2,"motivo_consulta":"Esguince"}}`},
		{"data", `{"data":{"id":5,"patient_id":2,"motivo_consulta":"Esguince"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := decodeConsultation(json.RawMessage(tc.body))
			if err != nil {
				t.Fatalf("decodeConsultation: %v", err)
			}
			if c.ID != 5 || c.PatientID != 2 || c.MotivoConsulta != "Esguince" {
				t.Errorf("got %+v", c)
			}
		})
	}
}

func TestDecodeConsultation_LooseFieldTypes(t *testing.T) {
	body := `{
		"id": 5,
		"valor_sesion": "20,50",
		"valor_paquete": 250,
		"saldo": "80.00",
		"ejercicios_json": {"realizo": 1, "tipos": ["PS"]}
	}`
	c, err := decodeConsultation(json.RawMessage(body))
	if err != nil {
		t.Fatalf("decodeConsultation: %v", err)
	}
	if c.ValorSesion == nil || c.ValorSesion.Float() != 20.5 {
		t.Errorf("ValorSesion = %v, want 20.5", c.ValorSesion)
	}
	if c.ValorPaquete == nil || c.ValorPaquete.Float() != 250 {
		t.Errorf("ValorPaquete = %v, want 250", c.ValorPaquete)
	}
	if c.Saldo == nil || c.Saldo.Float() != 80 {
		t.Errorf("Saldo = %v, want 80", c.Saldo)
	}
	if c.EjerciciosJSON == nil || !c.EjerciciosJSON.Realizo.Value() {
		t.Error("realizo flag sent as 1 should decode to true")
	}
}

func TestDecodeConsultationList_Shapes(t *testing.T) {
	item := `{"id":1,"patient_id":2}`
	cases := []struct {
		name string
		body string
		want int
	}{
		{"array", `[` + item + `]`, 1},
		{"consultations", `{"consultations":[` + item + `]}`, 1},
		{"items", `{"items":[` + item + `]}`, 1},
		{"data", `{"data":[` + item + `,` + item + `]}`, 2},
		{"empty object", `{"ok":true}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := decodeConsultationList(json.RawMessage(tc.body))
			if err != nil {
				t.Fatalf("decodeConsultationList: %v", err)
			}
			if len(list) != tc.want {
				t.Errorf("len = %d, want %d", len(list), tc.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	saldo := numberPtr(80)
	c := &Consultation{
		Fecha:                "2026-05-01T00:00:00.000000Z",
		SesionesPlanificadas: 10,
		SesionesRealizadas:   4,
		Saldo:                saldo,
	}
	c.Derive()

	if c.Fecha != "2026-05-01" {
		t.Errorf("Fecha = %q, want truncated date", c.Fecha)
	}
	if c.Progreso == nil || c.Progreso.Pending != 6 || c.Progreso.Percent != 40 {
		t.Errorf("Progreso = %+v", c.Progreso)
	}
	if c.SesionesPendientes != 6 {
		t.Errorf("SesionesPendientes = %d, want 6", c.SesionesPendientes)
	}
	if c.EstadoPago != "Pendiente" {
		t.Errorf("EstadoPago = %q, want Pendiente", c.EstadoPago)
	}
}

func TestDerive_KeepsBackendValues(t *testing.T) {
	c := &Consultation{
		SesionesPlanificadas: 10,
		SesionesRealizadas:   4,
		SesionesPendientes:   3,
		EstadoPago:           "Pagado",
		Saldo:                numberPtr(50),
	}
	c.Derive()

	if c.SesionesPendientes != 3 {
		t.Errorf("SesionesPendientes = %d, backend value should win", c.SesionesPendientes)
	}
	if c.EstadoPago != "Pagado" {
		t.Errorf("EstadoPago = %q, backend value should win", c.EstadoPago)
	}
}

func TestSplitOthers(t *testing.T) {
	got := splitOthers(" Vendaje, Punción seca ,, ")
	want := []string{"Vendaje", "Punción seca"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitOthers = %v, want %v", got, want)
	}
	if got := splitOthers(""); len(got) != 0 {
		t.Errorf("splitOthers(\"\") = %v, want empty", got)
	}
}

func TestCreatePayload_Shape(t *testing.T) {
	f := &Form{
		PatientID:            2,
		Fecha:                "2026-05-01",
		MotivoConsulta:       " Esguince de tobillo ",
		Diagnostico:          "Mejorar estabilidad",
		SesionesPlanificadas: 10,
		Zonas:                []string{"tobillo"},
		Tecnicas:             []string{"US", "TENS"},
		Otros:                "Vendaje",
		RealizoEjercicios:    true,
		TiposEjercicios:      []string{"PS"},
		ValorSesion:          "20,50",
	}
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

	if string(body["motivo_consulta"]) != `"Esguince de tobillo"` {
		t.Errorf("motivo_consulta = %s", body["motivo_consulta"])
	}
	if string(body["zonas_json"]) != `{"seleccion":["tobillo"]}` {
		t.Errorf("zonas_json = %s", body["zonas_json"])
	}
	if string(body["valor_sesion"]) != "20.5" {
		t.Errorf("valor_sesion = %s, want 20.5", body["valor_sesion"])
	}
	if _, ok := body["valor_paquete"]; ok {
		t.Error("blank valor_paquete should be omitted on create")
	}
}

func TestUpdatePayload_NullsBlankMoney(t *testing.T) {
	f := &Form{MotivoConsulta: "Esguince", Diagnostico: "Estabilidad"}
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

	if string(body["valor_sesion"]) != "null" {
		t.Errorf("valor_sesion = %s, want explicit null on update", body["valor_sesion"])
	}
	if string(body["valor_paquete"]) != "null" {
		t.Errorf("valor_paquete = %s, want explicit null on update", body["valor_paquete"])
	}
	if string(body["zonas_json"]) != `{"seleccion":[]}` {
		t.Errorf("zonas_json = %s, want empty selection", body["zonas_json"])
	}
}
