package consultation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/fisiodesk/fisiodesk/internal/display"
	"github.com/fisiodesk/fisiodesk/internal/domain/treatment"
	"github.com/fisiodesk/fisiodesk/internal/form"
	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

// Option lists offered by the consultation form. The backend stores whatever
// it receives; these are the choices the clinic actually works with.
var (
	ZoneOptions = []string{
		"cuello", "hombro", "codo", "muñeca", "mano",
		"espalda alta", "espalda baja", "cadera", "rodilla", "tobillo", "pie",
	}
	TechniqueOptions = []string{"CQC", "US", "MS", "TENS", "Calor", "Frío", "Masaje"}
	ExerciseOptions  = []string{"PS", "AC", "DR", "Fuerza", "Estiramientos", "Propiocepción"}
)

// Zones is the zonas_json column payload.
type Zones struct {
	Seleccion []string `json:"seleccion"`
}

// Protocol is the protocolo_json column payload.
type Protocol struct {
	Tecnicas []string `json:"tecnicas"`
	Otros    []string `json:"otros"`
}

// ExercisePlan is the ejercicios_json column payload.
type ExercisePlan struct {
	Realizo upstream.Bool `json:"realizo"`
	Tipos   []string      `json:"tipos"`
}

// Consultation is one treatment plan for a patient. The session and payment
// totals are computed by the backend; Progreso is derived locally from them.
type Consultation struct {
	ID                   int              `json:"id"`
	PatientID            int              `json:"patient_id"`
	Fecha                string           `json:"fecha"`
	MotivoConsulta       string           `json:"motivo_consulta"`
	Diagnostico          string           `json:"diagnostico"`
	SesionesPlanificadas int              `json:"sesiones_planificadas"`
	ZonasJSON            *Zones           `json:"zonas_json,omitempty"`
	ProtocoloJSON        *Protocol        `json:"protocolo_json,omitempty"`
	EjerciciosJSON       *ExercisePlan    `json:"ejercicios_json,omitempty"`
	ValorSesion          *upstream.Number `json:"valor_sesion,omitempty"`
	ValorPaquete         *upstream.Number `json:"valor_paquete,omitempty"`
	CreatedAt            *string          `json:"created_at,omitempty"`

	SesionesRealizadas int                  `json:"sesiones_realizadas"`
	SesionesPendientes int                  `json:"sesiones_pendientes"`
	ValorTotal         *upstream.Number     `json:"valor_total,omitempty"`
	TotalAbonado       *upstream.Number     `json:"total_abonado,omitempty"`
	Saldo              *upstream.Number     `json:"saldo,omitempty"`
	EstadoPago         string               `json:"estado_pago,omitempty"`
	UltimasSesiones    []*treatment.Session `json:"ultimas_sesiones,omitempty"`

	Progreso *display.Progress `json:"progreso,omitempty"`
}

// Derive fills the locally computed fields. The backend's own numbers win
// when present; only gaps are filled.
func (c *Consultation) Derive() {
	if len(c.Fecha) > 10 {
		c.Fecha = c.Fecha[:10]
	}
	p := display.SessionProgress(c.SesionesPlanificadas, c.SesionesRealizadas)
	c.Progreso = &p
	if c.SesionesPendientes == 0 {
		c.SesionesPendientes = p.Pending
	}
	if c.EstadoPago == "" && c.Saldo != nil {
		c.EstadoPago = display.PaymentStatus(c.Saldo.Float())
	}
}

// Form is the raw consultation form as typed. The money inputs stay strings
// so "20,50" and blank survive until validation, and Otros is the free-text
// comma separated list from the protocol card.
type Form struct {
	PatientID            int      `json:"patient_id"`
	Fecha                string   `json:"fecha"`
	MotivoConsulta       string   `json:"motivo_consulta"`
	Diagnostico          string   `json:"diagnostico"`
	SesionesPlanificadas int      `json:"sesiones_planificadas"`
	Zonas                []string `json:"zonas"`
	Tecnicas             []string `json:"tecnicas"`
	Otros                string   `json:"otros"`
	RealizoEjercicios    bool     `json:"realizo_ejercicios"`
	TiposEjercicios      []string `json:"tipos_ejercicios"`
	ValorSesion          string   `json:"valor_sesion"`
	ValorPaquete         string   `json:"valor_paquete"`
}

type parsed struct {
	fecha        string
	valorSesion  *float64
	valorPaquete *float64
}

func (f *Form) validate(now time.Time, requirePatient bool) (*parsed, form.Errors) {
	errs := form.Errors{}

	if requirePatient && f.PatientID <= 0 {
		errs.Add("patient_id", "Falta el paciente de la consulta.")
	}
	if strings.TrimSpace(f.MotivoConsulta) == "" {
		errs.Add("motivo_consulta", "Ingrese el motivo de consulta.")
	}
	if strings.TrimSpace(f.Diagnostico) == "" {
		errs.Add("diagnostico", "Ingrese el diagnóstico.")
	}

	fecha := f.Fecha
	if fecha == "" {
		fecha = now.Format(form.DateLayout)
	} else if msg := form.ValidateDate(fecha); msg != "" {
		errs.Add("fecha", msg)
	}

	return &parsed{
		fecha:        fecha,
		valorSesion:  form.ParseMoney(f.ValorSesion),
		valorPaquete: form.ParseMoney(f.ValorPaquete),
	}, errs
}

// splitOthers turns the free-text list into trimmed non-empty entries.
func splitOthers(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// CreatePayload is the create body. The money fields are omitted entirely
// when the inputs were blank.
type CreatePayload struct {
	PatientID            int          `json:"patient_id"`
	Fecha                string       `json:"fecha"`
	MotivoConsulta       string       `json:"motivo_consulta"`
	Diagnostico          string       `json:"diagnostico"`
	SesionesPlanificadas int          `json:"sesiones_planificadas"`
	ZonasJSON            Zones        `json:"zonas_json"`
	ProtocoloJSON        Protocol     `json:"protocolo_json"`
	EjerciciosJSON       ExercisePlan `json:"ejercicios_json"`
	ValorSesion          *float64     `json:"valor_sesion,omitempty"`
	ValorPaquete         *float64     `json:"valor_paquete,omitempty"`
}

// UpdatePayload is the update body. Blank money inputs become explicit
// nulls, clearing any previously stored value.
type UpdatePayload struct {
	Fecha                string       `json:"fecha"`
	MotivoConsulta       string       `json:"motivo_consulta"`
	Diagnostico          string       `json:"diagnostico"`
	SesionesPlanificadas int          `json:"sesiones_planificadas"`
	ZonasJSON            Zones        `json:"zonas_json"`
	ProtocoloJSON        Protocol     `json:"protocolo_json"`
	EjerciciosJSON       ExercisePlan `json:"ejercicios_json"`
	ValorSesion          *float64     `json:"valor_sesion"`
	ValorPaquete         *float64     `json:"valor_paquete"`
}

func (f *Form) zones() Zones {
	z := f.Zonas
	if z == nil {
		z = []string{}
	}
	return Zones{Seleccion: z}
}

func (f *Form) protocol() Protocol {
	t := f.Tecnicas
	if t == nil {
		t = []string{}
	}
	return Protocol{Tecnicas: t, Otros: splitOthers(f.Otros)}
}

func (f *Form) exercises() ExercisePlan {
	t := f.TiposEjercicios
	if t == nil {
		t = []string{}
	}
	return ExercisePlan{Realizo: upstream.Bool(f.RealizoEjercicios), Tipos: t}
}

func (f *Form) createPayload(p *parsed) *CreatePayload {
	return &CreatePayload{
		PatientID:            f.PatientID,
		Fecha:                p.fecha,
		MotivoConsulta:       strings.TrimSpace(f.MotivoConsulta),
		Diagnostico:          strings.TrimSpace(f.Diagnostico),
		SesionesPlanificadas: maxInt(f.SesionesPlanificadas, 0),
		ZonasJSON:            f.zones(),
		ProtocoloJSON:        f.protocol(),
		EjerciciosJSON:       f.exercises(),
		ValorSesion:          p.valorSesion,
		ValorPaquete:         p.valorPaquete,
	}
}

func (f *Form) updatePayload(p *parsed) *UpdatePayload {
	return &UpdatePayload{
		Fecha:                p.fecha,
		MotivoConsulta:       strings.TrimSpace(f.MotivoConsulta),
		Diagnostico:          strings.TrimSpace(f.Diagnostico),
		SesionesPlanificadas: maxInt(f.SesionesPlanificadas, 0),
		ZonasJSON:            f.zones(),
		ProtocoloJSON:        f.protocol(),
		EjerciciosJSON:       f.exercises(),
		ValorSesion:          p.valorSesion,
		ValorPaquete:         p.valorPaquete,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// The upstream wraps single consultations either as {consultation: ...} or
// bare; decodeConsultation probes both.
func decodeConsultation(raw json.RawMessage) (*Consultation, error) {
	var envelope struct {
		Consultation json.RawMessage `json:"consultation"`
		Data         json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, inner := range []json.RawMessage{envelope.Consultation, envelope.Data} {
			if len(inner) > 0 && string(inner) != "null" {
				raw = inner
				break
			}
		}
	}
	var c Consultation
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func decodeConsultationList(raw json.RawMessage) ([]*Consultation, error) {
	var envelope struct {
		Consultations []*Consultation `json:"consultations"`
		Items         []*Consultation `json:"items"`
		Data          []*Consultation `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		switch {
		case envelope.Consultations != nil:
			return envelope.Consultations, nil
		case envelope.Items != nil:
			return envelope.Items, nil
		case envelope.Data != nil:
			return envelope.Data, nil
		}
	}
	var list []*Consultation
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	return []*Consultation{}, nil
}
