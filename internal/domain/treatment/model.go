package treatment

import (
	"encoding/json"
	"time"

	"github.com/fisiodesk/fisiodesk/internal/form"
	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

// Session is one treatment session of a consultation. EVA is the patient's
// 0-10 pain score for that visit; Abono is the amount paid toward the
// consultation that day.
type Session struct {
	ID             int              `json:"id"`
	ConsultationID int              `json:"consultation_id"`
	Fecha          string           `json:"fecha"`
	EVA            *upstream.Number `json:"eva,omitempty"`
	Abono          *upstream.Number `json:"abono,omitempty"`
	Observaciones  *string          `json:"observaciones,omitempty"`
	MetodoPago     *string          `json:"metodo_pago,omitempty"`
	ReferenciaPago *string          `json:"referencia_pago,omitempty"`
	TherapistID    *int             `json:"therapist_id,omitempty"`
	CreatedAt      *string          `json:"created_at,omitempty"`
}

// wireSession accepts the alternate key spellings older backend versions used
// before settling on snake_case.
type wireSession struct {
	Session
	Date             string `json:"date"`
	ConsultationIDCC *int   `json:"consultationId"`
	MetodoPagoCC     string `json:"metodoPago"`
	ReferenciaPagoCC string `json:"referenciaPago"`
}

func (w *wireSession) normalize() *Session {
	s := w.Session
	if s.Fecha == "" {
		s.Fecha = w.Date
	}
	if len(s.Fecha) > 10 {
		s.Fecha = s.Fecha[:10]
	}
	if s.ConsultationID == 0 && w.ConsultationIDCC != nil {
		s.ConsultationID = *w.ConsultationIDCC
	}
	if s.MetodoPago == nil && w.MetodoPagoCC != "" {
		v := form.NormalizePaymentMethod(w.MetodoPagoCC)
		if v != "" {
			s.MetodoPago = &v
		}
	}
	if s.MetodoPago != nil {
		if v := form.NormalizePaymentMethod(*s.MetodoPago); v != "" {
			s.MetodoPago = &v
		}
	}
	if s.ReferenciaPago == nil && w.ReferenciaPagoCC != "" {
		v := w.ReferenciaPagoCC
		s.ReferenciaPago = &v
	}
	return &s
}

// The upstream wraps single sessions in several envelope shapes; decodeSession
// probes session, treatment_session and data before assuming a bare record.
func decodeSession(raw json.RawMessage) (*Session, error) {
	var envelope struct {
		Session          json.RawMessage `json:"session"`
		TreatmentSession json.RawMessage `json:"treatment_session"`
		Data             json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, inner := range []json.RawMessage{envelope.Session, envelope.TreatmentSession, envelope.Data} {
			if len(inner) > 0 && string(inner) != "null" {
				raw = inner
				break
			}
		}
	}

	var w wireSession
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w.normalize(), nil
}

func decodeSessionList(raw json.RawMessage) ([]*Session, error) {
	var envelope struct {
		Sessions []json.RawMessage `json:"sessions"`
		Items    []json.RawMessage `json:"items"`
		Data     []json.RawMessage `json:"data"`
	}
	items := []json.RawMessage{}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		switch {
		case envelope.Sessions != nil:
			items = envelope.Sessions
		case envelope.Items != nil:
			items = envelope.Items
		case envelope.Data != nil:
			items = envelope.Data
		}
	} else if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	sessions := make([]*Session, 0, len(items))
	for _, item := range items {
		s, err := decodeSession(item)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// Form is the raw session form as typed. EVA and Abono stay strings here so
// "7,5" and blank inputs survive until validation.
type Form struct {
	ConsultationID int    `json:"consultation_id"`
	Fecha          string `json:"fecha"`
	EVA            string `json:"eva"`
	Observaciones  string `json:"observaciones"`
	Abono          string `json:"abono"`
	MetodoPago     string `json:"metodo_pago"`
	ReferenciaPago string `json:"referencia_pago"`
	TherapistID    int    `json:"therapist_id"`
}

// parsed holds the form after numeric parsing, shared by create and update.
type parsed struct {
	fecha  string
	eva    *float64
	abono  *float64
	metodo string
}

func (f *Form) validate(now time.Time, requireConsultation bool) (*parsed, form.Errors) {
	errs := form.Errors{}

	if requireConsultation && f.ConsultationID <= 0 {
		errs.Add("consultation_id", "No se puede registrar la sesión sin consulta.")
	}

	fecha := f.Fecha
	if fecha == "" {
		fecha = now.Format(form.DateLayout)
	} else if msg := form.ValidateDate(fecha); msg != "" {
		errs.Add("fecha", msg)
	}

	eva := form.ParseMoney(f.EVA)
	if msg := form.ValidateEVA(eva); msg != "" {
		errs.Add("eva", msg)
	}

	abono := form.ParseMoney(f.Abono)
	if msg := form.ValidateAmount(abono); msg != "" {
		errs.Add("abono", msg)
	}
	if msg := form.ValidatePaymentMethod(abono, f.MetodoPago); msg != "" {
		errs.Add("metodo_pago", msg)
	}

	return &parsed{
		fecha:  fecha,
		eva:    eva,
		abono:  abono,
		metodo: form.NormalizePaymentMethod(f.MetodoPago),
	}, errs
}

// CreatePayload is the create body. EVA and Abono are omitted entirely when
// the inputs were blank, so the backend applies its own defaults.
type CreatePayload struct {
	ConsultationID int      `json:"consultation_id"`
	Fecha          string   `json:"fecha"`
	EVA            *float64 `json:"eva,omitempty"`
	Abono          *float64 `json:"abono,omitempty"`
	Observaciones  *string  `json:"observaciones"`
	MetodoPago     *string  `json:"metodo_pago"`
	ReferenciaPago *string  `json:"referencia_pago"`
	TherapistID    int      `json:"therapist_id,omitempty"`
}

// UpdatePayload is the update body. Here blank EVA and Abono become explicit
// nulls, clearing any previously stored value.
type UpdatePayload struct {
	Fecha          string   `json:"fecha"`
	EVA            *float64 `json:"eva"`
	Abono          *float64 `json:"abono"`
	Observaciones  *string  `json:"observaciones"`
	MetodoPago     *string  `json:"metodo_pago"`
	ReferenciaPago *string  `json:"referencia_pago"`
}

func (f *Form) createPayload(p *parsed) *CreatePayload {
	return &CreatePayload{
		ConsultationID: f.ConsultationID,
		Fecha:          p.fecha,
		EVA:            p.eva,
		Abono:          p.abono,
		Observaciones:  form.EmptyToNull(f.Observaciones),
		MetodoPago:     form.EmptyToNull(p.metodo),
		ReferenciaPago: form.EmptyToNull(f.ReferenciaPago),
		TherapistID:    f.TherapistID,
	}
}

func (f *Form) updatePayload(p *parsed) *UpdatePayload {
	return &UpdatePayload{
		Fecha:          p.fecha,
		EVA:            p.eva,
		Abono:          p.abono,
		Observaciones:  form.EmptyToNull(f.Observaciones),
		MetodoPago:     form.EmptyToNull(p.metodo),
		ReferenciaPago: form.EmptyToNull(f.ReferenciaPago),
	}
}
