package patient

import (
	"encoding/json"
	"time"

	"github.com/fisiodesk/fisiodesk/internal/display"
	"github.com/fisiodesk/fisiodesk/internal/domain/consultation"
	"github.com/fisiodesk/fisiodesk/internal/form"
)

// Patient mirrors the upstream patient record. All fields besides the names
// are optional; absent values are JSON null on the wire.
type Patient struct {
	ID              int     `json:"id"`
	Identificacion  *string `json:"identificacion,omitempty"`
	Nombres         string  `json:"nombres"`
	Apellidos       string  `json:"apellidos"`
	FechaNacimiento *string `json:"fecha_nacimiento,omitempty"`
	Celular         *string `json:"celular,omitempty"`
	Sector          *string `json:"sector,omitempty"`
	Antecedentes    *string `json:"antecedentes,omitempty"`
	Alergias        *string `json:"alergias,omitempty"`
	Actividad       *string `json:"actividad,omitempty"`
	Canal           *string `json:"canal,omitempty"`
	CreatedAt       *string `json:"created_at,omitempty"`
	UpdatedAt       *string `json:"updated_at,omitempty"`

	// Edad is derived locally for display; it is never sent upstream.
	Edad *int `json:"edad,omitempty"`
}

// DisplayName resolves the patient's name through the shared fallback chain.
func (p *Patient) DisplayName() string {
	return display.Name(display.NameParts{Nombres: p.Nombres, Apellidos: p.Apellidos})
}

// deriveAge fills Edad from the birth date, when one is present.
func (p *Patient) deriveAge(now time.Time) {
	if p.FechaNacimiento != nil {
		p.Edad = display.Age(*p.FechaNacimiento, now)
	}
}

// Form is the raw patient form exactly as typed on the screen.
type Form struct {
	Identificacion  string `json:"identificacion"`
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Celular         string `json:"celular"`
	Sector          string `json:"sector"`
	Antecedentes    string `json:"antecedentes"`
	Alergias        string `json:"alergias"`
	Actividad       string `json:"actividad"`
	Canal           string `json:"canal"`
}

// Validate returns the field-keyed error map for the form.
func (f *Form) Validate(now time.Time) form.Errors {
	errs := form.Errors{}

	if msg := form.ValidateIdentification(f.Identificacion); msg != "" {
		errs.Add("identificacion", msg)
	}
	if msg := form.ValidateName(f.Nombres, "Ingrese nombres."); msg != "" {
		errs.Add("nombres", msg)
	}
	if msg := form.ValidateName(f.Apellidos, "Ingrese apellidos."); msg != "" {
		errs.Add("apellidos", msg)
	}
	if msg := form.ValidatePhone(f.Celular); msg != "" {
		errs.Add("celular", msg)
	}
	if msg := form.ValidateBirthDate(f.FechaNacimiento, now); msg != "" {
		errs.Add("fecha_nacimiento", msg)
	}

	return errs
}

// Payload is the normalized JSON body sent upstream. Optional fields are
// serialized as explicit nulls, never as empty strings.
type Payload struct {
	Identificacion  *string `json:"identificacion"`
	Nombres         string  `json:"nombres"`
	Apellidos       string  `json:"apellidos"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Celular         *string `json:"celular"`
	Sector          *string `json:"sector"`
	Antecedentes    *string `json:"antecedentes"`
	Alergias        *string `json:"alergias"`
	Actividad       *string `json:"actividad"`
	Canal           *string `json:"canal"`
}

// Payload normalizes the form for submission.
func (f *Form) Payload() *Payload {
	p := &Payload{
		Nombres:         form.CollapseWhitespace(f.Nombres),
		Apellidos:       form.CollapseWhitespace(f.Apellidos),
		FechaNacimiento: form.EmptyToNull(f.FechaNacimiento),
		Sector:          form.EmptyToNull(f.Sector),
		Antecedentes:    form.EmptyToNull(f.Antecedentes),
		Alergias:        form.EmptyToNull(f.Alergias),
		Actividad:       form.EmptyToNull(f.Actividad),
		Canal:           form.EmptyToNull(f.Canal),
	}
	if v := form.DigitsOnlyMax(f.Identificacion, 10); v != "" {
		p.Identificacion = &v
	}
	if v := form.DigitsOnlyMax(f.Celular, 10); v != "" {
		p.Celular = &v
	}
	return p
}

// ListResult is one page of patients.
type ListResult struct {
	Items    []*Patient `json:"items"`
	Page     int        `json:"page"`
	LastPage int        `json:"last_page"`
	Total    int        `json:"total"`
}

// History is a patient with their full consultation history.
type History struct {
	Patient       *Patient                     `json:"patient"`
	Consultations []*consultation.Consultation `json:"consultations"`
}

// The upstream has wrapped single patients in several envelope shapes over
// time; decodePatient probes them in order before assuming a bare record.
func decodePatient(raw json.RawMessage) (*Patient, error) {
	var envelope struct {
		Patient *Patient        `json:"patient"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Patient != nil {
			return envelope.Patient, nil
		}
		if len(envelope.Data) > 0 {
			var inner struct {
				Patient *Patient `json:"patient"`
			}
			if err := json.Unmarshal(envelope.Data, &inner); err == nil && inner.Patient != nil {
				return inner.Patient, nil
			}
			var p Patient
			if err := json.Unmarshal(envelope.Data, &p); err == nil && p.ID != 0 {
				return &p, nil
			}
		}
	}
	var p Patient
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
