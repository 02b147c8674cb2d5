package therapist

import (
	"encoding/json"
	"strings"

	"github.com/fisiodesk/fisiodesk/internal/form"
	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

// Therapist is a staff account. Activo arrives as a boolean, a 1/0 integer
// or a "1"/"0" string depending on the backend version.
type Therapist struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Telefono  *string       `json:"telefono,omitempty"`
	Activo    upstream.Bool `json:"activo"`
	CreatedAt *string       `json:"created_at,omitempty"`
}

// The upstream wraps single therapists as therapist, user or data before
// assuming a bare record.
func decodeTherapist(raw json.RawMessage) (*Therapist, error) {
	var envelope struct {
		Therapist json.RawMessage `json:"therapist"`
		User      json.RawMessage `json:"user"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, inner := range []json.RawMessage{envelope.Therapist, envelope.User, envelope.Data} {
			if len(inner) > 0 && string(inner) != "null" {
				raw = inner
				break
			}
		}
	}
	var t Therapist
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListResult is one page of therapists.
type ListResult struct {
	Items    []*Therapist `json:"items"`
	Page     int          `json:"page"`
	LastPage int          `json:"last_page"`
	Total    int          `json:"total"`
}

type listEnvelope struct {
	Data []*Therapist `json:"data"`

	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`

	Meta *struct {
		CurrentPage int `json:"current_page"`
		LastPage    int `json:"last_page"`
		Total       int `json:"total"`
	} `json:"meta"`
}

func (e *listEnvelope) result() *ListResult {
	r := &ListResult{
		Items:    e.Data,
		Page:     e.CurrentPage,
		LastPage: e.LastPage,
		Total:    e.Total,
	}
	if e.Meta != nil {
		r.Page = e.Meta.CurrentPage
		r.LastPage = e.Meta.LastPage
		r.Total = e.Meta.Total
	}
	if r.Items == nil {
		r.Items = []*Therapist{}
	}
	if r.Page == 0 {
		r.Page = 1
	}
	if r.LastPage == 0 {
		r.LastPage = 1
	}
	return r
}

// CreateForm is the new-account form as typed.
type CreateForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Telefono        string `json:"telefono"`
	Activo          bool   `json:"activo"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (f *CreateForm) Validate() form.Errors {
	errs := form.Errors{}

	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "Ingrese el nombre.")
	}
	if msg := form.ValidateEmail(f.Email); msg != "" {
		errs.Add("email", msg)
	}
	if msg := form.ValidatePhone(f.Telefono); msg != "" {
		errs.Add("telefono", msg)
	}
	if strings.TrimSpace(f.Password) == "" {
		errs.Add("password", "Ingrese una contraseña.")
	} else if msg := form.ValidatePasswordConfirm(f.Password, f.PasswordConfirm); msg != "" {
		errs.Add("password_confirm", msg)
	}

	return errs
}

// CreatePayload is the create body. Telefono is only sent when present and
// Activo travels as 1/0.
type CreatePayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Telefono string `json:"telefono,omitempty"`
	Activo   *int   `json:"activo,omitempty"`
}

func activoFlag(b bool) *int {
	v := 0
	if b {
		v = 1
	}
	return &v
}

func (f *CreateForm) Payload() *CreatePayload {
	return &CreatePayload{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Password: strings.TrimSpace(f.Password),
		Telefono: form.DigitsOnlyMax(f.Telefono, 10),
		Activo:   activoFlag(f.Activo),
	}
}

// UpdateForm is the edit form. A blank password keeps the current one.
type UpdateForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Telefono        string `json:"telefono"`
	Activo          bool   `json:"activo"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (f *UpdateForm) Validate() form.Errors {
	errs := form.Errors{}

	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "Ingrese el nombre.")
	}
	if msg := form.ValidateEmail(f.Email); msg != "" {
		errs.Add("email", msg)
	}
	if msg := form.ValidatePhone(f.Telefono); msg != "" {
		errs.Add("telefono", msg)
	}
	if msg := form.ValidatePasswordConfirm(f.Password, f.PasswordConfirm); msg != "" {
		errs.Add("password_confirm", msg)
	}

	return errs
}

// UpdatePayload is the update body. Password is omitted when blank so the
// backend keeps the current one; Telefono becomes an explicit null.
type UpdatePayload struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
	Telefono *string `json:"telefono"`
	Activo   *int    `json:"activo"`
}

func (f *UpdateForm) Payload() *UpdatePayload {
	p := &UpdatePayload{
		Name:   strings.TrimSpace(f.Name),
		Email:  strings.TrimSpace(f.Email),
		Activo: activoFlag(f.Activo),
	}
	if v := strings.TrimSpace(f.Password); v != "" {
		p.Password = &v
	}
	if v := form.DigitsOnlyMax(f.Telefono, 10); v != "" {
		p.Telefono = &v
	}
	return p
}
