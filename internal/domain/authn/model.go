package authn

import (
	"encoding/json"
	"strings"

	"github.com/fisiodesk/fisiodesk/internal/display"
	"github.com/fisiodesk/fisiodesk/internal/form"
)

// Credentials is the sign-in form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

func (c *Credentials) Validate() form.Errors {
	errs := form.Errors{}
	if msg := form.ValidateEmail(c.Email); msg != "" {
		errs.Add("email", msg)
	}
	if strings.TrimSpace(c.Password) == "" {
		errs.Add("password", "Ingrese su contraseña.")
	}
	return errs
}

// User is the signed-in account. Some backend versions expose a single name
// field, others the split nombres/apellidos pair.
type User struct {
	ID        int     `json:"id"`
	Name      string  `json:"name,omitempty"`
	Nombres   string  `json:"nombres,omitempty"`
	Apellidos string  `json:"apellidos,omitempty"`
	Email     string  `json:"email"`
	CreatedAt *string `json:"created_at,omitempty"`
}

// DisplayName resolves the account's name through the shared fallback chain.
func (u *User) DisplayName() string {
	return display.Name(display.NameParts{
		Name:      u.Name,
		Nombres:   u.Nombres,
		Apellidos: u.Apellidos,
		Email:     u.Email,
	})
}

// decodeUser probes the {user: ...} envelope before assuming a bare record.
func decodeUser(raw json.RawMessage) (*User, error) {
	var envelope struct {
		User *User `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.User != nil {
		return envelope.User, nil
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
