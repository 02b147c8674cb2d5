package form

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var (
	lettersRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜáéíóúüÑñ\s]+$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Errors collects validation messages keyed by field name. A screen blocks
// submission while the map is non-empty.
type Errors map[string]string

// Add records a message for field, keeping the first message when a field is
// reported more than once.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Check records msg for field when ok is false.
func (e Errors) Check(ok bool, field, msg string) {
	if !ok {
		e.Add(field, msg)
	}
}

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool { return len(e) == 0 }

// ValidationError carries a field-keyed error map out of a service so the
// handler can answer 422 without anything having been sent upstream.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	b, _ := json.Marshal(e.Fields)
	return fmt.Sprintf("validation failed: %s", b)
}

// NewValidationError wraps a non-empty error map.
func NewValidationError(fields Errors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// LettersOnly reports whether s contains only letters and spaces, accepting
// accented Latin characters and Ñ.
func LettersOnly(s string) bool { return lettersRe.MatchString(s) }

// ValidEmail reports whether s has a basic local@domain.tld shape.
func ValidEmail(s string) bool { return emailRe.MatchString(strings.TrimSpace(s)) }

// ValidateIdentification checks an optional identification number: when
// present it must normalize to exactly 10 digits. Returns "" when valid.
func ValidateIdentification(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if len(DigitsOnly(s)) != 10 {
		return "La cédula debe tener 10 dígitos."
	}
	return ""
}

// ValidatePhone checks an optional phone number: when present it must
// normalize to exactly 10 digits.
func ValidatePhone(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if len(DigitsOnly(s)) != 10 {
		return "El celular debe tener 10 dígitos."
	}
	return ""
}

// ValidateName checks a required name field: non-empty after whitespace
// collapsing and letters/spaces only.
func ValidateName(s, requiredMsg string) string {
	v := CollapseWhitespace(s)
	if v == "" {
		return requiredMsg
	}
	if !LettersOnly(v) {
		return "Solo letras y espacios."
	}
	return ""
}

// ValidateBirthDate checks an optional YYYY-MM-DD birth date: it must parse
// and must not be later than now's calendar date.
func ValidateBirthDate(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return "Fecha inválida."
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return "La fecha no puede ser futura."
	}
	return ""
}

// ValidateDate checks an optional YYYY-MM-DD date for parseability only.
func ValidateDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "Fecha inválida."
	}
	return ""
}

// ValidateEVA checks an optional pain score: inclusive range 0–10.
func ValidateEVA(v *float64) string {
	if v == nil {
		return ""
	}
	if *v < 0 || *v > 10 {
		return "EVA debe estar entre 0 y 10."
	}
	return ""
}

// ValidateAmount checks an optional payment amount: must not be negative.
func ValidateAmount(v *float64) string {
	if v == nil {
		return ""
	}
	if *v < 0 {
		return "El abono no puede ser negativo."
	}
	return ""
}

// ValidatePaymentMethod enforces the payment rule: a method is required
// exactly when a positive amount is present. The method must already be
// canonical (see NormalizePaymentMethod); an unmatched method counts as none.
func ValidatePaymentMethod(amount *float64, method string) string {
	if amount != nil && *amount > 0 && NormalizePaymentMethod(method) == "" {
		return "Seleccione un método de pago."
	}
	return ""
}

// ValidateEmail checks a required email field.
func ValidateEmail(s string) string {
	if !ValidEmail(s) {
		return "Ingrese un email válido."
	}
	return ""
}

// ValidatePasswordConfirm checks that the confirmation equals the password
// when either is provided.
func ValidatePasswordConfirm(password, confirm string) string {
	if password == "" && confirm == "" {
		return ""
	}
	if password != confirm {
		return "Las contraseñas no coinciden."
	}
	return ""
}
