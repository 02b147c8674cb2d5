// Package display computes the derived values screens render next to raw
// backend data: ages, display names, session progress and payment status.
// Nothing here is business logic; the upstream backend stays authoritative.
package display

import (
	"strings"
	"time"

	"github.com/fisiodesk/fisiodesk/internal/form"
)

// NamePlaceholder is rendered when no name variant is available at all.
const NamePlaceholder = "Usuario"

// NameParts holds the field variants the upstream backend has used for a
// person's name across endpoints.
type NameParts struct {
	Name      string
	Nombres   string
	Apellidos string
	Email     string
}

// Name resolves a display name by trying an explicit ordered list of sources:
// the combined name field, then given+family names joined, then the email,
// then NamePlaceholder. The chain exists because the upstream has used
// inconsistent field names across endpoints.
func Name(p NameParts) string {
	sources := []func() string{
		func() string { return strings.TrimSpace(p.Name) },
		func() string { return form.CollapseWhitespace(p.Nombres + " " + p.Apellidos) },
		func() string { return strings.TrimSpace(p.Email) },
	}
	for _, source := range sources {
		if v := source(); v != "" {
			return v
		}
	}
	return NamePlaceholder
}

// Age returns the whole years elapsed between a YYYY-MM-DD birth date and
// today, decrementing by one when today's month/day precedes the birth
// month/day. Missing or unparseable input yields nil.
func Age(birthDate string, today time.Time) *int {
	s := strings.TrimSpace(birthDate)
	if len(s) > len(form.DateLayout) {
		s = s[:len(form.DateLayout)]
	}
	d, err := time.Parse(form.DateLayout, s)
	if err != nil {
		return nil
	}
	years := today.Year() - d.Year()
	if today.Month() < d.Month() || (today.Month() == d.Month() && today.Day() < d.Day()) {
		years--
	}
	return &years
}

// Progress summarizes how far along a consultation's session plan is.
type Progress struct {
	Pending int     `json:"pending"`
	Percent float64 `json:"percent"`
}

// SessionProgress derives the pending session count (floored at zero) and the
// completion percentage. A zero or absent plan yields 0% rather than a
// division by zero.
func SessionProgress(planned, completed int) Progress {
	pending := planned - completed
	if pending < 0 {
		pending = 0
	}
	var percent float64
	if planned > 0 {
		percent = float64(completed) / float64(planned) * 100
	}
	return Progress{Pending: pending, Percent: percent}
}

// Payment status labels shown next to a consultation's balance.
const (
	PaymentSettled     = "Pagado"
	PaymentOutstanding = "Pendiente"
)

// PaymentStatus classifies a balance due: settled when nothing is owed,
// outstanding otherwise. It drives conditional styling only.
func PaymentStatus(balanceDue float64) string {
	if balanceDue <= 0 {
		return PaymentSettled
	}
	return PaymentOutstanding
}
