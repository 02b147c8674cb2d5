// Package form holds the input normalizers and field validators shared by
// every screen of the admin gateway. All functions are pure: they take the raw
// string a user typed and either clean it up for submission or report a
// human-readable problem with it.
package form

import (
	"math"
	"strconv"
	"strings"
)

// PaymentMethods is the canonical set of payment method labels accepted by
// the upstream backend. Free-form input is matched against it
// case-insensitively; anything else is treated as "no method".
var PaymentMethods = []string{
	"Transferencia",
	"Efectivo",
	"Tarjeta de Crédito",
	"De Una",
	"Payphone",
}

// DigitsOnly removes every non-digit character from s, preserving the
// relative order of the digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DigitsOnlyMax is DigitsOnly capped at max characters. Identification and
// phone inputs use it with max=10.
func DigitsOnlyMax(s string, max int) string {
	d := DigitsOnly(s)
	if len(d) > max {
		return d[:max]
	}
	return d
}

// CollapseWhitespace trims s and collapses internal whitespace runs to a
// single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EmptyToNull maps a blank or whitespace-only string to nil so that optional
// upstream fields are serialized as JSON null instead of empty strings.
func EmptyToNull(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// ParseMoney parses a money string, accepting either a comma or a dot as the
// decimal separator. Blank or non-numeric input yields nil rather than an
// error so callers can treat it as an absent value.
func ParseMoney(s string) *float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if cleaned == "" {
		return nil
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil
	}
	return &n
}

// NormalizePaymentMethod matches free-form input against PaymentMethods,
// ignoring case and surrounding whitespace. It returns the canonical label,
// or "" when the input matches nothing.
func NormalizePaymentMethod(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	for _, m := range PaymentMethods {
		if strings.EqualFold(m, v) {
			return m
		}
	}
	return ""
}
