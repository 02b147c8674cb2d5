package form

import (
	"strings"
	"testing"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"0102030405", "0102030405"},
		{"09-9999.9999", "0999999999"},
		{"abc", ""},
		{"a1b2c3", "123"},
		{" +593 99 123 4567 ", "593991234567"},
	}
	for _, tt := range tests {
		if got := DigitsOnly(tt.in); got != tt.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDigitsOnly_PreservesOrderAndCharset(t *testing.T) {
	got := DigitsOnly("z9y8x7w6v5u4t3s2r1q0")
	if got != "9876543210" {
		t.Errorf("DigitsOnly = %q, want 9876543210", got)
	}
	for _, r := range got {
		if r < '0' || r > '9' {
			t.Errorf("DigitsOnly produced non-digit %q", r)
		}
	}
}

func TestDigitsOnlyMax(t *testing.T) {
	if got := DigitsOnlyMax("123456789012345", 10); got != "1234567890" {
		t.Errorf("DigitsOnlyMax = %q, want 1234567890", got)
	}
	if got := DigitsOnlyMax("12a3", 10); got != "123" {
		t.Errorf("DigitsOnlyMax = %q, want 123", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Ana   María  ", "Ana María"},
		{"Ruiz", "Ruiz"},
		{"\tAna\nMaría ", "Ana María"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmptyToNull(t *testing.T) {
	if got := EmptyToNull("   "); got != nil {
		t.Errorf("EmptyToNull(blank) = %v, want nil", *got)
	}
	if got := EmptyToNull(""); got != nil {
		t.Errorf("EmptyToNull(empty) = %v, want nil", *got)
	}
	got := EmptyToNull("  sector norte ")
	if got == nil || *got != "sector norte" {
		t.Errorf("EmptyToNull = %v, want \"sector norte\"", got)
	}
}

func TestParseMoney(t *testing.T) {
	if got := ParseMoney("20,50"); got == nil || *got != 20.5 {
		t.Errorf("ParseMoney(\"20,50\") = %v, want 20.5", got)
	}
	if got := ParseMoney("20.50"); got == nil || *got != 20.5 {
		t.Errorf("ParseMoney(\"20.50\") = %v, want 20.5", got)
	}
	if got := ParseMoney(""); got != nil {
		t.Errorf("ParseMoney(\"\") = %v, want nil", *got)
	}
	if got := ParseMoney("   "); got != nil {
		t.Errorf("ParseMoney(blank) = %v, want nil", *got)
	}
	if got := ParseMoney("abc"); got != nil {
		t.Errorf("ParseMoney(\"abc\") = %v, want nil", *got)
	}
	if got := ParseMoney("0"); got == nil || *got != 0 {
		t.Errorf("ParseMoney(\"0\") = %v, want 0", got)
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"efectivo", "Efectivo"},
		{"EFECTIVO", "Efectivo"},
		{" Transferencia ", "Transferencia"},
		{"tarjeta de crédito", "Tarjeta de Crédito"},
		{"de una", "De Una"},
		{"payphone", "Payphone"},
		{"bitcoin", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePaymentMethod(tt.in); got != tt.want {
			t.Errorf("NormalizePaymentMethod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePaymentMethod_CoversCanonicalSet(t *testing.T) {
	for _, m := range PaymentMethods {
		if got := NormalizePaymentMethod(strings.ToUpper(m)); got != m {
			t.Errorf("NormalizePaymentMethod(%q) = %q, want %q", strings.ToUpper(m), got, m)
		}
	}
}
