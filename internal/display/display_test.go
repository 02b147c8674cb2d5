package display

import (
	"testing"
	"time"
)

func TestName_FallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		in   NameParts
		want string
	}{
		{"combined wins", NameParts{Name: "Dra. Paula Vera", Nombres: "Paula", Apellidos: "Vera", Email: "p@v.ec"}, "Dra. Paula Vera"},
		{"given+family joined", NameParts{Nombres: "Ana María", Apellidos: "Ruiz"}, "Ana María Ruiz"},
		{"given only", NameParts{Nombres: "Ana"}, "Ana"},
		{"email fallback", NameParts{Email: "ana@clinica.com"}, "ana@clinica.com"},
		{"placeholder", NameParts{}, NamePlaceholder},
		{"blank fields skipped", NameParts{Name: "   ", Nombres: " ", Apellidos: "", Email: "x@y.co"}, "x@y.co"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAge(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		birth string
		want  int
	}{
		{"1990-08-31", 36}, // birthday today
		{"1990-09-01", 35}, // birthday tomorrow
		{"1990-08-30", 36}, // birthday yesterday
		{"2026-01-15", 0},
		{"1990-12-25T00:00:00Z", 35}, // full timestamps are tolerated
	}
	for _, tt := range tests {
		got := Age(tt.birth, today)
		if got == nil {
			t.Errorf("Age(%q) = nil, want %d", tt.birth, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("Age(%q) = %d, want %d", tt.birth, *got, tt.want)
		}
	}

	for _, bad := range []string{"", "   ", "not-a-date", "31/08/1990"} {
		if got := Age(bad, today); got != nil {
			t.Errorf("Age(%q) = %d, want nil", bad, *got)
		}
	}
}

// Age must be non-decreasing as the birth date moves earlier.
func TestAge_MonotonicInBirthDate(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	prev := -1
	for year := 2026; year >= 1930; year -= 7 {
		birth := time.Date(year, 3, 14, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		got := Age(birth, today)
		if got == nil {
			t.Fatalf("Age(%q) = nil", birth)
		}
		if *got < prev {
			t.Fatalf("age decreased as birth date moved earlier: %d after %d", *got, prev)
		}
		prev = *got
	}
}

func TestSessionProgress(t *testing.T) {
	tests := []struct {
		planned, completed int
		wantPending        int
		wantPercent        float64
	}{
		{10, 4, 6, 40},
		{0, 0, 0, 0},
		{0, 3, 0, 0},   // no plan, no percentage
		{5, 8, 0, 160}, // overshoot: pending floors at zero
		{8, 8, 0, 100},
	}
	for _, tt := range tests {
		got := SessionProgress(tt.planned, tt.completed)
		if got.Pending != tt.wantPending || got.Percent != tt.wantPercent {
			t.Errorf("SessionProgress(%d, %d) = %+v, want pending %d percent %v",
				tt.planned, tt.completed, got, tt.wantPending, tt.wantPercent)
		}
	}
}

func TestPaymentStatus(t *testing.T) {
	if got := PaymentStatus(0); got != PaymentSettled {
		t.Errorf("PaymentStatus(0) = %q, want %q", got, PaymentSettled)
	}
	if got := PaymentStatus(-3.5); got != PaymentSettled {
		t.Errorf("PaymentStatus(-3.5) = %q, want %q", got, PaymentSettled)
	}
	if got := PaymentStatus(0.01); got != PaymentOutstanding {
		t.Errorf("PaymentStatus(0.01) = %q, want %q", got, PaymentOutstanding)
	}
}
