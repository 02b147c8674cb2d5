package dashboard

import (
	"github.com/fisiodesk/fisiodesk/internal/display"
	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

// Cards are the headline counters. income_month arrives as a numeric string
// from some backend versions.
type Cards struct {
	PatientsTotal      int             `json:"patients_total"`
	SessionsToday      int             `json:"sessions_today"`
	ConsultationsMonth int             `json:"consultations_month"`
	IncomeMonth        upstream.Number `json:"income_month"`
}

// LatestSession is one row of the recent-sessions table.
type LatestSession struct {
	ID             int              `json:"id"`
	Fecha          *string          `json:"fecha"`
	EVA            *upstream.Number `json:"eva"`
	Abono          *upstream.Number `json:"abono"`
	MetodoPago     *string          `json:"metodo_pago"`
	PatientID      *int             `json:"patient_id"`
	PatientName    string           `json:"patient_name"`
	ConsultationID *int             `json:"consultation_id"`
}

// Summary is the dashboard landing payload.
type Summary struct {
	Cards          Cards            `json:"cards"`
	LatestSessions []*LatestSession `json:"latest_sessions"`
}

// derive fills the gaps the backend leaves in a summary.
func (s *Summary) derive() {
	if s.LatestSessions == nil {
		s.LatestSessions = []*LatestSession{}
	}
	for _, row := range s.LatestSessions {
		row.PatientName = display.Name(display.NameParts{Name: row.PatientName})
	}
}

// Series are the per-month chart values, twelve entries each.
type Series struct {
	IncomeMonthly   []upstream.Number `json:"income_monthly"`
	SessionsMonthly []upstream.Number `json:"sessions_monthly"`
	EVAAvgMonthly   []upstream.Number `json:"eva_avg_monthly"`
}

// MethodTotal is the month's takings for one payment method.
type MethodTotal struct {
	Metodo string          `json:"metodo"`
	Total  upstream.Number `json:"total"`
}

// Charts is the dashboard charts payload for one year.
type Charts struct {
	Labels              []string       `json:"labels"`
	Series              Series         `json:"series"`
	PaymentMethodsMonth []*MethodTotal `json:"payment_methods_month"`
}

func (c *Charts) derive() {
	if c.Labels == nil {
		c.Labels = []string{}
	}
	if c.PaymentMethodsMonth == nil {
		c.PaymentMethodsMonth = []*MethodTotal{}
	}
}
