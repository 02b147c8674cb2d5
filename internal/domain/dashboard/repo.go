package dashboard

import "context"

// Repository talks to the upstream dashboard endpoints. A zero year means
// the backend's current year.
type Repository interface {
	Summary(ctx context.Context) (*Summary, error)
	Charts(ctx context.Context, year int) (*Charts, error)
}
