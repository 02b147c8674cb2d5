package consultation

import "context"

// ListFilter narrows a consultation listing. A zero Limit means no limit and
// Desc orders newest first.
type ListFilter struct {
	PatientID int
	Limit     int
	Desc      bool
}

// Repository talks to the upstream consultation endpoints.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Consultation, error)
	Get(ctx context.Context, id int) (*Consultation, error)
	Create(ctx context.Context, payload *CreatePayload) (*Consultation, error)
	Update(ctx context.Context, id int, payload *UpdatePayload) (*Consultation, error)
}
