package treatment

import "context"

// Repository talks to the upstream treatment-session endpoints.
type Repository interface {
	ListByConsultation(ctx context.Context, consultationID int) ([]*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	Create(ctx context.Context, payload *CreatePayload) (*Session, error)
	Update(ctx context.Context, id int, payload *UpdatePayload) (*Session, error)
	Delete(ctx context.Context, id int) error
}
