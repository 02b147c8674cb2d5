package therapist

import (
	"context"

	"github.com/fisiodesk/fisiodesk/pkg/pagination"
)

// Repository talks to the upstream therapist endpoints.
type Repository interface {
	List(ctx context.Context, q string, p pagination.Params) (*ListResult, error)
	Get(ctx context.Context, id int) (*Therapist, error)
	Create(ctx context.Context, payload *CreatePayload) (*Therapist, error)
	Update(ctx context.Context, id int, payload *UpdatePayload) (*Therapist, error)
	Delete(ctx context.Context, id int) error
}
