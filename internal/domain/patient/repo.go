package patient

import (
	"context"

	"github.com/fisiodesk/fisiodesk/pkg/pagination"
)

// Repository talks to the upstream patient endpoints.
type Repository interface {
	List(ctx context.Context, q string, p pagination.Params) (*ListResult, error)
	Get(ctx context.Context, id int) (*Patient, error)
	Create(ctx context.Context, payload *Payload) (*Patient, error)
	Update(ctx context.Context, id int, payload *Payload) (*Patient, error)
	Delete(ctx context.Context, id int) error
	History(ctx context.Context, id int) (*History, error)
}
