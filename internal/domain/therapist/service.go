package therapist

import (
	"context"

	"github.com/fisiodesk/fisiodesk/internal/form"
	"github.com/fisiodesk/fisiodesk/pkg/pagination"
)

// Service validates therapist account forms before they leave the gateway.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, q string, p pagination.Params) (*ListResult, error) {
	return s.repo.List(ctx, q, p)
}

func (s *Service) Get(ctx context.Context, id int) (*Therapist, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, f *CreateForm) (*Therapist, error) {
	if errs := f.Validate(); !errs.Valid() {
		return nil, form.NewValidationError(errs)
	}
	return s.repo.Create(ctx, f.Payload())
}

func (s *Service) Update(ctx context.Context, id int, f *UpdateForm) (*Therapist, error) {
	if errs := f.Validate(); !errs.Valid() {
		return nil, form.NewValidationError(errs)
	}
	return s.repo.Update(ctx, id, f.Payload())
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
