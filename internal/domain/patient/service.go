package patient

import (
	"context"
	"time"

	"github.com/fisiodesk/fisiodesk/internal/form"
	"github.com/fisiodesk/fisiodesk/pkg/pagination"
)

// Service validates patient forms locally before anything reaches the
// upstream, and fills the derived display fields on everything it returns.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, q string, p pagination.Params) (*ListResult, error) {
	result, err := s.repo.List(ctx, q, p)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for _, item := range result.Items {
		item.deriveAge(now)
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Patient, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.deriveAge(s.now())
	return p, nil
}

func (s *Service) Create(ctx context.Context, f *Form) (*Patient, error) {
	if errs := f.Validate(s.now()); !errs.Valid() {
		return nil, form.NewValidationError(errs)
	}
	p, err := s.repo.Create(ctx, f.Payload())
	if err != nil {
		return nil, err
	}
	p.deriveAge(s.now())
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int, f *Form) (*Patient, error) {
	if errs := f.Validate(s.now()); !errs.Valid() {
		return nil, form.NewValidationError(errs)
	}
	p, err := s.repo.Update(ctx, id, f.Payload())
	if err != nil {
		return nil, err
	}
	p.deriveAge(s.now())
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) History(ctx context.Context, id int) (*History, error) {
	h, err := s.repo.History(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.Patient != nil {
		h.Patient.deriveAge(s.now())
	}
	for _, c := range h.Consultations {
		c.Derive()
	}
	return h, nil
}
