package treatment

import (
	"context"
	"time"

	"github.com/fisiodesk/fisiodesk/internal/form"
)

// Service validates session forms before they leave the gateway. A form that
// fails validation never reaches the upstream.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListByConsultation(ctx context.Context, consultationID int) ([]*Session, error) {
	return s.repo.ListByConsultation(ctx, consultationID)
}

func (s *Service) Get(ctx context.Context, id int) (*Session, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, f *Form) (*Session, error) {
	p, errs := f.validate(s.now(), true)
	if !errs.Valid() {
		return nil, form.NewValidationError(errs)
	}
	return s.repo.Create(ctx, f.createPayload(p))
}

func (s *Service) Update(ctx context.Context, id int, f *Form) (*Session, error) {
	p, errs := f.validate(s.now(), false)
	if !errs.Valid() {
		return nil, form.NewValidationError(errs)
	}
	return s.repo.Update(ctx, id, f.updatePayload(p))
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
