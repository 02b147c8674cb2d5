package consultation

import (
	"context"
	"time"

	"github.com/fisiodesk/fisiodesk/internal/form"
)

// Service validates consultation forms locally and fills the derived
// progress fields on everything it returns.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Consultation, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		c.Derive()
	}
	return list, nil
}

// Latest returns the most recent consultation of a patient, or nil when the
// patient has none.
func (s *Service) Latest(ctx context.Context, patientID int) (*Consultation, error) {
	list, err := s.List(ctx, ListFilter{PatientID: patientID, Limit: 1, Desc: true})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Service) Get(ctx context.Context, id int) (*Consultation, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Derive()
	return c, nil
}

func (s *Service) Create(ctx context.Context, f *Form) (*Consultation, error) {
	p, errs := f.validate(s.now(), true)
	if !errs.Valid() {
		return nil, form.NewValidationError(errs)
	}
	c, err := s.repo.Create(ctx, f.createPayload(p))
	if err != nil {
		return nil, err
	}
	c.Derive()
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int, f *Form) (*Consultation, error) {
	p, errs := f.validate(s.now(), false)
	if !errs.Valid() {
		return nil, form.NewValidationError(errs)
	}
	c, err := s.repo.Update(ctx, id, f.updatePayload(p))
	if err != nil {
		return nil, err
	}
	c.Derive()
	return c, nil
}
