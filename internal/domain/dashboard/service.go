package dashboard

import "context"

// Service fetches the dashboard payloads and fills local display fallbacks.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	summary.derive()
	return summary, nil
}

func (s *Service) Charts(ctx context.Context, year int) (*Charts, error) {
	charts, err := s.repo.Charts(ctx, year)
	if err != nil {
		return nil, err
	}
	charts.derive()
	return charts, nil
}
