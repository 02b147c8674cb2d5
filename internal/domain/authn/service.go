package authn

import (
	"context"

	"github.com/fisiodesk/fisiodesk/internal/form"
	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

// Service signs users in against the upstream and fetches the account behind
// a token.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login exchanges credentials for the upstream bearer token and the signed-in
// user. The user lookup reuses the fresh token.
func (s *Service) Login(ctx context.Context, creds *Credentials) (string, *User, error) {
	if errs := creds.Validate(); !errs.Valid() {
		return "", nil, form.NewValidationError(errs)
	}

	token, err := s.repo.Login(ctx, creds)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.Me(upstream.WithToken(ctx, token))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *Service) Me(ctx context.Context) (*User, error) {
	return s.repo.Me(ctx)
}
