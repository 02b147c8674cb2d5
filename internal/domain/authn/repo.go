package authn

import "context"

// Repository talks to the upstream auth endpoints. Login returns the bearer
// token the rest of the gateway forwards upstream.
type Repository interface {
	Login(ctx context.Context, creds *Credentials) (string, error)
	Me(ctx context.Context) (*User, error)
}
