package authn

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

type restRepository struct {
	client *upstream.Client
}

// NewRESTRepository builds a Repository backed by the upstream REST API.
func NewRESTRepository(client *upstream.Client) Repository {
	return &restRepository{client: client}
}

func (r *restRepository) Login(ctx context.Context, creds *Credentials) (string, error) {
	body := map[string]interface{}{
		"email":    strings.TrimSpace(creds.Email),
		"password": creds.Password,
		"remember": creds.Remember,
	}

	// The token key has drifted across backend versions.
	var res struct {
		Token          string `json:"token"`
		AccessToken    string `json:"access_token"`
		PlainTextToken string `json:"plainTextToken"`
	}
	if err := r.client.Post(ctx, "/auth/login", body, &res); err != nil {
		// Rejected credentials arrive as a plain 401; the sign-in screen
		// shows the backend's message, or the stock one when there is none.
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized &&
			apiErr.Message == upstream.FallbackMessage {
			apiErr.Message = "Credenciales incorrectas"
		}
		return "", err
	}

	for _, token := range []string{res.Token, res.AccessToken, res.PlainTextToken} {
		if token != "" {
			return token, nil
		}
	}
	return "", &upstream.APIError{
		Status:  http.StatusBadGateway,
		Message: "Inicio de sesión exitoso, pero el servidor no devolvió el token.",
	}
}

func (r *restRepository) Me(ctx context.Context) (*User, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/auth/me", nil, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw)
}
