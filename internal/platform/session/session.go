// Package session manages the browser sign-in session. The upstream bearer
// token is never handed to the browser directly: it travels inside an
// HS256-signed cookie minted on login and cleared on logout or when the
// upstream rejects it.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie issued by the gateway.
const CookieName = "fisiodesk_session"

const (
	// DefaultTTL is the session lifetime without "remember me".
	DefaultTTL = 12 * time.Hour
	// RememberTTL is the session lifetime with "remember me" checked.
	RememberTTL = 30 * 24 * time.Hour
)

// Session is the request-scoped sign-in context: created on successful login,
// cleared on logout or authorization failure, read by every outgoing call.
type Session struct {
	ID    string
	Token string
	Email string
}

type claims struct {
	jwt.RegisteredClaims
	Token string `json:"tok"`
	Email string `json:"eml,omitempty"`
}

// Manager signs and verifies session cookies.
type Manager struct {
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
}

// NewManager builds a manager for the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{
		secret:      []byte(secret),
		ttl:         DefaultTTL,
		rememberTTL: RememberTTL,
	}
}

// Issue creates a session for an upstream token and returns the signed
// cookie. remember extends the lifetime to RememberTTL.
func (m *Manager) Issue(token, email string, remember bool) (Session, *http.Cookie, error) {
	ttl := m.ttl
	if remember {
		ttl = m.rememberTTL
	}

	s := Session{ID: uuid.New().String(), Token: token, Email: email}
	now := time.Now()
	cl := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Token: s.Token,
		Email: s.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(m.secret)
	if err != nil {
		return Session{}, nil, fmt.Errorf("sign session: %w", err)
	}

	return s, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Parse verifies a cookie value and returns the session it carries.
func (m *Manager) Parse(value string) (Session, error) {
	parsed, err := jwt.ParseWithClaims(value, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("parse session: %w", err)
	}
	cl, ok := parsed.Claims.(*claims)
	if !ok || cl.Token == "" {
		return Session{}, fmt.Errorf("parse session: missing token claim")
	}
	return Session{ID: cl.ID, Token: cl.Token, Email: cl.Email}, nil
}

// Clear returns an expired cookie that removes the session from the browser.
func Clear() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
