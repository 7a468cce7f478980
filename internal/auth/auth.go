package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingBearer = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid token")
)

type Authenticator interface {
	Authenticate(r *http.Request) error
}

// TokenAuthenticator accepts a single shared bearer token. An empty Token
// disables authentication.
type TokenAuthenticator struct {
	Token string
}

func NewTokenAuthenticator(token string) *TokenAuthenticator {
	return &TokenAuthenticator{Token: token}
}

func (a *TokenAuthenticator) Enabled() bool {
	return a != nil && a.Token != ""
}

func (a *TokenAuthenticator) Authenticate(r *http.Request) error {
	if !a.Enabled() {
		return nil
	}

	bearer, err := extractBearer(r)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(bearer), []byte(a.Token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

func extractBearer(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", ErrMissingBearer
	}
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}
