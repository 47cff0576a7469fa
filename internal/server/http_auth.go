package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/ansible-network/meraki-rm-sub001/internal/httputil"
)

var (
	// ErrAPITokenMissing indicates no API token was configured.
	ErrAPITokenMissing = errors.New("api token is not configured")
	// ErrBearerTokenMissing indicates Authorization header did not contain a bearer token.
	ErrBearerTokenMissing = errors.New("missing or malformed Authorization bearer token")
	// ErrBearerTokenInvalid indicates provided bearer token did not match the configured token.
	ErrBearerTokenInvalid = errors.New("invalid bearer token")
)

const defaultPrincipalSubject = "api-token"

// Principal carries caller identity for audit entries.
type Principal struct {
	Subject string
}

type principalKey struct{}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) Principal {
	p, _ := ctx.Value(principalKey{}).(Principal)
	return p
}

// TokenAuthenticator validates incoming bearer tokens against one shared
// API token.
type TokenAuthenticator struct {
	token string
}

// NewTokenAuthenticator creates an authenticator for token.
func NewTokenAuthenticator(token string) *TokenAuthenticator {
	return &TokenAuthenticator{token: strings.TrimSpace(token)}
}

// AuthenticateHTTP validates the Authorization bearer token of r.
func (a *TokenAuthenticator) AuthenticateHTTP(r *http.Request) (Principal, error) {
	if a == nil || a.token == "" {
		return Principal{}, ErrAPITokenMissing
	}
	presented := httputil.BearerToken(r.Header.Get("Authorization"))
	if presented == "" {
		return Principal{}, ErrBearerTokenMissing
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(a.token)) != 1 {
		return Principal{}, ErrBearerTokenInvalid
	}
	subject := strings.TrimSpace(r.Header.Get("X-Caller-Subject"))
	if subject == "" {
		subject = defaultPrincipalSubject
	}
	return Principal{Subject: subject}, nil
}

// Middleware rejects unauthenticated requests with 401 and stores the
// principal in the request context.
func (a *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := a.AuthenticateHTTP(r)
		if err != nil {
			status, detail := authFailureResponse(err)
			httputil.RespondProblem(w, r, status, detail)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, principal)))
	})
}

func authFailureResponse(err error) (int, string) {
	if err == nil {
		return http.StatusUnauthorized, "unauthorized"
	}
	switch {
	case errors.Is(err, ErrAPITokenMissing):
		return http.StatusUnauthorized, "API token is not configured; set MERAKI_RM_API_TOKEN"
	case errors.Is(err, ErrBearerTokenMissing):
		return http.StatusUnauthorized, "missing or malformed Authorization header; expected Bearer <token>"
	case errors.Is(err, ErrBearerTokenInvalid):
		return http.StatusUnauthorized, "invalid bearer token"
	default:
		return http.StatusUnauthorized, err.Error()
	}
}
