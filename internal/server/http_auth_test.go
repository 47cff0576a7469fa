package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenAuthenticator(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		header  string
		subject string
		wantErr error
	}{
		{name: "not configured", token: "", header: "Bearer x", wantErr: ErrAPITokenMissing},
		{name: "missing header", token: "t", header: "", wantErr: ErrBearerTokenMissing},
		{name: "wrong scheme", token: "t", header: "Basic t", wantErr: ErrBearerTokenMissing},
		{name: "wrong token", token: "t", header: "Bearer u", wantErr: ErrBearerTokenInvalid},
		{name: "valid", token: "t", header: "bearer t"},
		{name: "valid with subject", token: "t", header: "Bearer t", subject: "alice"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/resources", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.subject != "" {
				req.Header.Set("X-Caller-Subject", tc.subject)
			}
			principal, err := NewTokenAuthenticator(tc.token).AuthenticateHTTP(req)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			want := tc.subject
			if want == "" {
				want = defaultPrincipalSubject
			}
			assert.Equal(t, want, principal.Subject)
		})
	}
}

func TestTokenAuthenticator_MiddlewareStoresPrincipal(t *testing.T) {
	var seen Principal
	handler := NewTokenAuthenticator("t").Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer t")
	req.Header.Set("X-Caller-Subject", "ops")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "ops", seen.Subject)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
