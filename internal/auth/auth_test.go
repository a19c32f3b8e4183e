package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundakue/titipan/internal/auth"
)

func TestLogin(t *testing.T) {
	svc := auth.NewService("admin", "admin123", "test-secret", time.Hour)

	token, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := auth.NewService("admin", "admin123", "test-secret", time.Hour)

	_, err := svc.Login("admin", "letmein")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_WrongUsername(t *testing.T) {
	svc := auth.NewService("admin", "admin123", "test-secret", time.Hour)

	_, err := svc.Login("root", "admin123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := auth.NewService("admin", "admin123", "secret-a", time.Hour)
	verifier := auth.NewService("admin", "admin123", "secret-b", time.Hour)

	token, err := issuer.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	svc := auth.NewService("admin", "admin123", "test-secret", time.Hour)

	var gotUsername string
	handler := auth.Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUsername = auth.UsernameFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "valid token",
			header:     "Bearer " + token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic " + token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, "admin", gotUsername)
}
