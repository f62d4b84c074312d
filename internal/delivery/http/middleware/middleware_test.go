package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-dashboard/config"
	"hospital-dashboard/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(t *testing.T, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantRole, user.Role)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticateAndRequireAdmin(t *testing.T) {
	svc := jwt.NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: time.Hour})
	auth := NewAuthMiddleware(svc)

	adminToken, err := svc.GenerateSessionToken("u1", "admin", "admin@hospital.com", "admin")
	require.NoError(t, err)
	doctorToken, err := svc.GenerateSessionToken("u2", "drSmith", "drsmith@hospital.com", "doctor")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		role   string
		want   int
	}{
		{"missing header", "", "", http.StatusUnauthorized},
		{"bad scheme", "Token " + adminToken, "", http.StatusUnauthorized},
		{"bad token", "Bearer nope", "", http.StatusUnauthorized},
		{"admin allowed", "Bearer " + adminToken, "admin", http.StatusNoContent},
		{"doctor forbidden", "Bearer " + doctorToken, "doctor", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := auth.Authenticate(RequireAdmin(okHandler(t, tc.role)))
			req := httptest.NewRequest(http.MethodPost, "/api/doctors", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	h := NewCORSMiddleware("").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/patients", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
