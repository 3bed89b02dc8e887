package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEndpoint(jwtService jwt.Service) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return jwtauth.Verifier(jwtService.JWTAuth())(AuthRequired(jwtService.JWTAuth())(next))
}

func TestAuthRequired_AcceptsIssuedToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := jwtService.GenerateAccessToken("op-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Greater(t, expiresAt, int64(0))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedEndpoint(jwtService).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll", nil)
	rec := httptest.NewRecorder()

	protectedEndpoint(jwtService).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsForeignToken(t *testing.T) {
	issuer := jwt.NewJWTService("some-other-secret", "1h")
	verifier := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	token, _, err := issuer.GenerateAccessToken("op-1", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedEndpoint(verifier).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsNonAccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	// Signed with the right key but not an access token.
	_, token, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"operator_id": "op-1",
		"type":        "refresh",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedEndpoint(jwtService).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
