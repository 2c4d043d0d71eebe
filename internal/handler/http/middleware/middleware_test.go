package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/jwt"
)

const testUserID = "0190a0e4-5d1c-7b7e-8a3e-000000000001"

func protected(jwtService jwt.Service, extra ...func(http.Handler) http.Handler) (http.Handler, *auth.Principal) {
	var seen auth.Principal
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = CurrentPrincipal(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	for i := len(extra) - 1; i >= 0; i-- {
		h = extra[i](h)
	}
	h = AuthRequired(jwtService)(h)
	h = jwtauth.Verifier(jwtService.JWTAuth())(h)
	return h, &seen
}

func call(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService("middleware-test-secret", "1h", "24h", false)

	access, _, err := svc.GenerateAccessToken(testUserID, "Maria", employee.RoleEmployee)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken(testUserID)
	require.NoError(t, err)

	t.Run("access token sets principal", func(t *testing.T) {
		h, seen := protected(svc)
		rec := call(h, access)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, auth.Principal{UserID: testUserID, Name: "Maria", Role: employee.RoleEmployee}, *seen)
	})

	t.Run("missing token", func(t *testing.T) {
		h, _ := protected(svc)
		assert.Equal(t, http.StatusUnauthorized, call(h, "").Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		h, _ := protected(svc)
		assert.Equal(t, http.StatusUnauthorized, call(h, refresh).Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwt.NewJWTService("another-secret", "1h", "24h", false)
		forged, _, err := other.GenerateAccessToken(testUserID, "Maria", employee.RoleAdmin)
		require.NoError(t, err)

		h, _ := protected(svc)
		assert.Equal(t, http.StatusUnauthorized, call(h, forged).Code)
	})
}

func TestAuthRequired_RevokedToken(t *testing.T) {
	svc := jwt.NewJWTService("middleware-test-secret", "1h", "24h", false)
	access, exp, err := svc.GenerateAccessToken(testUserID, "Maria", employee.RoleEmployee)
	require.NoError(t, err)

	svc.RevokeToken(access, timeFromUnix(exp))

	h, _ := protected(svc)
	assert.Equal(t, http.StatusUnauthorized, call(h, access).Code)
}

func TestRequireRole(t *testing.T) {
	svc := jwt.NewJWTService("middleware-test-secret", "1h", "24h", false)
	employeeToken, _, err := svc.GenerateAccessToken(testUserID, "Maria", employee.RoleEmployee)
	require.NoError(t, err)
	adminToken, _, err := svc.GenerateAccessToken(testUserID, "Admin", employee.RoleAdmin)
	require.NoError(t, err)

	admin, _ := protected(svc, AdminOnly)
	assert.Equal(t, http.StatusForbidden, call(admin, employeeToken).Code)
	assert.Equal(t, http.StatusNoContent, call(admin, adminToken).Code)

	worker, _ := protected(svc, EmployeeOnly)
	assert.Equal(t, http.StatusNoContent, call(worker, employeeToken).Code)
	assert.Equal(t, http.StatusForbidden, call(worker, adminToken).Code)

	either, _ := protected(svc, RequireRole(employee.RoleAdmin, employee.RoleEmployee))
	assert.Equal(t, http.StatusNoContent, call(either, adminToken).Code)
}

func timeFromUnix(sec int64) time.Time {
	return time.Unix(sec, 0)
}
