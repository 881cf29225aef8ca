package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

const (
	testIssuer   = "erp-backend-test"
	testAudience = "http://localhost:8080"
)

// chain applies middlewares to a handler, first middleware outermost.
func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["iss"]; !ok {
		claims["iss"] = testIssuer
	}
	if _, ok := claims["aud"]; !ok {
		claims["aud"] = testAudience
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)
	return signed
}

func protectedHandler(t *testing.T, mws ...func(http.Handler) http.Handler) http.Handler {
	t.Helper()
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(UserIDFromContext(r.Context())))
	})
	return chain(final, mws...)
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	h := protectedHandler(t, Authenticate(testKey, testIssuer, testAudience))

	token := signToken(t, jwt.MapClaims{"sub": "user-1", "roles": []string{"Cliente"}})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Body.String())
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	h := protectedHandler(t, Authenticate(testKey, testIssuer, testAudience))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsBadSignature(t *testing.T) {
	h := protectedHandler(t, Authenticate(testKey, testIssuer, testAudience))

	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"iss": testIssuer,
		"aud": testAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(otherKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	h := protectedHandler(t, Authenticate(testKey, testIssuer, testAudience))

	token := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsWrongIssuer(t *testing.T) {
	h := protectedHandler(t, Authenticate(testKey, testIssuer, testAudience))

	token := signToken(t, jwt.MapClaims{"sub": "user-1", "iss": "someone-else"})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	h := protectedHandler(t,
		Authenticate(testKey, testIssuer, testAudience),
		RequireRole("Admin", "Funcionario"),
	)

	token := signToken(t, jwt.MapClaims{"sub": "staff-1", "roles": []string{"Funcionario"}})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleDeniesClienteOnStaffSurface(t *testing.T) {
	h := protectedHandler(t,
		Authenticate(testKey, testIssuer, testAudience),
		RequireRole("Admin", "Funcionario"),
	)

	token := signToken(t, jwt.MapClaims{"sub": "client-1", "roles": []string{"Cliente"}})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleDeniesWhenNoRoles(t *testing.T) {
	h := protectedHandler(t,
		Authenticate(testKey, testIssuer, testAudience),
		RequireRole("Admin"),
	)

	token := signToken(t, jwt.MapClaims{"sub": "user-1"})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
