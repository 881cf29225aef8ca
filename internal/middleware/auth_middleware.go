package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecogestao/erp-backend/internal/utils"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	emailKey  contextKey = "email"
	rolesKey  contextKey = "roles"
)

// Authenticate validates the bearer token and stores the caller's id,
// email and roles on the request context. Any failure answers 401.
func Authenticate(signingKey []byte, issuer, audience string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing or malformed Authorization header", nil)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return signingKey, nil
			},
				jwt.WithIssuer(issuer),
				jwt.WithAudience(audience),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !token.Valid {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", nil, err)
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Token is missing subject claim", nil)
				return
			}
			email, _ := claims["email"].(string)

			var roles []string
			if rawRoles, ok := claims["roles"].([]any); ok {
				for _, r := range rawRoles {
					if name, ok := r.(string); ok {
						roles = append(roles, name)
					}
				}
			}

			ctx := context.WithValue(r.Context(), userIDKey, sub)
			ctx = context.WithValue(ctx, emailKey, email)
			ctx = context.WithValue(ctx, rolesKey, roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a handler behind an allow-list of role names. Callers
// whose token carries none of them get 401, same as an unauthenticated
// request.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	allowSet := make(map[string]bool, len(allowed))
	for _, role := range allowed {
		allowSet[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, role := range RolesFromContext(r.Context()) {
				if allowSet[role] {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Caller role is not permitted for this resource", nil)
		})
	}
}

// UserIDFromContext returns the authenticated caller's user id.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// EmailFromContext returns the authenticated caller's email.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// RolesFromContext returns the authenticated caller's role names.
func RolesFromContext(ctx context.Context) []string {
	roles, _ := ctx.Value(rolesKey).([]string)
	return roles
}
