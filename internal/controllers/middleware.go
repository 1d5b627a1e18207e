package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eburon/crm-service/internal/utils"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext returns the authenticated user id, or "" when the
// request carried no usable token.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// AuthMiddleware extracts the subject claim from the bearer token. When a
// JWT secret is configured the signature is verified; without one the
// claims are read unverified, matching the degraded mode the rest of the
// optional integrations use.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if raw == "" || raw == r.Header.Get("Authorization") {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing bearer token", nil)
				return
			}

			var claims jwt.RegisteredClaims
			var err error
			if jwtSecret != "" {
				_, err = jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
					return []byte(jwtSecret), nil
				}, jwt.WithValidMethods([]string{"HS256"}))
			} else {
				_, _, err = jwt.NewParser().ParseUnverified(raw, &claims)
			}
			if err != nil || claims.Subject == "" {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, err)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
