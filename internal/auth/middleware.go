package auth

import (
	"context"
	"net/http"
	"strings"

	"GlowBeauty/pkg/kit"
)

type ctxKey string

const userKey ctxKey = "user"

type User struct {
	ID    string
	Email string
	Role  string
}

func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}

func RequireUser(jwt *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			claims, err := jwt.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil || claims.UserID == "" {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			u := User{ID: claims.UserID, Email: claims.Email, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
		})
	}
}

func RequireAdmin(jwt *TokenMaker) func(http.Handler) http.Handler {
	requireUser := RequireUser(jwt)
	return func(next http.Handler) http.Handler {
		return requireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok || u.Role != RoleAdmin {
				kit.WriteError(w, r, http.StatusForbidden, "admin only", nil)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
