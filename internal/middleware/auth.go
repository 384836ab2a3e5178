package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// RequireAuth returns middleware that authenticates requests with a
// Bearer JWT and stores the resulting principal in the request context.
//
// Locally issued tokens carry user_id/email/name/role claims and are
// trusted directly. Tokens from an external identity provider lack a
// role claim; those principals are resolved against the user store by
// email so role changes take effect without re-login.
func RequireAuth(validator JWTValidator, users domain.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims, err := validator.Validate(r.Context(), strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				writeUnauthorized(w, "invalid token")
				return
			}

			principal := access.Principal{
				ID:    claims.Subject,
				Email: claims.Email,
				Name:  claims.Name,
				Role:  access.Role(claims.Role),
			}
			if !principal.Role.Valid() {
				if users == nil || claims.Email == "" {
					writeUnauthorized(w, "invalid token")
					return
				}
				u, err := users.GetByEmail(r.Context(), claims.Email)
				if err != nil {
					writeUnauthorized(w, "unknown user")
					return
				}
				principal = u.Principal()
			}

			ctx := domain.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that rejects principals whose role is
// not in the allowed set. It must run after RequireAuth.
func RequireRole(roles ...access.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := domain.PrincipalFromContext(r.Context())
			if !ok {
				writeUnauthorized(w, "missing bearer token")
				return
			}
			for _, role := range roles {
				if p.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"error": "insufficient role",
			})
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": msg,
	})
}
