package middleware

import (
	"net/http"

	"doctor-scheduler/internal/domain/entity"
	"doctor-scheduler/pkg/response"
)

// RequireRole gates a route on the authenticated user's role. The role
// comes from the user row loaded by Authenticate, not from the token.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "access denied")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if user.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDoctor limits a route to doctor accounts.
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient limits a route to patient accounts.
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}
