package middleware

import (
	"net/http"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/pkg/response"
)

// MsgRoleRequired is flashed when a page is opened with the wrong role
const MsgRoleRequired = "Please select a role to continue."

// RequireRole creates a middleware that checks if the session has any of the allowed roles.
// Role is read from the session set by SessionMiddleware.
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Session not found")
				return
			}

			for _, role := range allowed {
				if sess.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			if !IsScripted(r) {
				sess.Flash = MsgRoleRequired
				http.Redirect(w, r, LandingPath, http.StatusSeeOther)
				return
			}
			response.ErrorRedirect(w, http.StatusForbidden, MsgRoleRequired, LandingPath)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient admits both anonymous and logged-in patients
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient, entity.RoleLoggedPatient)(next)
}

// RequireLoggedPatient is for endpoints that act on the patient's own data
func RequireLoggedPatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleLoggedPatient)(next)
}
