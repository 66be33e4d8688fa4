package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleRequest(method, target string, role entity.Role) (*http.Request, *entity.Session) {
	sess := entity.NewSession("s")
	sess.SetSession(role, "token")
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(WithSession(req.Context(), sess)), sess
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		role       entity.Role
		method     string
		scripted   bool
		wantStatus int
	}{
		{"admin allowed", RequireAdmin, entity.RoleAdmin, http.MethodGet, false, http.StatusOK},
		{"doctor allowed", RequireDoctor, entity.RoleDoctor, http.MethodGet, false, http.StatusOK},
		{"anonymous patient on patient pages", RequirePatient, entity.RolePatient, http.MethodGet, false, http.StatusOK},
		{"logged patient on patient pages", RequirePatient, entity.RoleLoggedPatient, http.MethodGet, false, http.StatusOK},
		{"anonymous patient cannot book", RequireLoggedPatient, entity.RolePatient, http.MethodPost, false, http.StatusForbidden},
		{"doctor page load on admin redirects", RequireAdmin, entity.RoleDoctor, http.MethodGet, false, http.StatusSeeOther},
		{"scripted fetch on admin is forbidden", RequireAdmin, entity.RoleDoctor, http.MethodGet, true, http.StatusForbidden},
		{"scripted overlay for anonymous patient is forbidden", RequireLoggedPatient, entity.RolePatient, http.MethodGet, true, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, sess := roleRequest(tt.method, "/x", tt.role)
			if tt.scripted {
				req.Header.Set(HeaderRequestedWith, "XMLHttpRequest")
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusSeeOther {
				assert.Equal(t, "/", rec.Header().Get("Location"))
				assert.Equal(t, MsgRoleRequired, sess.Flash)
			}
			if tt.wantStatus == http.StatusForbidden {
				assert.Empty(t, rec.Header().Get("Location"))
				var body response.Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, "/", body.Redirect)
				assert.Equal(t, MsgRoleRequired, body.Message)
			}
		})
	}
}

func TestRequireRole_NoSession(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAdmin(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
