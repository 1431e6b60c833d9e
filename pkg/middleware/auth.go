package middleware

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

const RoleAdmin = "admin"

// HasRole is the single authorization check for role-gated operations.
// Superusers pass every role; everyone else needs the matching role
// claim on their auth record.
func HasRole(record *core.Record, role string) bool {
	if record == nil {
		return false
	}
	if record.IsSuperuser() {
		return true
	}
	return record.GetString("role") == role
}

// authToken pulls the auth token from the Authorization header (API
// clients) or the pb_auth cookie (browser sessions).
func authToken(e *core.RequestEvent) string {
	if header := e.Request.Header.Get("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := e.Request.Cookie("pb_auth"); err == nil {
		return cookie.Value
	}
	return ""
}

// LoadAuth resolves the auth record for the request, if any. It never
// rejects: anonymous requests proceed with e.Auth == nil.
func LoadAuth(app core.App) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			if token := authToken(e); token != "" {
				if record, err := app.FindAuthRecordByToken(token, core.TokenTypeAuth); err == nil {
					e.Auth = record
				}
			}
		}
		return e.Next()
	}
}

// RequireAuth rejects unauthenticated requests.
func RequireAuth(app core.App) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			token := authToken(e)
			if token == "" {
				return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
			}
			record, err := app.FindAuthRecordByToken(token, core.TokenTypeAuth)
			if err != nil || record == nil {
				return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			}
			e.Auth = record
		}
		return e.Next()
	}
}

// RequireAdmin ensures the request carries an authenticated record with
// the admin role.
func RequireAdmin(app core.App) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			token := authToken(e)
			if token != "" {
				if record, err := app.FindAuthRecordByToken(token, core.TokenTypeAuth); err == nil {
					e.Auth = record
				}
			}
		}
		if !HasRole(e.Auth, RoleAdmin) {
			return e.JSON(http.StatusForbidden, map[string]string{"error": "Admin access required"})
		}
		return e.Next()
	}
}
