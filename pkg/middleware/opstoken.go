package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pocketbase/pocketbase/core"
)

// OpsSecretEnv names the environment variable holding the elevated
// maintenance credential. Ops endpoints are disabled when it is unset.
const OpsSecretEnv = "OPS_TOKEN_SECRET"

// OpsSubject must match the subject minted by cmd/opstoken.
const OpsSubject = "ops"

// RequireOpsToken gates maintenance endpoints behind a signed ops token.
func RequireOpsToken() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		secret := os.Getenv(OpsSecretEnv)
		if secret == "" {
			return e.JSON(http.StatusServiceUnavailable, map[string]string{
				"error": "Maintenance endpoints disabled: " + OpsSecretEnv + " is not set",
			})
		}

		raw := strings.TrimPrefix(e.Request.Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing ops token"})
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid ops token"})
		}

		if sub, _ := claims.GetSubject(); sub != OpsSubject {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid ops token subject"})
		}

		return e.Next()
	}
}
