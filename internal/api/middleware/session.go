package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

const (
	identityKey   = "identity"
	credentialKey = "credential"
)

// Session decodes an optional bearer credential into an identity and
// injects both into the request context. A missing or malformed credential
// leaves the request anonymous rather than rejecting it; the route guards
// decide what anonymous may reach. Decoding never verifies the signature —
// that is the backend's job.
func Session(decode func(token string) (*domain.Identity, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header != "" {
				parts := strings.SplitN(header, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					if identity, err := decode(parts[1]); err == nil {
						c.Set(identityKey, identity)
						c.Set(credentialKey, parts[1])
					}
				}
			}
			return next(c)
		}
	}
}

// Identity returns the identity injected by Session, nil when anonymous.
func Identity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}

// Credential returns the raw bearer credential, empty when anonymous.
func Credential(c echo.Context) string {
	token, _ := c.Get(credentialKey).(string)
	return token
}
