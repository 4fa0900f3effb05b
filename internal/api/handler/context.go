package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rateorant/client-gateway/internal/api/middleware"
	"github.com/rateorant/client-gateway/internal/core/domain"
)

// ctxSession extracts the identity and credential injected by the session
// middleware. Handlers behind an AuthRoute/OwnerRoute/UserRoute guard can
// rely on a non-nil identity; the check here is a fast-fail against a
// misregistered route.
func ctxSession(c echo.Context) (*domain.Identity, string, error) {
	identity := middleware.Identity(c)
	if identity == nil {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return identity, middleware.Credential(c), nil
}
