package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

// AccessClass is the guard attached to a route.
type AccessClass int

const (
	// Open routes render for anyone.
	Open AccessClass = iota
	// AuthRoute requires any authenticated identity.
	AuthRoute
	// OwnerRoute requires the restaurant owner role.
	OwnerRoute
	// UserRoute requires a non-owner user.
	UserRoute
)

const (
	signInPath  = "/sign-in"
	landingPath = "/"
)

// Decision is the outcome of evaluating a navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is the routing rule: a pure function of (identity, access class)
// with no server round-trip. Anonymous visitors are sent to sign-in; the
// wrong role is sent back to the landing path.
func Decide(identity *domain.Identity, class AccessClass) Decision {
	switch class {
	case AuthRoute:
		if identity == nil {
			return Decision{RedirectTo: signInPath}
		}
	case OwnerRoute:
		if identity == nil {
			return Decision{RedirectTo: signInPath}
		}
		if !identity.IsOwner() {
			return Decision{RedirectTo: landingPath}
		}
	case UserRoute:
		if identity == nil {
			return Decision{RedirectTo: signInPath}
		}
		if identity.IsOwner() {
			return Decision{RedirectTo: landingPath}
		}
	}
	return Decision{Allow: true}
}

// Guard enforces an access class on a route. A rejected navigation is a
// client-side redirect, never an error response.
func Guard(class AccessClass) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := Decide(Identity(c), class)
			if !decision.Allow {
				return c.Redirect(http.StatusFound, decision.RedirectTo)
			}
			return next(c)
		}
	}
}
