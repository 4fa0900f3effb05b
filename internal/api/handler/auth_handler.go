package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
	"github.com/rateorant/client-gateway/internal/core/service"
)

// AuthHandler proxies sign-in and sign-up to the backend and manages the
// gateway's session registry.
type AuthHandler struct {
	auth     *service.Auth
	sessions *service.Registry
}

func NewAuthHandler(auth *service.Auth, sessions *service.Registry) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signUpRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type credentialResponse struct {
	Token string           `json:"token"`
	User  *domain.Identity `json:"user"`
}

// SignIn handles POST /sign-in.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, identity, err := h.auth.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, credentialResponse{Token: token, User: identity})
}

// SignUp handles POST /sign-up (user role).
func (h *AuthHandler) SignUp(c echo.Context) error {
	return h.signUp(c, domain.RoleUser)
}

// OwnerSignUp handles POST /owner-sign-up (restaurant owner role).
func (h *AuthHandler) OwnerSignUp(c echo.Context) error {
	return h.signUp(c, domain.RoleOwner)
}

func (h *AuthHandler) signUp(c echo.Context, role string) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, identity, err := h.auth.SignUp(c.Request().Context(), ports.SignUpInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, credentialResponse{Token: token, User: identity})
}

// SignOut handles POST /sign-out: the per-credential session state is
// dropped wholesale.
func (h *AuthHandler) SignOut(c echo.Context) error {
	_, token, err := ctxSession(c)
	if err != nil {
		return err
	}
	h.sessions.Drop(token)
	return c.NoContent(http.StatusNoContent)
}
