package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// Auth implements ports.AuthAPI against the backend's credential-issuing
// endpoints. The gateway only relays the signed token; it never verifies or
// mints one.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

func (a *Auth) SignIn(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	data, err := a.c.do(ctx, "auth", http.MethodPost, "/auth/sign-in", "", body)
	if err != nil {
		return "", err
	}
	return extractToken(data)
}

func (a *Auth) SignUp(ctx context.Context, input ports.SignUpInput) (string, error) {
	body := map[string]string{
		"username": input.Username,
		"password": input.Password,
		"email":    input.Email,
		"role":     input.Role,
	}
	data, err := a.c.do(ctx, "auth", http.MethodPost, "/auth/sign-up", "", body)
	if err != nil {
		return "", err
	}
	return extractToken(data)
}

// extractToken accepts the token under either key the backend has used.
func extractToken(data []byte) (string, error) {
	var payload struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", errUnexpectedShape
	}
	if payload.Token != "" {
		return payload.Token, nil
	}
	if payload.AccessToken != "" {
		return payload.AccessToken, nil
	}
	return "", domain.ErrInvalidCredential
}
