package service

import (
	"context"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// Auth proxies sign-in and sign-up to the backend's credential-issuing
// endpoints and decodes the returned token into an identity. The gateway
// issues nothing itself and never sees a password hash.
type Auth struct {
	api ports.AuthAPI
}

func NewAuth(api ports.AuthAPI) *Auth {
	return &Auth{api: api}
}

func (a *Auth) SignIn(ctx context.Context, username, password string) (string, *domain.Identity, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredential
	}
	token, err := a.api.SignIn(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	identity, err := DecodeIdentity(token)
	if err != nil {
		return "", nil, err
	}
	return token, identity, nil
}

func (a *Auth) SignUp(ctx context.Context, input ports.SignUpInput) (string, *domain.Identity, error) {
	if input.Username == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredential
	}
	if input.Role != domain.RoleUser && input.Role != domain.RoleOwner {
		return "", nil, domain.ErrInvalidCredential
	}
	token, err := a.api.SignUp(ctx, input)
	if err != nil {
		return "", nil, err
	}
	identity, err := DecodeIdentity(token)
	if err != nil {
		return "", nil, err
	}
	return token, identity, nil
}
