package service

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// Backends bundles the remote accessors the controllers compose.
type Backends struct {
	Restaurants   ports.RestaurantAPI
	Reviews       ports.ReviewAPI
	Favorites     ports.FavoriteAPI
	Categories    ports.CategoryAPI
	Notifications ports.NotificationAPI
	Users         ports.UserAPI
	Auth          ports.AuthAPI
}

// DecodeIdentity extracts the identity from a three-part bearer credential
// by decoding only its payload segment. Signature verification is the
// backend's responsibility; the gateway trusts the backend to reject a
// forged token on the first identity-scoped call.
func DecodeIdentity(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, domain.ErrInvalidCredential
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = domain.RoleUser
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return &domain.Identity{
		ID:       domain.NormalizeID(claims["sub"]),
		Username: username,
		Email:    email,
		Role:     role,
	}, nil
}

// Session is the per-credential state the gateway keeps between requests:
// the decoded identity plus the stateful view controllers that mirror what
// the browser client held in component state.
type Session struct {
	Token         string
	Identity      *domain.Identity
	Dashboard     *Dashboard
	Notifications *NotificationCenter
}

// Registry lazily materializes sessions keyed by the raw credential and
// drops them wholesale on sign-out.
type Registry struct {
	backends Backends
	log      zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(backends Backends, log zerolog.Logger) *Registry {
	return &Registry{
		backends: backends,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns the session for a credential, creating it on first use.
func (r *Registry) Resolve(token string) (*Session, error) {
	identity, err := DecodeIdentity(token)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[token]; ok {
		return s, nil
	}

	s := &Session{
		Token:         token,
		Identity:      identity,
		Dashboard:     NewDashboard(identity, token, r.backends, r.log),
		Notifications: NewNotificationCenter(token, r.backends.Notifications, r.log),
	}
	r.sessions[token] = s
	return s, nil
}

// Drop clears a session on sign-out.
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}
