// Package ports declares the interfaces between the view controllers and
// the remote Rateorant backend. Every accessor is a stateless mapping from
// a resource operation to an HTTP call; identity-scoped operations take the
// raw bearer credential so the caller decides which session it acts for.
package ports

import (
	"context"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

// RestaurantInput carries the writable fields of a listing.
type RestaurantInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	ImageURL    string      `json:"image_url"`
	CategoryIDs []domain.ID `json:"category_ids"`
}

// ReviewInput carries a new star rating with an optional comment.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// SignUpInput carries the fields of a registration request.
type SignUpInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

type RestaurantAPI interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	// ListByCategory probes the backend's category-scoped listing across an
	// ordered set of candidate endpoint shapes and returns the first result
	// that parses to a list. Exhausting every candidate yields an empty
	// list, not an error.
	ListByCategory(ctx context.Context, categoryID domain.ID) ([]domain.Restaurant, error)
	Get(ctx context.Context, id domain.ID) (*domain.Restaurant, error)
	Create(ctx context.Context, token string, input RestaurantInput) (*domain.Restaurant, error)
	Update(ctx context.Context, token string, id domain.ID, input RestaurantInput) (*domain.Restaurant, error)
	Delete(ctx context.Context, token string, id domain.ID) error
}

type ReviewAPI interface {
	ListByRestaurant(ctx context.Context, restaurantID domain.ID) ([]domain.Review, error)
	Create(ctx context.Context, token string, restaurantID domain.ID, input ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, token string, restaurantID, reviewID domain.ID) error
}

type FavoriteAPI interface {
	List(ctx context.Context, token string) ([]domain.Favorite, error)
	Check(ctx context.Context, token string, restaurantID domain.ID) (bool, error)
	Add(ctx context.Context, token string, restaurantID domain.ID) error
	Remove(ctx context.Context, token string, restaurantID domain.ID) error
}

type CategoryAPI interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// NotificationAPI degrades to an empty list on any failure by design; the
// indicator must never take the navigation bar down with it.
type NotificationAPI interface {
	List(ctx context.Context, token string) []domain.Notification
}

type UserAPI interface {
	Get(ctx context.Context, id domain.ID) (*domain.User, error)
}

// AuthAPI proxies the backend's credential-issuing endpoints. The gateway
// never verifies the returned token; it only decodes the payload.
type AuthAPI interface {
	SignIn(ctx context.Context, username, password string) (string, error)
	SignUp(ctx context.Context, input SignUpInput) (string, error)
}
