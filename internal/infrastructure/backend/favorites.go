package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

// Favorites implements ports.FavoriteAPI. Every operation is
// identity-scoped and carries the bearer credential.
type Favorites struct {
	c *Client
}

func NewFavorites(c *Client) *Favorites {
	return &Favorites{c: c}
}

func (f *Favorites) List(ctx context.Context, token string) ([]domain.Favorite, error) {
	data, err := f.c.do(ctx, "favorites", http.MethodGet, "/favorites", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Favorite](data, "favorites")
}

// Check reports whether one restaurant is in the caller's favorite set. The
// backend answers with either a bare boolean or a wrapped flag.
func (f *Favorites) Check(ctx context.Context, token string, restaurantID domain.ID) (bool, error) {
	path := "/restaurants/" + url.PathEscape(restaurantID.String()) + "/favorite"
	data, err := f.c.do(ctx, "favorites", http.MethodGet, path, token, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	var bare bool
	if json.Unmarshal(data, &bare) == nil {
		return bare, nil
	}
	var wrapped struct {
		Favorite   bool `json:"favorite"`
		IsFavorite bool `json:"is_favorite"`
	}
	if json.Unmarshal(data, &wrapped) == nil {
		return wrapped.Favorite || wrapped.IsFavorite, nil
	}
	return false, errUnexpectedShape
}

func (f *Favorites) Add(ctx context.Context, token string, restaurantID domain.ID) error {
	path := "/restaurants/" + url.PathEscape(restaurantID.String()) + "/favorite"
	_, err := f.c.do(ctx, "favorites", http.MethodPost, path, token, struct{}{})
	return err
}

func (f *Favorites) Remove(ctx context.Context, token string, restaurantID domain.ID) error {
	path := "/restaurants/" + url.PathEscape(restaurantID.String()) + "/favorite"
	_, err := f.c.do(ctx, "favorites", http.MethodDelete, path, token, nil)
	return err
}
