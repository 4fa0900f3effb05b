package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// Reviews implements ports.ReviewAPI.
type Reviews struct {
	c *Client
}

func NewReviews(c *Client) *Reviews {
	return &Reviews{c: c}
}

func (r *Reviews) ListByRestaurant(ctx context.Context, restaurantID domain.ID) ([]domain.Review, error) {
	path := "/restaurants/" + url.PathEscape(restaurantID.String()) + "/reviews"
	data, err := r.c.do(ctx, "reviews", http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Review](data, "reviews")
}

func (r *Reviews) Create(ctx context.Context, token string, restaurantID domain.ID, input ports.ReviewInput) (*domain.Review, error) {
	path := "/restaurants/" + url.PathEscape(restaurantID.String()) + "/reviews"
	data, err := r.c.do(ctx, "reviews", http.MethodPost, path, token, input)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Review](data)
}

func (r *Reviews) Delete(ctx context.Context, token string, restaurantID, reviewID domain.ID) error {
	path := "/restaurants/" + url.PathEscape(restaurantID.String()) + "/reviews/" + url.PathEscape(reviewID.String())
	_, err := r.c.do(ctx, "reviews", http.MethodDelete, path, token, nil)
	return err
}
