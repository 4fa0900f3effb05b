package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rateorant/client-gateway/internal/api/metrics"
	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// Restaurants implements ports.RestaurantAPI over the backend REST surface.
type Restaurants struct {
	c *Client
}

func NewRestaurants(c *Client) *Restaurants {
	return &Restaurants{c: c}
}

func (r *Restaurants) List(ctx context.Context) ([]domain.Restaurant, error) {
	data, err := r.c.do(ctx, "restaurants", http.MethodGet, "/restaurants", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Restaurant](data, "restaurants")
}

// categoryCandidates is the ordered probe list for category-scoped listing.
// The backend's route shape for this filter is not fixed by contract:
// resource-nested path first, then query-parameter variants, then the same
// set under the /api prefix.
func categoryCandidates(id domain.ID) []string {
	p := url.PathEscape(id.String())
	q := url.QueryEscape(id.String())
	return []string{
		"/categories/" + p + "/restaurants",
		"/restaurants?category_id=" + q,
		"/restaurants?category=" + q,
		"/api/categories/" + p + "/restaurants",
		"/api/restaurants?category_id=" + q,
	}
}

// ListByCategory probes the candidates in order and short-circuits on the
// first response that parses to a list. Exhausting every candidate yields
// an empty list so shape drift never crashes the grid.
func (r *Restaurants) ListByCategory(ctx context.Context, categoryID domain.ID) ([]domain.Restaurant, error) {
	for _, path := range categoryCandidates(categoryID) {
		data, err := r.c.do(ctx, "restaurants", http.MethodGet, path, "", nil)
		if err != nil {
			r.c.log.Debug().Err(err).Str("path", path).Msg("category candidate failed")
			continue
		}
		list, err := decodeList[domain.Restaurant](data, "restaurants")
		if err != nil {
			r.c.log.Debug().Err(err).Str("path", path).Msg("category candidate returned a non-list payload")
			continue
		}
		metrics.CategoryFallbackTotal.WithLabelValues("hit").Inc()
		return list, nil
	}

	metrics.CategoryFallbackTotal.WithLabelValues("exhausted").Inc()
	r.c.log.Warn().Str("category_id", categoryID.String()).Msg("all category listing candidates failed")
	return []domain.Restaurant{}, nil
}

func (r *Restaurants) Get(ctx context.Context, id domain.ID) (*domain.Restaurant, error) {
	data, err := r.c.do(ctx, "restaurants", http.MethodGet, "/restaurants/"+url.PathEscape(id.String()), "", nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return decodeObject[domain.Restaurant](data)
}

func (r *Restaurants) Create(ctx context.Context, token string, input ports.RestaurantInput) (*domain.Restaurant, error) {
	data, err := r.c.do(ctx, "restaurants", http.MethodPost, "/restaurants", token, input)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Restaurant](data)
}

func (r *Restaurants) Update(ctx context.Context, token string, id domain.ID, input ports.RestaurantInput) (*domain.Restaurant, error) {
	data, err := r.c.do(ctx, "restaurants", http.MethodPut, "/restaurants/"+url.PathEscape(id.String()), token, input)
	if err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return decodeObject[domain.Restaurant](data)
}

func (r *Restaurants) Delete(ctx context.Context, token string, id domain.ID) error {
	_, err := r.c.do(ctx, "restaurants", http.MethodDelete, "/restaurants/"+url.PathEscape(id.String()), token, nil)
	if err != nil && IsNotFound(err) {
		return domain.ErrRestaurantNotFound
	}
	return err
}
