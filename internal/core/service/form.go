package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// FormView is what the add/edit listing form needs: the category options,
// and for edits the existing listing plus any permission message. The
// router already admitted the owner to the route; an ownership mismatch on
// someone else's listing is an in-view message, not a navigation block.
type FormView struct {
	Restaurant        *domain.Restaurant `json:"restaurant,omitempty"`
	Categories        []domain.Category  `json:"categories"`
	PermissionMessage string             `json:"permission_message,omitempty"`
}

// Forms backs the add/edit restaurant views.
type Forms struct {
	restaurants ports.RestaurantAPI
	categories  ports.CategoryAPI
	log         zerolog.Logger
}

func NewForms(backends Backends, log zerolog.Logger) *Forms {
	return &Forms{
		restaurants: backends.Restaurants,
		categories:  backends.Categories,
		log:         log.With().Str("component", "forms").Logger(),
	}
}

// Load prepares the form. With an empty id it serves the add form; with an
// id it loads the listing for editing and checks ownership.
func (s *Forms) Load(ctx context.Context, identity *domain.Identity, restaurantID domain.ID) (*FormView, error) {
	view := &FormView{}

	cats, err := s.categories.List(ctx)
	if err != nil {
		// The checkbox list simply stays empty.
		s.log.Warn().Err(err).Msg("failed to load categories")
	} else {
		view.Categories = cats
	}

	if restaurantID.IsZero() {
		return view, nil
	}

	restaurant, err := s.restaurants.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	view.Restaurant = restaurant
	if !restaurant.OwnedBy(identity) {
		view.PermissionMessage = "You do not have permission to edit this restaurant"
	}
	return view, nil
}

// Create submits a new listing.
func (s *Forms) Create(ctx context.Context, token string, input ports.RestaurantInput) (*domain.Restaurant, error) {
	return s.restaurants.Create(ctx, token, input)
}

// Update submits listing changes after re-checking ownership; a mismatch
// surfaces as ErrForbidden for the in-view message.
func (s *Forms) Update(ctx context.Context, identity *domain.Identity, token string, restaurantID domain.ID, input ports.RestaurantInput) (*domain.Restaurant, error) {
	existing, err := s.restaurants.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !existing.OwnedBy(identity) {
		return nil, domain.ErrForbidden
	}
	return s.restaurants.Update(ctx, token, restaurantID, input)
}
