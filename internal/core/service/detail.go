package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// ReviewEntry is one review with its author's username resolved through the
// user accessor.
type ReviewEntry struct {
	domain.Review
	Username string `json:"username"`
}

// DetailView is the composed restaurant detail page: the listing, its
// reviews with resolved authors, and the derived aggregate.
type DetailView struct {
	Restaurant  domain.Restaurant `json:"restaurant"`
	Reviews     []ReviewEntry     `json:"reviews"`
	Average     float64           `json:"average_rating"`
	Stars       string            `json:"stars"`
	ReviewCount int               `json:"review_count"`
	// ViewerOwns marks the owner looking at their own listing; the view
	// swaps the review form for the feedback notice in that case.
	ViewerOwns bool `json:"viewer_owns"`
}

// Details composes the restaurant detail view and performs review
// mutations.
type Details struct {
	restaurants ports.RestaurantAPI
	reviews     ports.ReviewAPI
	users       ports.UserAPI
	log         zerolog.Logger
}

func NewDetails(backends Backends, log zerolog.Logger) *Details {
	return &Details{
		restaurants: backends.Restaurants,
		reviews:     backends.Reviews,
		users:       backends.Users,
		log:         log.With().Str("component", "details").Logger(),
	}
}

// Get fetches the restaurant and its reviews. A review fetch failure
// degrades to an empty review list rather than failing the whole page.
func (s *Details) Get(ctx context.Context, identity *domain.Identity, restaurantID domain.ID) (*DetailView, error) {
	restaurant, err := s.restaurants.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		s.log.Warn().Err(err).Str("restaurant_id", restaurantID.String()).Msg("failed to load reviews")
		reviews = nil
	}

	entries := make([]ReviewEntry, 0, len(reviews))
	for _, r := range reviews {
		entries = append(entries, ReviewEntry{Review: r, Username: s.username(ctx, r.UserID)})
	}

	agg := domain.Fold(reviews)
	return &DetailView{
		Restaurant:  *restaurant,
		Reviews:     entries,
		Average:     agg.Average(),
		Stars:       agg.Stars(),
		ReviewCount: agg.Count,
		ViewerOwns:  restaurant.OwnedBy(identity),
	}, nil
}

// AddReview validates the rating range locally and forwards to the backend.
// The backend creates the owner notification as a side effect.
func (s *Details) AddReview(ctx context.Context, token string, restaurantID domain.ID, input ports.ReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	return s.reviews.Create(ctx, token, restaurantID, input)
}

// DeleteReview forwards the deletion of the caller's own review; ownership
// is enforced by the backend.
func (s *Details) DeleteReview(ctx context.Context, token string, restaurantID, reviewID domain.ID) error {
	return s.reviews.Delete(ctx, token, restaurantID, reviewID)
}

func (s *Details) username(ctx context.Context, userID domain.ID) string {
	user, err := s.users.Get(ctx, userID)
	if err != nil || user == nil {
		return "User " + userID.String()
	}
	return user.Username
}
