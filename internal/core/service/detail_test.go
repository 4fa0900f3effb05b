package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

func newTestDetails(reviews *stubReviewAPI, users *stubUserAPI) *Details {
	if reviews == nil {
		reviews = &stubReviewAPI{byRestaurant: map[domain.ID][]domain.Review{}}
	}
	if users == nil {
		users = &stubUserAPI{users: map[domain.ID]*domain.User{}}
	}
	backends := testBackends(nil, reviews, nil, nil)
	backends.Users = users
	return NewDetails(backends, zerolog.Nop())
}

func TestDetails_GetComposesView(t *testing.T) {
	reviews := &stubReviewAPI{byRestaurant: map[domain.ID][]domain.Review{
		"1": {
			{ID: "r1", RestaurantID: "1", UserID: "42", Rating: 5, Comment: "great"},
			{ID: "r2", RestaurantID: "1", UserID: "99", Rating: 4},
		},
	}}
	users := &stubUserAPI{users: map[domain.ID]*domain.User{
		"42": {ID: "42", Username: "ana"},
	}}

	view, err := newTestDetails(reviews, users).Get(context.Background(), userIdentity(), "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if view.Restaurant.ID != "1" {
		t.Fatalf("expected restaurant 1, got %q", view.Restaurant.ID)
	}
	if view.ReviewCount != 2 || view.Average != 4.5 {
		t.Fatalf("expected 2 reviews averaging 4.5, got %d / %v", view.ReviewCount, view.Average)
	}
	if view.Reviews[0].Username != "ana" {
		t.Fatalf("expected resolved username, got %q", view.Reviews[0].Username)
	}
	// Unknown author falls back to a generated label.
	if view.Reviews[1].Username != "User 99" {
		t.Fatalf("expected fallback username, got %q", view.Reviews[1].Username)
	}
	if view.ViewerOwns {
		t.Fatalf("a plain user must not own the listing")
	}
}

func TestDetails_GetOwnerViewingOwnListing(t *testing.T) {
	view, err := newTestDetails(nil, nil).Get(context.Background(), ownerIdentity(), "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !view.ViewerOwns {
		t.Fatalf("owner 7 should own listing 1")
	}
}

func TestDetails_GetDegradesOnReviewFailure(t *testing.T) {
	reviews := &stubReviewAPI{listErr: errors.New("backend down")}

	view, err := newTestDetails(reviews, nil).Get(context.Background(), userIdentity(), "1")
	if err != nil {
		t.Fatalf("a review failure must not fail the page: %v", err)
	}
	if len(view.Reviews) != 0 || view.ReviewCount != 0 || view.Stars != "" {
		t.Fatalf("expected an empty degraded view, got %+v", view)
	}
}

func TestDetails_GetUnknownRestaurant(t *testing.T) {
	_, err := newTestDetails(nil, nil).Get(context.Background(), userIdentity(), "missing")
	if !errors.Is(err, domain.ErrRestaurantNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDetails_AddReviewValidatesRange(t *testing.T) {
	reviews := &stubReviewAPI{byRestaurant: map[domain.ID][]domain.Review{}}
	d := newTestDetails(reviews, nil)

	for _, rating := range []int{0, -1, 6} {
		_, err := d.AddReview(context.Background(), "tok", "1", ports.ReviewInput{Rating: rating})
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	if len(reviews.created) != 0 {
		t.Fatalf("invalid ratings must never reach the backend")
	}

	review, err := d.AddReview(context.Background(), "tok", "1", ports.ReviewInput{Rating: 5, Comment: "great"})
	if err != nil {
		t.Fatalf("add review: %v", err)
	}
	if review.Rating != 5 {
		t.Fatalf("expected the created review back, got %+v", review)
	}
}
