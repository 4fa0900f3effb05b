package service

import (
	"context"
	"sync"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub accessors
// ---------------------------------------------------------------------------

type stubRestaurantAPI struct {
	list      []domain.Restaurant
	byCat     map[domain.ID][]domain.Restaurant
	listErr   error
	deleteErr error

	mu      sync.Mutex
	deleted []domain.ID
}

func (s *stubRestaurantAPI) List(context.Context) ([]domain.Restaurant, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.list, nil
}

func (s *stubRestaurantAPI) ListByCategory(_ context.Context, categoryID domain.ID) ([]domain.Restaurant, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byCat[categoryID], nil
}

func (s *stubRestaurantAPI) Get(_ context.Context, id domain.ID) (*domain.Restaurant, error) {
	for _, r := range s.list {
		if r.ID == id {
			clone := r
			return &clone, nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

func (s *stubRestaurantAPI) Create(_ context.Context, _ string, input ports.RestaurantInput) (*domain.Restaurant, error) {
	return &domain.Restaurant{ID: "new", Name: input.Name, Location: input.Location}, nil
}

func (s *stubRestaurantAPI) Update(_ context.Context, _ string, id domain.ID, input ports.RestaurantInput) (*domain.Restaurant, error) {
	return &domain.Restaurant{ID: id, Name: input.Name, Location: input.Location}, nil
}

func (s *stubRestaurantAPI) Delete(_ context.Context, _ string, id domain.ID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.mu.Lock()
	s.deleted = append(s.deleted, id)
	s.mu.Unlock()
	return nil
}

type stubReviewAPI struct {
	mu           sync.Mutex
	byRestaurant map[domain.ID][]domain.Review
	listErr      error
	created      []ports.ReviewInput
}

func (s *stubReviewAPI) ListByRestaurant(_ context.Context, restaurantID domain.ID) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byRestaurant[restaurantID], nil
}

func (s *stubReviewAPI) Create(_ context.Context, _ string, restaurantID domain.ID, input ports.ReviewInput) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, input)
	return &domain.Review{ID: "r-new", RestaurantID: restaurantID, Rating: input.Rating, Comment: input.Comment}, nil
}

func (s *stubReviewAPI) Delete(context.Context, string, domain.ID, domain.ID) error {
	return nil
}

type stubFavoriteAPI struct {
	mu       sync.Mutex
	favs     []domain.Favorite
	listErr  error
	addErr   error
	added    []domain.ID
	removed  []domain.ID
	checkSet map[domain.ID]bool
}

func (s *stubFavoriteAPI) List(context.Context, string) ([]domain.Favorite, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.favs, nil
}

func (s *stubFavoriteAPI) Check(_ context.Context, _ string, restaurantID domain.ID) (bool, error) {
	return s.checkSet[restaurantID], nil
}

func (s *stubFavoriteAPI) Add(_ context.Context, _ string, restaurantID domain.ID) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.mu.Lock()
	s.added = append(s.added, restaurantID)
	s.mu.Unlock()
	return nil
}

func (s *stubFavoriteAPI) Remove(_ context.Context, _ string, restaurantID domain.ID) error {
	s.mu.Lock()
	s.removed = append(s.removed, restaurantID)
	s.mu.Unlock()
	return nil
}

type stubCategoryAPI struct {
	cats    []domain.Category
	listErr error
}

func (s *stubCategoryAPI) List(context.Context) ([]domain.Category, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.cats, nil
}

type stubNotificationAPI struct {
	items []domain.Notification
}

func (s *stubNotificationAPI) List(context.Context, string) []domain.Notification {
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

type stubUserAPI struct {
	users  map[domain.ID]*domain.User
	getErr error
}

func (s *stubUserAPI) Get(_ context.Context, id domain.ID) (*domain.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return u, nil
}

type stubAuthAPI struct {
	token      string
	signInErr  error
	lastSignUp ports.SignUpInput
}

func (s *stubAuthAPI) SignIn(context.Context, string, string) (string, error) {
	if s.signInErr != nil {
		return "", s.signInErr
	}
	return s.token, nil
}

func (s *stubAuthAPI) SignUp(_ context.Context, input ports.SignUpInput) (string, error) {
	s.lastSignUp = input
	return s.token, nil
}
