package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

func testRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: "1", Name: "Trattoria Roma", Location: "Naples", OwnerID: "7"},
		{ID: "2", Name: "Sushi Bar", Location: "Tokyo", OwnerID: "8"},
		{ID: "3", Name: "Pasta Palace", Location: "Rome", OwnerID: "7"},
	}
}

func testBackends(restaurants *stubRestaurantAPI, reviews *stubReviewAPI, favorites *stubFavoriteAPI, categories *stubCategoryAPI) Backends {
	if restaurants == nil {
		restaurants = &stubRestaurantAPI{list: testRestaurants()}
	}
	if reviews == nil {
		reviews = &stubReviewAPI{byRestaurant: map[domain.ID][]domain.Review{}}
	}
	if favorites == nil {
		favorites = &stubFavoriteAPI{}
	}
	if categories == nil {
		categories = &stubCategoryAPI{}
	}
	return Backends{
		Restaurants: restaurants,
		Reviews:     reviews,
		Favorites:   favorites,
		Categories:  categories,
	}
}

func userIdentity() *domain.Identity {
	return &domain.Identity{ID: "42", Username: "ana", Role: domain.RoleUser}
}

func ownerIdentity() *domain.Identity {
	return &domain.Identity{ID: "7", Username: "marco", Role: domain.RoleOwner}
}

func visibleIDs(cards []Card) []domain.ID {
	ids := make([]domain.ID, len(cards))
	for i, c := range cards {
		ids[i] = c.Restaurant.ID
	}
	return ids
}

func TestDashboard_UserSeesEveryListingInOrder(t *testing.T) {
	d := NewDashboard(userIdentity(), "tok", testBackends(nil, nil, nil, nil), zerolog.Nop())
	d.Load(context.Background())

	got := visibleIDs(d.Visible())
	want := []domain.ID{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if d.Error() != "" {
		t.Fatalf("unexpected error banner: %q", d.Error())
	}
}

func TestDashboard_OwnerSeesOnlyOwnListings(t *testing.T) {
	d := NewDashboard(ownerIdentity(), "tok", testBackends(nil, nil, nil, nil), zerolog.Nop())
	d.Load(context.Background())

	got := visibleIDs(d.Visible())
	if len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("owner 7 should see listings 1 and 3, got %v", got)
	}
}

func TestDashboard_SearchMatchesNameAndLocation(t *testing.T) {
	d := NewDashboard(userIdentity(), "tok", testBackends(nil, nil, nil, nil), zerolog.Nop())
	d.Load(context.Background())

	// "ROMA" matches "Trattoria Roma" by name, case-insensitively.
	d.SetSearch("ROMA")
	got := visibleIDs(d.Visible())
	if len(got) != 1 || got[0] != "1" {
		t.Fatalf("search by name failed, got %v", got)
	}

	// "tokyo" matches "Sushi Bar" by location only.
	d.SetSearch("tokyo")
	got = visibleIDs(d.Visible())
	if len(got) != 1 || got[0] != "2" {
		t.Fatalf("search by location failed, got %v", got)
	}

	d.SetSearch("")
	if len(d.Visible()) != 3 {
		t.Fatalf("clearing the search should restore all cards")
	}
}

func TestDashboard_RatingFloor(t *testing.T) {
	reviews := &stubReviewAPI{byRestaurant: map[domain.ID][]domain.Review{
		"1": {{Rating: 5}, {Rating: 4}}, // 4.5
		"2": {{Rating: 2}},              // 2.0
	}}
	d := NewDashboard(userIdentity(), "tok", testBackends(nil, reviews, nil, nil), zerolog.Nop())
	d.Load(context.Background())
	d.RecomputeRatings(context.Background())

	d.SetRatingFloor("4")
	got := visibleIDs(d.Visible())
	if len(got) != 1 || got[0] != "1" {
		t.Fatalf("floor 4 should admit only listing 1, got %v", got)
	}

	// Unreviewed listings sit at average 0 and fall below any floor.
	d.SetRatingFloor("1")
	got = visibleIDs(d.Visible())
	if len(got) != 2 {
		t.Fatalf("floor 1 should drop the unreviewed listing, got %v", got)
	}

	// Anything outside 1..4 resets to "all".
	d.SetRatingFloor("9")
	if d.Filters().RatingFloor != RatingAll {
		t.Fatalf("out-of-range floor should reset to all, got %q", d.Filters().RatingFloor)
	}
	if len(d.Visible()) != 3 {
		t.Fatalf("reset floor should restore all cards")
	}
}

func TestDashboard_FavoritesOnlyAndOptimisticToggle(t *testing.T) {
	favorites := &stubFavoriteAPI{favs: []domain.Favorite{{UserID: "42", RestaurantID: "2"}}}
	d := NewDashboard(userIdentity(), "tok", testBackends(nil, nil, favorites, nil), zerolog.Nop())
	d.Load(context.Background())

	d.SetFavoritesOnly(true)
	got := visibleIDs(d.Visible())
	if len(got) != 1 || got[0] != "2" {
		t.Fatalf("favorites-only should show listing 2, got %v", got)
	}

	d.AddFavorite(context.Background(), "1")
	got = visibleIDs(d.Visible())
	if len(got) != 2 {
		t.Fatalf("after adding a favorite expected 2 cards, got %v", got)
	}

	// Adding the same id again is a set operation, not a duplicate.
	d.AddFavorite(context.Background(), "1")
	if len(d.Visible()) != 2 {
		t.Fatalf("favoriting twice must not duplicate the card")
	}

	d.RemoveFavorite(context.Background(), "2")
	got = visibleIDs(d.Visible())
	if len(got) != 1 || got[0] != "1" {
		t.Fatalf("after removing a favorite expected only listing 1, got %v", got)
	}
}

func TestDashboard_FavoriteKeptLocallyWhenBackendFails(t *testing.T) {
	favorites := &stubFavoriteAPI{addErr: errors.New("backend down")}
	d := NewDashboard(userIdentity(), "tok", testBackends(nil, nil, favorites, nil), zerolog.Nop())
	d.Load(context.Background())

	// The local set is updated first and not rolled back on failure.
	d.AddFavorite(context.Background(), "3")
	d.SetFavoritesOnly(true)
	got := visibleIDs(d.Visible())
	if len(got) != 1 || got[0] != "3" {
		t.Fatalf("optimistic favorite should survive a failed backend call, got %v", got)
	}
}

func TestDashboard_LoadFailureRetainsPriorData(t *testing.T) {
	restaurants := &stubRestaurantAPI{list: testRestaurants()}
	d := NewDashboard(userIdentity(), "tok", testBackends(restaurants, nil, nil, nil), zerolog.Nop())
	d.Load(context.Background())

	restaurants.listErr = errors.New("backend down")
	d.Refresh(context.Background())

	if d.Error() != "Failed to load restaurants" {
		t.Fatalf("expected load error banner, got %q", d.Error())
	}
	if len(d.Visible()) != 3 {
		t.Fatalf("failed reload should retain the previous cards")
	}

	restaurants.listErr = nil
	d.Refresh(context.Background())
	if d.Error() != "" {
		t.Fatalf("successful reload should clear the banner, got %q", d.Error())
	}
}

func TestDashboard_DeleteRemovesListingOnceConfirmed(t *testing.T) {
	restaurants := &stubRestaurantAPI{list: testRestaurants()}
	d := NewDashboard(ownerIdentity(), "tok", testBackends(restaurants, nil, nil, nil), zerolog.Nop())
	d.Load(context.Background())

	if err := d.DeleteRestaurant(context.Background(), "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got := visibleIDs(d.Visible())
	if len(got) != 1 || got[0] != "3" {
		t.Fatalf("listing 1 should be gone, got %v", got)
	}
	if len(restaurants.deleted) != 1 || restaurants.deleted[0] != "1" {
		t.Fatalf("backend delete not issued, got %v", restaurants.deleted)
	}
}

func TestDashboard_DeleteFailureKeepsListing(t *testing.T) {
	restaurants := &stubRestaurantAPI{list: testRestaurants(), deleteErr: errors.New("backend down")}
	d := NewDashboard(ownerIdentity(), "tok", testBackends(restaurants, nil, nil, nil), zerolog.Nop())
	d.Load(context.Background())

	if err := d.DeleteRestaurant(context.Background(), "1"); err == nil {
		t.Fatalf("expected delete error")
	}
	if d.Error() != "Failed to delete restaurant" {
		t.Fatalf("expected delete error banner, got %q", d.Error())
	}
	if len(d.Visible()) != 2 {
		t.Fatalf("failed delete must not remove the card locally")
	}
}

func TestDashboard_SeedSearchForcesCategoryAll(t *testing.T) {
	restaurants := &stubRestaurantAPI{
		list:  testRestaurants(),
		byCat: map[domain.ID][]domain.Restaurant{"9": {testRestaurants()[1]}},
	}
	d := NewDashboard(userIdentity(), "tok", testBackends(restaurants, nil, nil, nil), zerolog.Nop())
	d.SetCategory(context.Background(), "9")

	d.SeedSearch("pasta")

	f := d.Filters()
	if f.Category != CategoryAll {
		t.Fatalf("seeded search must force category back to all, got %q", f.Category)
	}
	if f.Search != "pasta" {
		t.Fatalf("expected seeded query, got %q", f.Search)
	}
}

func TestDashboard_SetCategoryScopesList(t *testing.T) {
	restaurants := &stubRestaurantAPI{
		list:  testRestaurants(),
		byCat: map[domain.ID][]domain.Restaurant{"9": {testRestaurants()[1]}},
	}
	d := NewDashboard(userIdentity(), "tok", testBackends(restaurants, nil, nil, nil), zerolog.Nop())
	d.Load(context.Background())

	d.SetCategory(context.Background(), "9")
	got := visibleIDs(d.Visible())
	if len(got) != 1 || got[0] != "2" {
		t.Fatalf("category 9 should scope to listing 2, got %v", got)
	}

	// Empty selection falls back to the unfiltered list.
	d.SetCategory(context.Background(), "")
	if len(d.Visible()) != 3 {
		t.Fatalf("empty category should reload everything")
	}
}

func TestDashboard_CategoriesLoadOnce(t *testing.T) {
	categories := &stubCategoryAPI{cats: []domain.Category{{ID: "9", Name: "Italian"}}}
	d := NewDashboard(userIdentity(), "tok", testBackends(nil, nil, nil, categories), zerolog.Nop())
	d.Load(context.Background())

	cats := d.Categories()
	if len(cats) != 1 || cats[0].Name != "Italian" {
		t.Fatalf("expected the loaded category set, got %v", cats)
	}

	// A later failure is irrelevant once the set is cached.
	categories.listErr = errors.New("backend down")
	d.Refresh(context.Background())
	if len(d.Categories()) != 1 {
		t.Fatalf("category set should persist across reloads")
	}
}
