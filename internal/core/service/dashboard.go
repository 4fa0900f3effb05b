package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// CategoryAll is the unfiltered category selection.
const CategoryAll = "all"

// RatingAll is the unfiltered rating floor selection.
const RatingAll = "all"

// Filters holds the user-selected view filters. They are applied on every
// render from current state and never persisted.
type Filters struct {
	Category      string `json:"category"`
	RatingFloor   string `json:"rating_floor"`
	Search        string `json:"search"`
	FavoritesOnly bool   `json:"favorites_only"`
}

// Card is one restaurant as rendered on the dashboard grid, with its
// derived aggregate rating attached.
type Card struct {
	Restaurant  domain.Restaurant `json:"restaurant"`
	Average     float64           `json:"average_rating"`
	Stars       string            `json:"stars"`
	ReviewCount int               `json:"review_count"`
	Favorite    bool              `json:"favorite"`
}

// Dashboard produces the restaurant cards visible to one identity. It keeps
// the transient state the browser client held in component state: the last
// loaded list, the favorite id set, the aggregate map, the filters and the
// last load error. All loads are tagged with a generation counter so a
// superseded fetch never overwrites fresher state.
type Dashboard struct {
	identity *domain.Identity
	token    string

	restaurants ports.RestaurantAPI
	favorites   ports.FavoriteAPI
	categories  ports.CategoryAPI
	ratings     *ratingFetcher
	log         zerolog.Logger

	mu          sync.Mutex
	generation  uint64
	list        []domain.Restaurant
	categorySet []domain.Category
	favoriteSet map[domain.ID]struct{}
	aggregates  map[domain.ID]domain.RatingAggregate
	filters     Filters
	lastError   string
}

func NewDashboard(identity *domain.Identity, token string, backends Backends, log zerolog.Logger) *Dashboard {
	return &Dashboard{
		identity:    identity,
		token:       token,
		restaurants: backends.Restaurants,
		favorites:   backends.Favorites,
		categories:  backends.Categories,
		ratings:     newRatingFetcher(backends.Reviews, 0, log),
		log:         log.With().Str("component", "dashboard").Str("user_id", identity.ID.String()).Logger(),
		favoriteSet: make(map[domain.ID]struct{}),
		aggregates:  make(map[domain.ID]domain.RatingAggregate),
		filters:     Filters{Category: CategoryAll, RatingFloor: RatingAll},
	}
}

// Load fetches everything the grid needs: the category set (once), the
// restaurant list, the favorite set for user identities, and the aggregate
// ratings. The list render never waits on aggregates; they populate
// asynchronously and the grid legitimately shows "0 reviews" until then.
func (d *Dashboard) Load(ctx context.Context) {
	gen := d.begin()
	d.ensureCategories(ctx)
	d.loadList(ctx, gen)
	if !d.identity.IsOwner() {
		d.loadFavorites(ctx, gen)
	}
	d.spawnRatings(gen)
}

// Refresh is the explicit invalidate-and-reload signal sent after a
// mutation elsewhere (listing created or updated).
func (d *Dashboard) Refresh(ctx context.Context) {
	d.Load(ctx)
}

// SetCategory changes the category filter and reloads the list scoped to
// it. A stale in-flight load from a previous selection is discarded.
func (d *Dashboard) SetCategory(ctx context.Context, category string) {
	if category == "" {
		category = CategoryAll
	}
	d.mu.Lock()
	d.filters.Category = category
	d.mu.Unlock()

	gen := d.begin()
	d.loadList(ctx, gen)
	d.spawnRatings(gen)
}

// SeedSearch installs a search query arriving through the URL and forces
// the category filter back to "all".
func (d *Dashboard) SeedSearch(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filters.Search = query
	d.filters.Category = CategoryAll
}

func (d *Dashboard) SetSearch(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filters.Search = query
}

// SetRatingFloor accepts "all" or an integer floor between 1 and 4; any
// other value resets to "all".
func (d *Dashboard) SetRatingFloor(value string) {
	if _, ok := parseFloor(value); !ok {
		value = RatingAll
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filters.RatingFloor = value
}

// SetFavoritesOnly toggles the favorites-only filter. Meaningful for user
// identities only; owners have no favorite set.
func (d *Dashboard) SetFavoritesOnly(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filters.FavoritesOnly = v
}

// Visible applies the view filters to the current state and returns the
// admitted cards in last-loaded list order.
func (d *Dashboard) Visible() []Card {
	d.mu.Lock()
	defer d.mu.Unlock()

	query := strings.ToLower(strings.TrimSpace(d.filters.Search))
	floor, hasFloor := parseFloor(d.filters.RatingFloor)

	cards := make([]Card, 0, len(d.list))
	for _, r := range d.list {
		_, fav := d.favoriteSet[r.ID]
		if d.filters.FavoritesOnly && !fav {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Name), query) &&
			!strings.Contains(strings.ToLower(r.Location), query) {
			continue
		}
		agg := d.aggregates[r.ID]
		if hasFloor && agg.Average() < floor {
			continue
		}
		cards = append(cards, Card{
			Restaurant:  r,
			Average:     agg.Average(),
			Stars:       agg.Stars(),
			ReviewCount: agg.Count,
			Favorite:    fav,
		})
	}
	return cards
}

// AddFavorite updates the local set first and then informs the backend.
// A failed call is logged, not rolled back: the inconsistency window closes
// on the next full reload.
func (d *Dashboard) AddFavorite(ctx context.Context, restaurantID domain.ID) {
	d.mu.Lock()
	d.favoriteSet[restaurantID] = struct{}{}
	d.mu.Unlock()

	if err := d.favorites.Add(ctx, d.token, restaurantID); err != nil {
		d.log.Error().Err(err).Str("restaurant_id", restaurantID.String()).Msg("favorite add not persisted")
	}
}

// RemoveFavorite mirrors AddFavorite for removal.
func (d *Dashboard) RemoveFavorite(ctx context.Context, restaurantID domain.ID) {
	d.mu.Lock()
	delete(d.favoriteSet, restaurantID)
	d.mu.Unlock()

	if err := d.favorites.Remove(ctx, d.token, restaurantID); err != nil {
		d.log.Error().Err(err).Str("restaurant_id", restaurantID.String()).Msg("favorite remove not persisted")
	}
}

// DeleteRestaurant asks the backend first and removes the listing from the
// local snapshot only once the backend confirms.
func (d *Dashboard) DeleteRestaurant(ctx context.Context, restaurantID domain.ID) error {
	if err := d.restaurants.Delete(ctx, d.token, restaurantID); err != nil {
		d.mu.Lock()
		d.lastError = "Failed to delete restaurant"
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.list[:0]
	for _, r := range d.list {
		if r.ID != restaurantID {
			kept = append(kept, r)
		}
	}
	d.list = kept
	delete(d.aggregates, restaurantID)
	return nil
}

// Error returns the banner message from the last failed load, empty when
// the last load succeeded.
func (d *Dashboard) Error() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastError
}

// Categories returns the loaded category filter options.
func (d *Dashboard) Categories() []domain.Category {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Category, len(d.categorySet))
	copy(out, d.categorySet)
	return out
}

// Filters returns a copy of the current filter selection.
func (d *Dashboard) Filters() Filters {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filters
}

// RecomputeRatings synchronously refetches the aggregates for the current
// list. The background fan-out spawned by Load calls the same path.
func (d *Dashboard) RecomputeRatings(ctx context.Context) {
	d.mu.Lock()
	gen := d.generation
	ids := listIDs(d.list)
	d.mu.Unlock()
	d.fetchRatings(ctx, gen, ids)
}

func (d *Dashboard) begin() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	return d.generation
}

func (d *Dashboard) ensureCategories(ctx context.Context) {
	d.mu.Lock()
	loaded := d.categorySet != nil
	d.mu.Unlock()
	if loaded {
		return
	}

	cats, err := d.categories.List(ctx)
	if err != nil {
		// Non-fatal: the category filter simply stays empty.
		d.log.Warn().Err(err).Msg("failed to load categories")
		return
	}
	d.mu.Lock()
	d.categorySet = cats
	d.mu.Unlock()
}

func (d *Dashboard) loadList(ctx context.Context, gen uint64) {
	d.mu.Lock()
	category := d.filters.Category
	d.mu.Unlock()

	var list []domain.Restaurant
	var err error
	if category == CategoryAll {
		list, err = d.restaurants.List(ctx)
	} else {
		list, err = d.restaurants.ListByCategory(ctx, domain.ID(category))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		return // superseded by a newer load
	}
	if err != nil {
		d.log.Error().Err(err).Str("category", category).Msg("failed to load restaurants")
		d.lastError = "Failed to load restaurants"
		return // prior data is retained
	}

	if d.identity.IsOwner() {
		owned := make([]domain.Restaurant, 0, len(list))
		for _, r := range list {
			if r.OwnedBy(d.identity) {
				owned = append(owned, r)
			}
		}
		list = owned
	}
	d.list = list
	d.lastError = ""
}

func (d *Dashboard) loadFavorites(ctx context.Context, gen uint64) {
	favs, err := d.favorites.List(ctx, d.token)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		return
	}
	if err != nil {
		d.log.Error().Err(err).Msg("failed to load favorites")
		d.lastError = "Failed to load favorites"
		return
	}

	set := make(map[domain.ID]struct{}, len(favs))
	for _, f := range favs {
		set[f.RestaurantID] = struct{}{}
	}
	d.favoriteSet = set
}

func (d *Dashboard) spawnRatings(gen uint64) {
	d.mu.Lock()
	ids := listIDs(d.list)
	d.mu.Unlock()
	if len(ids) == 0 {
		return
	}
	// Detached from the request: the grid renders before aggregates land.
	go d.fetchRatings(context.Background(), gen, ids)
}

func (d *Dashboard) fetchRatings(ctx context.Context, gen uint64, ids []domain.ID) {
	aggs := d.ratings.Fetch(ctx, ids)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		return
	}
	for id, agg := range aggs {
		d.aggregates[id] = agg
	}
}

func listIDs(list []domain.Restaurant) []domain.ID {
	ids := make([]domain.ID, len(list))
	for i, r := range list {
		ids[i] = r.ID
	}
	return ids
}

// parseFloor interprets a rating floor selection: "all" means no floor and
// only integer floors 1 through 4 are meaningful.
func parseFloor(value string) (float64, bool) {
	if value == "" || value == RatingAll {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > 4 {
		return 0, false
	}
	return float64(n), true
}
