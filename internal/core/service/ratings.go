package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

const defaultRatingWorkers = 8

// ratingFetcher fans one review fetch per restaurant across a fixed set of
// workers and folds the results into a map keyed by restaurant id. The
// merge is commutative, so no ordering between the fetches is required.
type ratingFetcher struct {
	reviews ports.ReviewAPI
	workers int
	log     zerolog.Logger
}

func newRatingFetcher(reviews ports.ReviewAPI, workers int, log zerolog.Logger) *ratingFetcher {
	if workers <= 0 {
		workers = defaultRatingWorkers
	}
	return &ratingFetcher{reviews: reviews, workers: workers, log: log}
}

// Fetch returns an aggregate for every id. A failed fetch contributes the
// zero aggregate for its restaurant: "0 reviews" is the correct degraded
// display, never an error.
func (f *ratingFetcher) Fetch(ctx context.Context, ids []domain.ID) map[domain.ID]domain.RatingAggregate {
	type result struct {
		id  domain.ID
		agg domain.RatingAggregate
	}

	jobs := make(chan domain.ID)
	results := make(chan result)

	var wg sync.WaitGroup
	workers := f.workers
	if workers > len(ids) {
		workers = len(ids)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				reviews, err := f.reviews.ListByRestaurant(ctx, id)
				if err != nil {
					f.log.Warn().Err(err).Str("restaurant_id", id.String()).Msg("failed to fetch reviews")
					results <- result{id: id}
					continue
				}
				results <- result{id: id, agg: domain.Fold(reviews)}
			}
		}()
	}

	go func() {
		for _, id := range ids {
			jobs <- id
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	aggs := make(map[domain.ID]domain.RatingAggregate, len(ids))
	for r := range results {
		aggs[r.id] = r.agg
	}
	return aggs
}
