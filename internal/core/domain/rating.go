package domain

import (
	"math"
	"strings"
)

// RatingAggregate is derived, never persisted: the sum and count of ratings
// for one restaurant, recomputed whenever its reviews are fetched. The zero
// value (no reviews) is valid and renders as zero stars, never a
// divide-by-zero.
type RatingAggregate struct {
	Total int `json:"total"`
	Count int `json:"count"`
}

// Fold accumulates a review set into an aggregate.
func Fold(reviews []Review) RatingAggregate {
	var agg RatingAggregate
	for _, r := range reviews {
		agg.Total += r.Rating
		agg.Count++
	}
	return agg
}

// Average returns total/count rounded to one decimal, or 0 when the
// aggregate is empty.
func (a RatingAggregate) Average() float64 {
	if a.Count == 0 {
		return 0
	}
	return math.Round(float64(a.Total)/float64(a.Count)*10) / 10
}

// Stars renders the average as a repeated star symbol. An empty aggregate
// yields an empty string.
func (a RatingAggregate) Stars() string {
	return strings.Repeat("⭐", int(math.Round(a.Average())))
}
