package query

import (
	"sort"

	"github.com/aslcolakogluu/spotted/models"
)

// Rank orders a candidate set by the selected strategy. The sort is stable so
// ties keep their prior relative order, which keeps pagination deterministic
// across repeated calls. The input slice is never mutated.
func Rank(spots []models.Spot, by SortOption) []models.Spot {
	ranked := make([]models.Spot, len(spots))
	copy(ranked, spots)

	switch by {
	case SortRating:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Rating > ranked[j].Rating
		})
	case SortMostReviewed:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].ReviewCount > ranked[j].ReviewCount
		})
	case SortNewest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
		})
	default:
		// relevance, distance and anything unrecognized keep collection order.
	}

	return ranked
}

// TopRankings returns the n best spots by rating x review count, for the
// sidebar ranking view. Unrated spots score 0 and sink to the bottom.
func TopRankings(spots []models.Spot, n int) []models.Spot {
	ranked := make([]models.Spot, len(spots))
	copy(ranked, spots)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating*float64(ranked[i].ReviewCount) >
			ranked[j].Rating*float64(ranked[j].ReviewCount)
	})

	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
