package query

import "github.com/aslcolakogluu/spotted/models"

// Run executes the full pipeline over one repository snapshot:
// filter by the descriptor's predicate, rank by its sort strategy, then slice
// out the requested page. It is pure: identical inputs always produce an
// identical Page, and the snapshot is never mutated. Callers re-run it
// whenever the snapshot or the descriptor changes.
func Run(spots []models.Spot, d Descriptor) Page {
	filtered := Filter(spots, BuildPredicate(d))
	ranked := Rank(filtered, d.SortBy)
	return Paginate(ranked, d.Page, d.PageSize)
}
