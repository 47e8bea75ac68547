// Package query implements the spot query pipeline: a pure
// filter -> rank -> paginate chain over an in-memory spot collection.
package query

import "github.com/aslcolakogluu/spotted/models"

// SortOption selects the ordering applied to a filtered result set.
type SortOption string

const (
	SortRelevance    SortOption = "relevance"
	SortRating       SortOption = "rating"
	SortDistance     SortOption = "distance"
	SortNewest       SortOption = "newest"
	SortMostReviewed SortOption = "most_reviewed"
)

// ParseSortOption maps a raw string to a sort option. Unrecognized values
// degrade to relevance (no reordering) instead of failing.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortRating, SortDistance, SortNewest, SortMostReviewed:
		return SortOption(s)
	default:
		return SortRelevance
	}
}

// Star bands selectable in the rating filter. BandThreeAndBelow matches any
// rounded rating of 3 or less.
const (
	BandFiveStars     = 5
	BandFourStars     = 4
	BandThreeAndBelow = 3
)

// Descriptor is the value object describing one filter/sort/paginate request.
// The zero value is not useful; build one with NewDescriptor.
type Descriptor struct {
	Types        []models.SpotType
	Bands        []int
	Search       string
	VerifiedOnly bool
	SortBy       SortOption
	Page         int
	PageSize     int
}

// NewDescriptor returns an unfiltered descriptor positioned on page 1.
func NewDescriptor(pageSize int) Descriptor {
	return Descriptor{
		SortBy:   SortRelevance,
		Page:     1,
		PageSize: pageSize,
	}
}

// The With* methods return a copy with one dimension changed and the page
// reset to 1, so a narrowed result set never leaves the caller stranded on a
// page that no longer exists.

func (d Descriptor) WithTypes(types ...models.SpotType) Descriptor {
	d.Types = types
	d.Page = 1
	return d
}

func (d Descriptor) WithBands(bands ...int) Descriptor {
	d.Bands = bands
	d.Page = 1
	return d
}

func (d Descriptor) WithSearch(q string) Descriptor {
	d.Search = q
	d.Page = 1
	return d
}

func (d Descriptor) WithVerifiedOnly(v bool) Descriptor {
	d.VerifiedOnly = v
	d.Page = 1
	return d
}

func (d Descriptor) WithSort(s SortOption) Descriptor {
	d.SortBy = s
	d.Page = 1
	return d
}

// WithPage moves to another page without touching the filters.
func (d Descriptor) WithPage(page int) Descriptor {
	d.Page = page
	return d
}
