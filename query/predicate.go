package query

import (
	"math"
	"strings"

	"github.com/aslcolakogluu/spotted/models"
)

// Predicate decides whether a single spot is included in a result set.
type Predicate func(models.Spot) bool

// BuildPredicate translates a descriptor into one composed predicate.
// Filter dimensions are ANDed together; choices within a dimension are ORed.
func BuildPredicate(d Descriptor) Predicate {
	search := strings.ToLower(strings.TrimSpace(d.Search))
	types := d.Types
	bands := d.Bands
	verifiedOnly := d.VerifiedOnly

	return func(s models.Spot) bool {
		if verifiedOnly && !s.IsVerified {
			return false
		}
		if !matchesTypes(s, types) {
			return false
		}
		if !matchesBands(s.Rating, bands) {
			return false
		}
		return matchesSearch(s, search)
	}
}

// Filter returns the spots accepted by p, in their original order.
func Filter(spots []models.Spot, p Predicate) []models.Spot {
	out := make([]models.Spot, 0, len(spots))
	for _, s := range spots {
		if p(s) {
			out = append(out, s)
		}
	}
	return out
}

func matchesTypes(s models.Spot, types []models.SpotType) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		// An unrecognized stored category simply never equals a requested one.
		if s.Type == t {
			return true
		}
	}
	return false
}

// matchesBands applies the star-band filter. A rating of 0 means "not yet
// rated" and always passes, so fresh spots are never hidden.
func matchesBands(rating float64, bands []int) bool {
	if len(bands) == 0 {
		return true
	}
	rounded := int(math.Round(rating))
	if rounded == 0 {
		return true
	}
	for _, band := range bands {
		switch band {
		case BandFiveStars:
			if rounded == 5 {
				return true
			}
		case BandFourStars:
			if rounded == 4 {
				return true
			}
		case BandThreeAndBelow:
			if rounded <= 3 {
				return true
			}
		}
	}
	return false
}

func matchesSearch(s models.Spot, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Address), query) ||
		(s.Description != "" && strings.Contains(strings.ToLower(s.Description), query))
}
