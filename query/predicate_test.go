package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aslcolakogluu/spotted/models"
)

func testSpots() []models.Spot {
	return []models.Spot{
		{ID: "1", Name: "City Bridge", Type: models.SpotTypeBridge, Address: "Kızılay, Ankara", Description: "Historic iron bridge", Rating: 4.5, ReviewCount: 127},
		{ID: "2", Name: "Art Gallery", Type: models.SpotTypeMuseum, Address: "Kavaklıdere, Ankara", Description: "Modern art pieces", Rating: 4.6, ReviewCount: 156},
		{ID: "3", Name: "City Park", Type: models.SpotTypePark, Address: "Ulus, Ankara", Description: "Spacious park", Rating: 3.2, ReviewCount: 89},
		{ID: "4", Name: "Riverside Courts", Type: models.SpotTypeSports, Address: "Bahçelievler, Ankara", Description: "Open-air courts", Rating: 0, ReviewCount: 0},
		{ID: "5", Name: "Sunset Hill", Type: models.SpotTypeNature, Address: "Çankaya, Ankara", Description: "Sunset viewpoint", Rating: 4.8, ReviewCount: 234},
	}
}

func ids(spots []models.Spot) []string {
	out := make([]string, len(spots))
	for i, s := range spots {
		out[i] = s.ID
	}
	return out
}

func TestPredicateEmptyDescriptorPassesEverything(t *testing.T) {
	d := NewDescriptor(9)
	got := Filter(testSpots(), BuildPredicate(d))
	assert.Len(t, got, 5)
}

func TestPredicateCategoryFilter(t *testing.T) {
	d := NewDescriptor(9).WithTypes(models.SpotTypePark, models.SpotTypeMuseum)
	got := Filter(testSpots(), BuildPredicate(d))
	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestPredicateUnrecognizedStoredCategoryDoesNotPanic(t *testing.T) {
	spots := []models.Spot{{ID: "x", Type: models.SpotType("volcano")}}
	d := NewDescriptor(9).WithTypes(models.SpotTypePark)

	assert.NotPanics(t, func() {
		got := Filter(spots, BuildPredicate(d))
		assert.Empty(t, got)
	})
}

func TestPredicateRatingBands(t *testing.T) {
	tests := []struct {
		name  string
		bands []int
		want  []string
	}{
		{"no bands selected passes all", nil, []string{"1", "2", "3", "4", "5"}},
		{"five star band", []int{BandFiveStars}, []string{"1", "2", "4", "5"}}, // 4.5, 4.6, 4.8 round to 5
		{"four star band", []int{BandFourStars}, []string{"4"}},
		{"three and below", []int{BandThreeAndBelow}, []string{"3", "4"}},
		{"four plus three", []int{BandFourStars, BandThreeAndBelow}, []string{"3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriptor(9).WithBands(tt.bands...)
			got := Filter(testSpots(), BuildPredicate(d))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// A spot with rating 0 is "not yet rated" and must never be hidden by the
// rating filter, whichever bands are selected.
func TestPredicateUnratedSpotAlwaysPasses(t *testing.T) {
	unrated := models.Spot{ID: "new", Rating: 0}

	for _, bands := range [][]int{nil, {BandFiveStars}, {BandFourStars}, {BandThreeAndBelow}, {BandFiveStars, BandFourStars, BandThreeAndBelow}} {
		d := NewDescriptor(9).WithBands(bands...)
		assert.True(t, BuildPredicate(d)(unrated), "bands %v", bands)
	}
}

func TestPredicateFreeTextSearch(t *testing.T) {
	d := NewDescriptor(9).WithSearch("kızılay")
	got := Filter(testSpots(), BuildPredicate(d))
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestPredicateSearchMatchesNameAddressDescription(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"city", []string{"1", "3"}},          // name
		{"ankara", []string{"1", "2", "3", "4", "5"}}, // address
		{"sunset", []string{"5"}},             // name and description
		{"  ", []string{"1", "2", "3", "4", "5"}},     // whitespace-only means no filtering
	}

	for _, tt := range tests {
		d := NewDescriptor(9).WithSearch(tt.query)
		got := Filter(testSpots(), BuildPredicate(d))
		assert.Equal(t, tt.want, ids(got), "query %q", tt.query)
	}
}

func TestPredicateVerifiedOnly(t *testing.T) {
	spots := []models.Spot{
		{ID: "v", IsVerified: true},
		{ID: "u", IsVerified: false},
	}

	d := NewDescriptor(9).WithVerifiedOnly(true)
	assert.Equal(t, []string{"v"}, ids(Filter(spots, BuildPredicate(d))))

	all := Filter(spots, BuildPredicate(NewDescriptor(9)))
	assert.Len(t, all, 2)
}

func TestPredicateDimensionsCombineWithAnd(t *testing.T) {
	d := NewDescriptor(9).
		WithTypes(models.SpotTypeBridge, models.SpotTypeNature).
		WithSearch("ankara").
		WithBands(BandFiveStars)
	got := Filter(testSpots(), BuildPredicate(d))
	assert.Equal(t, []string{"1", "5"}, ids(got))
}

func TestFilterNeverGrowsTheInput(t *testing.T) {
	spots := testSpots()
	descriptors := []Descriptor{
		NewDescriptor(9),
		NewDescriptor(9).WithTypes(models.SpotTypePark),
		NewDescriptor(9).WithBands(BandFourStars),
		NewDescriptor(9).WithSearch("bridge"),
	}

	for _, d := range descriptors {
		got := Filter(spots, BuildPredicate(d))
		assert.LessOrEqual(t, len(got), len(spots))
	}
}
