package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aslcolakogluu/spotted/models"
)

func makeSpots(n int) []models.Spot {
	spots := make([]models.Spot, n)
	for i := range spots {
		spots[i] = models.Spot{ID: fmt.Sprintf("spot-%02d", i+1)}
	}
	return spots
}

func TestPaginateSlicesFixedSizePages(t *testing.T) {
	spots := makeSpots(25)

	first := Paginate(spots, 1, 9)
	assert.Len(t, first.Items, 9)
	assert.Equal(t, "spot-01", first.Items[0].ID)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 25, first.TotalItems)

	last := Paginate(spots, 3, 9)
	assert.Len(t, last.Items, 7)
	assert.Equal(t, "spot-19", last.Items[0].ID)
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate(nil, 1, 9)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.VisiblePages)
}

func TestPaginateOutOfRangePageYieldsEmptySlice(t *testing.T) {
	spots := makeSpots(10)

	assert.Empty(t, Paginate(spots, 99, 9).Items)
	assert.Empty(t, Paginate(spots, 0, 9).Items)
	assert.Empty(t, Paginate(spots, -3, 9).Items)
}

// Concatenating every page must reproduce the full set exactly, with no
// duplicates and no omissions.
func TestPaginateCoversTheWholeSequence(t *testing.T) {
	spots := makeSpots(47)
	pageSize := 9

	total := Paginate(spots, 1, pageSize).TotalPages
	var seen []string
	for page := 1; page <= total; page++ {
		for _, s := range Paginate(spots, page, pageSize).Items {
			seen = append(seen, s.ID)
		}
	}

	assert.Equal(t, ids(spots), seen)
}

func TestVisiblePagesShortListsShowEveryPage(t *testing.T) {
	page := Paginate(makeSpots(7*3), 2, 3) // 7 pages
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, page.VisiblePages)
}

func TestVisiblePagesEllipsisWindow(t *testing.T) {
	spots := makeSpots(10 * 3) // 10 pages at size 3

	tests := []struct {
		current int
		want    []int
	}{
		{1, []int{1, 2, -1, 10}},
		{2, []int{1, 2, 3, -1, 10}},
		{3, []int{1, 2, 3, 4, -1, 10}},
		{5, []int{1, -1, 4, 5, 6, -1, 10}},
		{8, []int{1, -1, 7, 8, 9, 10}},
		{10, []int{1, -1, 9, 10}},
	}

	for _, tt := range tests {
		page := Paginate(spots, tt.current, 3)
		assert.Equal(t, tt.want, page.VisiblePages, "current page %d", tt.current)
	}
}
