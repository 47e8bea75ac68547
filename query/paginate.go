package query

import "github.com/aslcolakogluu/spotted/models"

// EllipsisPage is the sentinel inserted into VisiblePages where a run of page
// numbers is collapsed. It is never a navigable page.
const EllipsisPage = -1

// Page is one window into a ranked, filtered result set.
type Page struct {
	Items        []models.Spot `json:"items"`
	TotalItems   int           `json:"totalItems"`
	TotalPages   int           `json:"totalPages"`
	VisiblePages []int         `json:"visiblePages"`
}

// Paginate slices an ordered sequence into the requested fixed-size page.
// An out-of-range page yields an empty slice rather than an error.
func Paginate(spots []models.Spot, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(spots)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start < 0 || start >= total {
		start, end = 0, 0
	} else if end > total {
		end = total
	}

	items := make([]models.Spot, end-start)
	copy(items, spots[start:end])

	return Page{
		Items:        items,
		TotalItems:   total,
		TotalPages:   totalPages,
		VisiblePages: visiblePages(totalPages, page),
	}
}

// visiblePages computes the page numbers shown in pagination controls.
// Seven or fewer pages are listed in full; beyond that the first and last
// pages always appear, with a window around the current page and ellipsis
// sentinels over the gaps.
func visiblePages(total, current int) []int {
	pages := make([]int, 0, 9)

	if total <= 7 {
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages = append(pages, 1)
	if current > 3 {
		pages = append(pages, EllipsisPage)
	}

	start := current - 1
	if start < 2 {
		start = 2
	}
	end := current + 1
	if end > total-1 {
		end = total - 1
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	if current < total-2 {
		pages = append(pages, EllipsisPage)
	}
	pages = append(pages, total)

	return pages
}
