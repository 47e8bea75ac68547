package controllers

// StandardResponse is the common envelope for API responses.
type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// PaginationMeta describes the page window of a list response. VisiblePages
// uses -1 as an ellipsis sentinel; clients must not treat it as a page.
type PaginationMeta struct {
	CurrentPage  int   `json:"currentPage"`
	PageSize     int   `json:"pageSize"`
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	VisiblePages []int `json:"visiblePages"`
}
