package response

import "github.com/abuelosolos/Fara/internal/pkg/request"

// PageResponse is the standard wrapper for paginated list endpoints.
type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse wraps one page of items. Items is never null in the JSON.
func NewPageResponse[T any](items []T, params request.ListParams, total int) PageResponse[T] {
	if items == nil {
		items = make([]T, 0)
	}

	pages := 0
	if params.PageSize > 0 {
		pages = (total + params.PageSize - 1) / params.PageSize
	}

	return PageResponse[T]{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: pages,
	}
}
