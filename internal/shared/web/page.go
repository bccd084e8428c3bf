package web

import "github.com/Apurer/go-persistence-examples/internal/shared/paging"

// PageResponse is the JSON envelope for paged results.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPageResponse maps page content into its transport shape.
func NewPageResponse[T, R any](page paging.Page[T], fn func(T) R) PageResponse[R] {
	mapped := paging.Map(page, fn)
	return PageResponse[R]{
		Content:       mapped.Content,
		Page:          mapped.PageNumber,
		Size:          mapped.PageSize,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
	}
}
