package paging

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrUnknownSortProperty signals a sort key outside the repository allow-list.
var ErrUnknownSortProperty = errors.New("unknown sort property")

// Direction of a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order sorts by a single property.
type Order struct {
	Property  string
	Direction Direction
}

// Pageable requests a zero-based page of results.
type Pageable struct {
	PageNumber int
	PageSize   int
	Sort       []Order
}

// Of builds a Pageable for the given page and size.
func Of(page, size int, sort ...Order) Pageable {
	return Pageable{PageNumber: page, PageSize: size, Sort: sort}
}

// Normalize clamps page number and size into usable values.
func (p Pageable) Normalize() Pageable {
	if p.PageNumber < 0 {
		p.PageNumber = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if limit := MaxPageNumber(p.PageSize); p.PageNumber > limit {
		p.PageNumber = limit
	}
	return p
}

// MaxPageNumber is the highest page whose offset still fits in an int.
func MaxPageNumber(size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return math.MaxInt / size
}

// Offset is the number of rows skipped before the page starts.
func (p Pageable) Offset() int {
	n := p.Normalize()
	return n.PageNumber * n.PageSize
}

// OrderClause renders the sort as SQL, mapping properties through columns.
// Properties missing from columns yield ErrUnknownSortProperty.
func (p Pageable) OrderClause(columns map[string]string) (string, error) {
	if len(p.Sort) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(p.Sort))
	for _, o := range p.Sort {
		column, ok := columns[o.Property]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSortProperty, o.Property)
		}
		dir := "ASC"
		if strings.EqualFold(string(o.Direction), string(Desc)) {
			dir = "DESC"
		}
		parts = append(parts, column+" "+dir)
	}
	return strings.Join(parts, ", "), nil
}

// ParseSort parses "prop,dir" pairs such as "lastName,desc".
func ParseSort(values []string) []Order {
	orders := make([]Order, 0, len(values))
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		prop, dir, _ := strings.Cut(raw, ",")
		o := Order{Property: strings.TrimSpace(prop), Direction: Asc}
		if strings.EqualFold(strings.TrimSpace(dir), string(Desc)) {
			o.Direction = Desc
		}
		orders = append(orders, o)
	}
	return orders
}

// Page is a slice of results plus totals for the whole query.
type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
}

// NewPage assembles a page for the request that produced content.
func NewPage[T any](content []T, pageable Pageable, total int64) Page[T] {
	p := pageable.Normalize()
	totalPages := int(total) / p.PageSize
	if int(total)%p.PageSize > 0 {
		totalPages++
	}
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// Map converts the page content while keeping the paging metadata.
func Map[T, R any](page Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(page.Content))
	for _, item := range page.Content {
		out = append(out, fn(item))
	}
	return Page[R]{
		Content:       out,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

// Slice pages through an in-memory list. Used by the memory adapters.
func Slice[T any](items []T, pageable Pageable) Page[T] {
	p := pageable.Normalize()
	total := int64(len(items))
	start := p.Offset()
	if start < 0 || start > len(items) {
		start = len(items)
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return NewPage(append([]T{}, items[start:end]...), p, total)
}

// SortSlice orders items in place using per-property comparators.
// The comparator contract follows cmp.Compare. Unknown properties yield ErrUnknownSortProperty.
func SortSlice[T any](items []T, pageable Pageable, comparators map[string]func(a, b T) int) error {
	for _, o := range pageable.Sort {
		if _, ok := comparators[o.Property]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSortProperty, o.Property)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, o := range pageable.Sort {
			c := comparators[o.Property](items[i], items[j])
			if strings.EqualFold(string(o.Direction), string(Desc)) {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return nil
}
