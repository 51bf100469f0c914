// Package query composes filter predicates, sort selection and page windowing
// into a deterministic plan shared by the car catalog and the rental ledger.
package query

import "math"

const (
	DefaultCatalogPageSize = 5
	DefaultLedgerPageSize  = 10
)

// Page is a 1-based page window. Non-positive inputs are corrected to 1.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"page_size"`
}

func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = 1
	}
	return Page{Number: number, Size: size}
}

// Offset saturates at math.MaxInt so a huge page number lands past the end
// of any result set instead of wrapping negative.
func (p Page) Offset() int {
	if p.Size > 0 && p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// TotalPages is ceil(totalItems / size), and 0 when there are no items.
func TotalPages(totalItems int64, size int) int {
	if totalItems <= 0 || size < 1 {
		return 0
	}
	return int((totalItems-1)/int64(size) + 1)
}

// Result is one page of a listing.
type Result[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	// NoResults is a display hint for an empty page, not a failure.
	NoResults bool `json:"no_results"`
}

func NewResult[T any](items []T, totalItems int64, p Page) *Result[T] {
	if items == nil {
		items = []T{}
	}
	return &Result[T]{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  TotalPages(totalItems, p.Size),
		CurrentPage: p.Number,
		PageSize:    p.Size,
		NoResults:   len(items) == 0,
	}
}
