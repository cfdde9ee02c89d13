// Package pagination is the generic table engine behind every listing
// screen: case-insensitive substring search on one accessor, fixed-size
// pages, and a bounded window of page buttons. One engine, zero per-entity
// boilerplate.
package pagination

import "strings"

const (
	// DefaultPerPage matches the dashboard's table default.
	DefaultPerPage = 10

	// maxVisiblePages bounds the page-button window.
	maxVisiblePages = 5
)

// Options configures one table instance.
type Options struct {
	// PerPage is the page size, DefaultPerPage when zero or negative.
	PerPage int

	// ClampPage pulls the current page back into range whenever the data
	// set shrinks underneath it. Off by default: the legacy behavior leaves
	// a blank page after deleting the last item of the last page, and the
	// product has not signed off on changing that.
	ClampPage bool
}

// Page is the envelope a listing endpoint returns.
type Page[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int   `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	PageNumbers []int `json:"page_numbers"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
}

// Table holds the ephemeral view-state of one listing: the full data set,
// the active search term, and the current page. It is built per request and
// never persisted.
type Table[T any] struct {
	opts     Options
	key      func(T) string
	data     []T
	filtered []T
	term     string
	page     int
}

// New builds a table over data. key is the search accessor; nil disables
// search entirely.
func New[T any](data []T, key func(T) string, opts Options) *Table[T] {
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	t := &Table[T]{opts: opts, key: key, page: 1}
	t.data = data
	t.filtered = data
	return t
}

// SetData swaps the underlying data set, reapplying the active search term.
// The current page is left alone unless ClampPage is set.
func (t *Table[T]) SetData(data []T) {
	t.data = data
	t.filtered = t.filter(t.term)
	if t.opts.ClampPage {
		t.page = clamp(t.page, t.TotalPages())
	}
}

// Search applies a term and resets to the first page, whatever page the
// viewer was on before.
func (t *Table[T]) Search(term string) {
	t.term = term
	t.filtered = t.filter(term)
	t.page = 1
}

func (t *Table[T]) filter(term string) []T {
	if term == "" || t.key == nil {
		return t.data
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(t.data))
	for _, item := range t.data {
		if strings.Contains(strings.ToLower(t.key(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Goto moves to the requested page. Pages below 1 floor at 1; pages beyond
// the end are allowed and simply show an empty slice (see Options.ClampPage).
func (t *Table[T]) Goto(page int) {
	if page < 1 {
		page = 1
	}
	t.page = page
}

// Next advances one page, stopping at the last.
func (t *Table[T]) Next() {
	if t.page < t.TotalPages() {
		t.page++
	}
}

// Prev goes back one page, stopping at the first.
func (t *Table[T]) Prev() {
	if t.page > 1 {
		t.page--
	}
}

func (t *Table[T]) CurrentPage() int { return t.page }

func (t *Table[T]) TotalPages() int {
	n := len(t.filtered)
	k := t.opts.PerPage
	return (n + k - 1) / k
}

// Slice returns the rows visible on the current page:
// filtered[(page-1)*perPage : page*perPage], bounds-checked.
func (t *Table[T]) Slice() []T {
	start := (t.page - 1) * t.opts.PerPage
	if start >= len(t.filtered) {
		return []T{}
	}
	end := start + t.opts.PerPage
	if end > len(t.filtered) {
		end = len(t.filtered)
	}
	return t.filtered[start:end]
}

// PageNumbers returns at most maxVisiblePages consecutive page numbers
// centered on the current page and clamped to [1, totalPages].
func (t *Table[T]) PageNumbers() []int {
	total := t.TotalPages()
	if total == 0 {
		return []int{}
	}
	start := t.page - maxVisiblePages/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisiblePages - 1
	if end > total {
		end = total
	}
	if end-start+1 < maxVisiblePages {
		start = end - maxVisiblePages + 1
		if start < 1 {
			start = 1
		}
	}
	nums := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		nums = append(nums, i)
	}
	return nums
}

// Page assembles the response envelope for the current view-state.
func (t *Table[T]) Page() Page[T] {
	total := t.TotalPages()
	return Page[T]{
		Items:       t.Slice(),
		CurrentPage: t.page,
		PerPage:     t.opts.PerPage,
		TotalItems:  len(t.filtered),
		TotalPages:  total,
		PageNumbers: t.PageNumbers(),
		HasPrev:     t.page > 1,
		HasNext:     t.page < total,
	}
}

func clamp(page, total int) int {
	if total < 1 {
		return 1
	}
	if page > total {
		return total
	}
	if page < 1 {
		return 1
	}
	return page
}
