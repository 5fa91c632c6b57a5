// Package pagination computes the bounded page-button window used by every
// paginated list view. Pages are 0-based to match the backend's page meta.
package pagination

import (
	"fmt"
	"net/url"
)

const windowSize = 5

// Window returns at most windowSize page indexes around current.
func Window(current, total int) []int {
	if total <= 1 {
		return nil
	}
	current = clamp(current, total)

	var lo int
	switch {
	case total <= windowSize:
		lo = 0
		windowed := make([]int, total)
		for i := range windowed {
			windowed[i] = i
		}
		return windowed
	case current < 3:
		lo = 0
	case current > total-4:
		lo = total - windowSize
	default:
		lo = current - 2
	}
	out := make([]int, windowSize)
	for i := range out {
		out[i] = lo + i
	}
	return out
}

// Control is the stateless view-model a template renders as page buttons.
// It carries no behavior; the handler owning the list refetches on change.
type Control struct {
	Current int
	Total   int
	Pages   []int
	HasPrev bool
	HasNext bool
	Last    int

	// filter is the encoded query string every page link re-carries, so
	// paging a filtered list keeps the filter.
	filter string
}

func NewControl(current, total int) Control {
	if total <= 1 {
		return Control{}
	}
	current = clamp(current, total)
	return Control{
		Current: current,
		Total:   total,
		Pages:   Window(current, total),
		HasPrev: current > 0,
		HasNext: current < total-1,
		Last:    total - 1,
	}
}

func (c Control) Empty() bool { return len(c.Pages) == 0 }

func (c Control) Prev() int { return c.Current - 1 }
func (c Control) Next() int { return c.Current + 1 }

// WithFilter threads a query pair through every page link. Empty values
// add nothing.
func (c Control) WithFilter(key, value string) Control {
	if key != "" && value != "" {
		c.filter = url.Values{key: {value}}.Encode()
	}
	return c
}

// Href is the link target for a page index, filter included.
func (c Control) Href(page int) string {
	if c.filter == "" {
		return fmt.Sprintf("?page=%d", page)
	}
	return fmt.Sprintf("?%s&page=%d", c.filter, page)
}

func clamp(current, total int) int {
	if current < 0 {
		return 0
	}
	if current > total-1 {
		return total - 1
	}
	return current
}
