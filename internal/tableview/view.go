package tableview

import (
	"customer-dashboard/internal/domain/customer"
	"strings"
)

// PageCount is computed over the full set, whether or not a search is active.
func (s State) PageCount() int {
	size := s.PageSize()
	return (len(s.records) + size - 1) / size
}

func (s State) HasPrev() bool { return s.Page() > 1 }
func (s State) HasNext() bool { return s.Page() < s.PageCount() }

// PageNumbers returns the page links 1..PageCount.
func (s State) PageNumbers() []int {
	n := s.PageCount()
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

func (s State) SearchActive() bool { return s.search != "" }

// Visible returns the view set. With a search active it is every match in
// the full set, not only the current page's slice.
func (s State) Visible() []*customer.Customer {
	if s.SearchActive() {
		return Filter(s.records, s.search)
	}
	size := s.PageSize()
	start := (s.Page() - 1) * size
	if start >= len(s.records) {
		return []*customer.Customer{}
	}
	end := min(start+size, len(s.records))
	out := make([]*customer.Customer, end-start)
	copy(out, s.records[start:end])
	return out
}

// Filter keeps the records whose name or location contains text, ignoring
// case. Order is preserved. An empty text matches everything.
func Filter(records []*customer.Customer, text string) []*customer.Customer {
	needle := strings.ToLower(text)
	out := make([]*customer.Customer, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Location), needle) {
			out = append(out, r)
		}
	}
	return out
}
