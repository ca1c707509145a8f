// Package tableview derives the displayed customer table from the full record
// set: search, per-column sort toggles and fixed-size pagination.
//
// State is a value. Every transition returns a new State and leaves the
// receiver untouched, so transitions can be tested in isolation.
package tableview

import (
	"cmp"
	"customer-dashboard/internal/domain/customer"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const DefaultPageSize = 10

var (
	ErrUnknownColumn  = errors.New("unknown column")
	ErrPageOutOfRange = errors.New("page out of range")
)

type Column string

const (
	ColumnSerial   Column = "sno"
	ColumnName     Column = "customer_name"
	ColumnAge      Column = "age"
	ColumnPhone    Column = "phone"
	ColumnLocation Column = "location"
	ColumnDate     Column = "date"
	ColumnTime     Column = "time"
)

// Columns lists the table columns in display order.
var Columns = []Column{ColumnSerial, ColumnName, ColumnAge, ColumnPhone, ColumnLocation, ColumnDate, ColumnTime}

func ParseColumn(s string) (Column, error) {
	c := Column(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Columns, c) {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
	}
	return c, nil
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func (d Direction) flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

type State struct {
	records    []*customer.Customer
	search     string
	page       int
	pageSize   int
	directions map[Column]Direction
}

// NewState starts on page 1 with every column set to sort ascending on its
// first activation. A pageSize below 1 falls back to DefaultPageSize.
func NewState(records []*customer.Customer, pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	directions := make(map[Column]Direction, len(Columns))
	for _, c := range Columns {
		directions[c] = Ascending
	}
	return State{
		records:    slices.Clone(records),
		page:       1,
		pageSize:   pageSize,
		directions: directions,
	}
}

// WithRecords replaces the full record set and returns to page 1. Search text
// and sort directions are kept.
func (s State) WithRecords(records []*customer.Customer) State {
	s.records = slices.Clone(records)
	s.page = 1
	return s
}

// Records returns the full set in its current order.
func (s State) Records() []*customer.Customer { return slices.Clone(s.records) }

func (s State) SearchText() string { return s.search }
func (s State) Page() int          { return max(s.page, 1) }

func (s State) PageSize() int {
	if s.pageSize < 1 {
		return DefaultPageSize
	}
	return s.pageSize
}

// Direction reports the direction the next Sort on c will use.
func (s State) Direction(c Column) Direction { return s.directions[c] }

func (s State) Search(text string) State {
	s.search = text
	return s
}

// Sort reorders the full set by c using the column's pending direction, then
// flips that direction for the next activation. Other columns keep theirs.
func (s State) Sort(c Column) (State, error) {
	if !slices.Contains(Columns, c) {
		return s, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
	}
	dir := s.directions[c]

	sorted := slices.Clone(s.records)
	slices.SortStableFunc(sorted, func(a, b *customer.Customer) int {
		r := compareBy(c, a, b)
		if dir == Descending {
			return -r
		}
		return r
	})

	directions := maps.Clone(s.directions)
	if directions == nil {
		directions = make(map[Column]Direction, len(Columns))
	}
	directions[c] = dir.flip()

	s.records = sorted
	s.directions = directions
	return s, nil
}

func compareBy(c Column, a, b *customer.Customer) int {
	switch c {
	case ColumnSerial:
		return cmp.Compare(a.Serial, b.Serial)
	case ColumnName:
		return strings.Compare(a.Name, b.Name)
	case ColumnAge:
		return cmp.Compare(a.Age, b.Age)
	case ColumnPhone:
		return strings.Compare(a.Phone, b.Phone)
	case ColumnLocation:
		return strings.Compare(a.Location, b.Location)
	default:
		// date and time both order by the instant, never the formatted text.
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// GoToPage moves to page n. Pages outside 1..PageCount are rejected and the
// state is returned unchanged; page 1 is always valid.
func (s State) GoToPage(n int) (State, error) {
	if n < 1 || n > max(s.PageCount(), 1) {
		return s, fmt.Errorf("%w: %d (pages: %d)", ErrPageOutOfRange, n, s.PageCount())
	}
	s.page = n
	return s, nil
}

func (s State) NextPage() (State, error) { return s.GoToPage(s.Page() + 1) }
func (s State) PrevPage() (State, error) { return s.GoToPage(s.Page() - 1) }
