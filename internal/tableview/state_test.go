package tableview

import (
	"customer-dashboard/internal/domain/customer"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

func fixtures() []*customer.Customer {
	return []*customer.Customer{
		{Serial: 3, Name: "Carol", Age: 41, Phone: "555-0103", Location: "Chicago", CreatedAt: baseTime.Add(48 * time.Hour)},
		{Serial: 1, Name: "Alice", Age: 30, Phone: "555-0101", Location: "NYC", CreatedAt: baseTime},
		{Serial: 5, Name: "eve", Age: 30, Phone: "555-0105", Location: "nyc", CreatedAt: baseTime.Add(-time.Hour)},
		{Serial: 2, Name: "Bob", Age: 25, Phone: "555-0102", Location: "LA", CreatedAt: baseTime.Add(2 * time.Hour)},
		{Serial: 4, Name: "Dan", Age: 52, Phone: "555-0104", Location: "Boston", CreatedAt: baseTime.Add(24 * time.Hour)},
	}
}

func manyRecords(n int) []*customer.Customer {
	out := make([]*customer.Customer, n)
	for i := range out {
		out[i] = &customer.Customer{
			Serial:    int64(i + 1),
			Name:      fmt.Sprintf("Customer %02d", i+1),
			Age:       20 + i%40,
			Location:  "City",
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}

func serials(records []*customer.Customer) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.Serial
	}
	return out
}

func TestParseColumn(t *testing.T) {
	c, err := ParseColumn(" Customer_Name ")
	require.NoError(t, err)
	assert.Equal(t, ColumnName, c)

	_, err = ParseColumn("email")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestNewState(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := NewState(fixtures(), 0)
		assert.Equal(t, DefaultPageSize, s.PageSize())
		assert.Equal(t, 1, s.Page())
		assert.Empty(t, s.SearchText())
		for _, c := range Columns {
			assert.Equal(t, Ascending, s.Direction(c), "column %s", c)
		}
	})

	t.Run("copies the input slice", func(t *testing.T) {
		in := fixtures()
		s := NewState(in, 10)
		in[0] = nil
		assert.NotNil(t, s.Records()[0])
	})
}

func TestSearch(t *testing.T) {
	t.Run("matches name or location ignoring case", func(t *testing.T) {
		s := NewState(fixtures(), 10).Search("nyc")
		assert.Equal(t, []int64{1, 5}, serials(s.Visible()))
	})

	t.Run("every result contains the text and nothing else is left out", func(t *testing.T) {
		records := fixtures()
		for _, text := range []string{"a", "O", "li", "ny", "zzz", "E"} {
			got := NewState(records, 2).Search(text).Visible()
			needle := strings.ToLower(text)
			contains := func(r *customer.Customer) bool {
				return strings.Contains(strings.ToLower(r.Name), needle) ||
					strings.Contains(strings.ToLower(r.Location), needle)
			}
			for _, r := range got {
				assert.True(t, contains(r), "%q should not match %+v", text, r)
			}
			expected := 0
			for _, r := range records {
				if contains(r) {
					expected++
				}
			}
			assert.Len(t, got, expected, "text %q", text)
		}
	})

	t.Run("bypasses pagination", func(t *testing.T) {
		s := NewState(manyRecords(25), 10).Search("customer")
		assert.Len(t, s.Visible(), 25)
	})

	t.Run("clearing the search restores the page slice", func(t *testing.T) {
		s := NewState(manyRecords(25), 10).Search("customer").Search("")
		assert.False(t, s.SearchActive())
		assert.Len(t, s.Visible(), 10)
	})

	t.Run("does not change the receiver", func(t *testing.T) {
		s := NewState(fixtures(), 10)
		_ = s.Search("bob")
		assert.Empty(t, s.SearchText())
	})
}

func TestSort(t *testing.T) {
	t.Run("first activation is ascending then toggles", func(t *testing.T) {
		s := NewState(fixtures(), 10)

		s, err := s.Sort(ColumnSerial)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 4, 5}, serials(s.Records()))
		assert.Equal(t, Descending, s.Direction(ColumnSerial))

		s, err = s.Sort(ColumnSerial)
		require.NoError(t, err)
		assert.Equal(t, []int64{5, 4, 3, 2, 1}, serials(s.Records()))
		assert.Equal(t, Ascending, s.Direction(ColumnSerial))
	})

	t.Run("directions are independent per column", func(t *testing.T) {
		s, err := NewState(fixtures(), 10).Sort(ColumnAge)
		require.NoError(t, err)
		assert.Equal(t, Descending, s.Direction(ColumnAge))
		assert.Equal(t, Ascending, s.Direction(ColumnName))
	})

	t.Run("strings compare lexicographically", func(t *testing.T) {
		s, err := NewState(fixtures(), 10).Sort(ColumnName)
		require.NoError(t, err)
		// lowercase sorts after uppercase byte-wise
		assert.Equal(t, []int64{1, 2, 3, 4, 5}, serials(s.Records()))
	})

	t.Run("numbers compare numerically and ties keep order", func(t *testing.T) {
		records := []*customer.Customer{
			{Serial: 1, Age: 100}, {Serial: 2, Age: 9}, {Serial: 3, Age: 9}, {Serial: 4, Age: 20},
		}
		s, err := NewState(records, 10).Sort(ColumnAge)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 4, 1}, serials(s.Records()))
	})

	t.Run("date and time order by the full instant", func(t *testing.T) {
		for _, col := range []Column{ColumnDate, ColumnTime} {
			s, err := NewState(fixtures(), 10).Sort(col)
			require.NoError(t, err)
			assert.Equal(t, []int64{5, 1, 2, 4, 3}, serials(s.Records()), "column %s", col)
		}
	})

	t.Run("each toggle inverts the comparator order", func(t *testing.T) {
		for _, col := range Columns {
			s := NewState(fixtures(), 10)
			asc, err := s.Sort(col)
			require.NoError(t, err)
			desc, err := asc.Sort(col)
			require.NoError(t, err)

			a, d := asc.Records(), desc.Records()
			for i := 1; i < len(a); i++ {
				assert.LessOrEqual(t, compareBy(col, a[i-1], a[i]), 0, "asc %s at %d", col, i)
				assert.GreaterOrEqual(t, compareBy(col, d[i-1], d[i]), 0, "desc %s at %d", col, i)
			}
		}
	})

	t.Run("reorders the full set so pagination follows", func(t *testing.T) {
		s := NewState(manyRecords(25), 10)
		s, err := s.Sort(ColumnSerial)
		require.NoError(t, err)
		s, err = s.Sort(ColumnSerial)
		require.NoError(t, err)
		assert.Equal(t, int64(25), s.Visible()[0].Serial)
	})

	t.Run("leaves records and receiver untouched", func(t *testing.T) {
		records := fixtures()
		before := *records[0]
		s := NewState(records, 10)
		_, err := s.Sort(ColumnName)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1, 5, 2, 4}, serials(s.Records()))
		assert.Equal(t, Ascending, s.Direction(ColumnName))
		assert.Equal(t, before, *records[0])
	})

	t.Run("unknown column", func(t *testing.T) {
		s := NewState(fixtures(), 10)
		_, err := s.Sort(Column("email"))
		assert.ErrorIs(t, err, ErrUnknownColumn)
	})

	t.Run("zero state can be sorted", func(t *testing.T) {
		var s State
		s, err := s.WithRecords(fixtures()).Sort(ColumnSerial)
		require.NoError(t, err)
		assert.Equal(t, Descending, s.Direction(ColumnSerial))
	})
}

func TestPagination(t *testing.T) {
	t.Run("no page exceeds the page size", func(t *testing.T) {
		for _, size := range []int{1, 3, 10, 20} {
			s := NewState(manyRecords(47), size)
			total := 0
			for {
				assert.LessOrEqual(t, len(s.Visible()), size)
				total += len(s.Visible())
				if !s.HasNext() {
					break
				}
				var err error
				s, err = s.NextPage()
				require.NoError(t, err)
			}
			assert.Equal(t, 47, total, "size %d", size)
		}
	})

	t.Run("fewer records than one page", func(t *testing.T) {
		s := NewState(fixtures(), 10)
		assert.Len(t, s.Visible(), 5)
		assert.Equal(t, 1, s.PageCount())
		assert.False(t, s.HasPrev())
		assert.False(t, s.HasNext())
		assert.Equal(t, []int{1}, s.PageNumbers())
	})

	t.Run("empty set", func(t *testing.T) {
		s := NewState(nil, 10)
		assert.Empty(t, s.Visible())
		assert.Equal(t, 0, s.PageCount())
		assert.False(t, s.HasPrev())
		assert.False(t, s.HasNext())
		assert.Empty(t, s.PageNumbers())
	})

	t.Run("out of range moves are rejected", func(t *testing.T) {
		s := NewState(manyRecords(25), 10)

		_, err := s.PrevPage()
		assert.ErrorIs(t, err, ErrPageOutOfRange)

		s, err = s.GoToPage(3)
		require.NoError(t, err)
		assert.Len(t, s.Visible(), 5)
		assert.True(t, s.HasPrev())
		assert.False(t, s.HasNext())

		same, err := s.NextPage()
		assert.ErrorIs(t, err, ErrPageOutOfRange)
		assert.Equal(t, 3, same.Page())

		_, err = s.GoToPage(0)
		assert.ErrorIs(t, err, ErrPageOutOfRange)
	})

	t.Run("page links cover every page", func(t *testing.T) {
		s := NewState(manyRecords(21), 10)
		assert.Equal(t, []int{1, 2, 3}, s.PageNumbers())
	})

	t.Run("page count ignores the search", func(t *testing.T) {
		s := NewState(manyRecords(25), 10).Search("Customer 01")
		assert.Equal(t, 3, s.PageCount())
		assert.Len(t, s.Visible(), 1)
	})

	t.Run("new records reset to the first page", func(t *testing.T) {
		s, err := NewState(manyRecords(25), 10).GoToPage(2)
		require.NoError(t, err)
		s = s.WithRecords(manyRecords(3))
		assert.Equal(t, 1, s.Page())
	})
}

func TestSearchEndToEnd(t *testing.T) {
	records := []*customer.Customer{
		{Serial: 1, Name: "Alice", Location: "NYC"},
		{Serial: 2, Name: "Bob", Location: "LA"},
	}
	got := NewState(records, 10).Search("nyc").Visible()
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Name)
}
