package main

import (
	"customer-dashboard/internal/tableview"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

var columnTitles = map[tableview.Column]string{
	tableview.ColumnSerial:   "S.NO",
	tableview.ColumnName:     "CUSTOMER NAME",
	tableview.ColumnAge:      "AGE",
	tableview.ColumnPhone:    "PHONE",
	tableview.ColumnLocation: "LOCATION",
	tableview.ColumnDate:     "DATE",
	tableview.ColumnTime:     "TIME",
}

func render(w io.Writer, s tableview.State, format tableview.DateTimeFormat) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, 0, len(tableview.Columns))
	for _, c := range tableview.Columns {
		headers = append(headers, columnTitles[c]+" "+sortArrow(s.Direction(c)))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	rows := s.Visible()
	for _, r := range rows {
		dt := format.Derive(r.CreatedAt)
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			r.Serial, r.Name, r.Age, r.Phone, r.Location, dt.Date, dt.Time)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No records")
	}
	if s.SearchActive() {
		fmt.Fprintf(w, "%d match(es) for %q\n", len(rows), s.SearchText())
	}

	_, err := fmt.Fprintln(w, pager(s))
	return err
}

// sortArrow shows the direction the column will sort in on its next activation.
func sortArrow(d tableview.Direction) string {
	if d == tableview.Descending {
		return "↓"
	}
	return "↑"
}

// pager renders "< Prev  [1] 2 3  Next >", wrapping a disabled control in
// parentheses and the current page in brackets.
func pager(s tableview.State) string {
	control := func(label string, enabled bool) string {
		if enabled {
			return label
		}
		return "(" + label + ")"
	}

	links := make([]string, 0, s.PageCount())
	for _, n := range s.PageNumbers() {
		link := strconv.Itoa(n)
		if n == s.Page() {
			link = "[" + link + "]"
		}
		links = append(links, link)
	}

	parts := []string{control("< Prev", s.HasPrev())}
	if len(links) > 0 {
		parts = append(parts, strings.Join(links, " "))
	}
	parts = append(parts, control("Next >", s.HasNext()))
	return strings.Join(parts, "  ")
}
