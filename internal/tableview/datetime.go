package tableview

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	DefaultDateLayout = "2006-01-02"
	DefaultTimeLayout = "15:04:05"
)

// DateTime is the display form of a created_at timestamp.
type DateTime struct {
	Date string
	Time string
}

// DateTimeFormat fixes the zone and layouts used for display. The zero value
// formats in UTC with the default layouts.
type DateTimeFormat struct {
	Location   *time.Location
	DateLayout string
	TimeLayout string
}

func NewDateTimeFormat(timezone, dateLayout, timeLayout string) (DateTimeFormat, error) {
	f := DateTimeFormat{DateLayout: dateLayout, TimeLayout: timeLayout}
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return DateTimeFormat{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
		f.Location = loc
	}
	return f, nil
}

func (f DateTimeFormat) Derive(t time.Time) DateTime {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	dateLayout, timeLayout := f.DateLayout, f.TimeLayout
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	local := t.In(loc)
	return DateTime{Date: local.Format(dateLayout), Time: local.Format(timeLayout)}
}

// Parse derives the display form of an ISO-8601 timestamp such as
// "2022-01-01T00:00:00.000Z".
func (f DateTimeFormat) Parse(iso string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid timestamp %q: %w", iso, err)
	}
	return f.Derive(t), nil
}

// ParseDateTime is Parse with the zero DateTimeFormat.
func ParseDateTime(iso string) (DateTime, error) {
	return DateTimeFormat{}.Parse(iso)
}
