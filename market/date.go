package market

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the ISO-8601 calendar date layout used when writing dates.
const DateFormat = "2006-01-02"

// DefaultDateLayouts are tried in order when no layouts are configured.
// US month-first layouts win over day-first ones for ambiguous slashes.
var DefaultDateLayouts = []string{
	DateFormat,
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"20060102",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// Date is a calendar day with no time-of-day component.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date, so NewDate(2024, 1, 32) is 2024-02-01.
func NewDate(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// DateOf drops the time-of-day of t, keeping its calendar day in t's location.
func DateOf(t time.Time) Date { return NewDate(t.Date()) }

func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }
func (d Date) After(x Date) bool  { return d.Compare(x) > 0 }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// AddDays returns the date i days later (or earlier when i is negative).
func (d Date) AddDays(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmpInt(d.y, x.y)
	case d.m != x.m:
		return cmpInt(int(d.m), int(x.m))
	default:
		return cmpInt(d.d, x.d)
	}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateFormat)
}

// ParseDate tries each layout in turn. An empty layouts slice means DefaultDateLayouts.
func ParseDate(s string, layouts []string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: no layout of %d matched", s, len(layouts))
}

// MustParseDate is like ParseDate with the default layouts but panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s, nil)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
