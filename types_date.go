package brick

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a calendar date with day-level granularity and no
// time-of-day. Expenses are dated this way; items and sales carry full
// timestamps instead.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DateOf returns the Date of the instant t.
func DateOf(t time.Time) Date { return NewDate(t.Date()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Month identifies one calendar month, the bucket granularity of the
// monthly rollup.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns the Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	// Normalize through time.Date so that month 13 carries into the next year.
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// MonthOf returns the Month containing the instant t.
func MonthOf(t time.Time) Month { return NewMonth(t.Year(), t.Month()) }

// MonthOfDate returns the Month containing the date d.
func MonthOfDate(d Date) Month { return NewMonth(d.Year(), d.Month()) }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of year.
func (m Month) Month() time.Month { return m.m }

// AddMonths returns the Month i months after m (i may be negative).
func (m Month) AddMonths(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// String formats the month as "2006-01".
func (m Month) String() string { return m.first().Format("2006-01") }

// Label formats the month for display, e.g. "Jan 06".
func (m Month) Label() string { return m.first().Format("Jan 06") }

// Contains reports whether the instant t falls in this calendar month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.y && t.Month() == m.m
}

// ContainsDate reports whether the date d falls in this calendar month.
func (m Month) ContainsDate(d Date) bool {
	return d.Year() == m.y && d.Month() == m.m
}

func (m Month) first() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }
