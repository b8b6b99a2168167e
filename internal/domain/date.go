package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate accepts YYYY-MM-DD or the relative phrases job boards print
// ("today", "yesterday", "3 days ago"). Relative phrases resolve against now.
func ParseDate(s string, now time.Time) (Date, error) {
	raw := strings.ToLower(strings.Join(strings.Fields(s), " "))
	today := DateOf(now)

	switch raw {
	case "":
		return Date{}, fmt.Errorf("empty date")
	case "today", "just now", "new":
		return today, nil
	case "yesterday", "1 day ago":
		return today.AddDays(-1), nil
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		return DateOf(t), nil
	}

	if rest, ok := strings.CutSuffix(raw, " days ago"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err == nil && n >= 0 {
			return today.AddDays(-n), nil
		}
	}
	if rest, ok := strings.CutSuffix(raw, "d ago"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err == nil && n >= 0 {
			return today.AddDays(-n), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) Equal(o Date) bool { return d == o }

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool { return o.Before(d) }

// AddDays normalizes through time.Date, so month and year boundaries roll over.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText only accepts the absolute form; relative phrases need a clock
// and are resolved by the store loader.
func (d *Date) UnmarshalText(b []byte) error {
	t, err := time.Parse(dateLayout, strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = DateOf(t)
	return nil
}
