// Package caldate implements a timezone-naive calendar date.
//
// A Date carries only year, month and day. All arithmetic runs on UTC
// midnights, so the process time zone never shifts a date by one day.
package caldate

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var ErrInvalidFormat = errors.New("invalid calendar date")

// Date is a calendar day. The zero value means "no date".
type Date struct {
	year  int
	month time.Month
	day   int
}

// New normalizes out-of-range values the way time.Date does,
// so New(2024, 2, 30) is 2024-03-01.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime takes the calendar fields of value in its own location.
func FromTime(value time.Time) Date {
	year, month, day := value.Date()
	return Date{year: year, month: month, day: day}
}

// Today returns the current calendar date in location (UTC when nil).
func Today(location *time.Location) Date {
	if location == nil {
		location = time.UTC
	}
	return FromTime(time.Now().In(location))
}

func Parse(raw string) (Date, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Date{}, fmt.Errorf("%w: empty value", ErrInvalidFormat)
	}
	parsed, err := time.ParseInLocation(Layout, trimmed, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	return FromTime(parsed), nil
}

// MustParse is for tests and static data.
func MustParse(raw string) Date {
	parsed, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return parsed
}

func FirstOfMonth(year int, month time.Month) Date {
	return New(year, month, 1)
}

func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) Year() int { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int { return d.day }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(Layout)
}

func (d Date) AddDays(days int) Date {
	return FromTime(d.Time().AddDate(0, 0, days))
}

func (d Date) AddMonths(months int) Date {
	return FromTime(d.Time().AddDate(0, months, 0))
}

// DaysUntil returns other − d in whole days; negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.dayNumber() - d.dayNumber())
}

// dayNumber counts days since 1970-01-01. Time is always a UTC midnight,
// so the division is exact for dates on either side of the epoch.
func (d Date) dayNumber() int64 {
	return d.Time().Unix() / secondsPerDay
}

func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return compareInts(d.year, other.year)
	case d.month != other.month:
		return compareInts(int(d.month), int(other.month))
	default:
		return compareInts(d.day, other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// Between reports start <= d <= end.
func (d Date) Between(start Date, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// AbsDaysBetween is |a − b| in whole days.
func AbsDaysBetween(a Date, b Date) int {
	days := a.DaysUntil(b)
	if days < 0 {
		return -days
	}
	return days
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores d as TEXT, or NULL for the zero date.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(value any) error {
	switch typed := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		return d.UnmarshalText([]byte(typed))
	case []byte:
		return d.UnmarshalText(typed)
	case time.Time:
		*d = FromTime(typed)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, value)
	}
}

func compareInts(a int, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
