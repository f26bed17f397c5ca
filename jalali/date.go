// Package jalali provides a day-granularity date value in the Jalali
// (Persian) calendar, and conversions from and to the Gregorian calendar.
package jalali

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// DateFormat is the format used to represent Jalali dates as strings.
const DateFormat = "%04d/%02d/%02d"

// gregorianFormat is the layout accepted for Gregorian display strings.
const gregorianFormat = "2006/01/02"

// Date represents a Jalali date with day-level granularity.
type Date struct {
	y int // Jalali year
	m int // Jalali month, 1..12
	d int // Jalali day of month
}

// New returns the Date for the given Jalali year, month, and day.
// Out-of-range components are normalized through the calendar arithmetic.
func New(year, month, day int) Date {
	pt := ptime.Date(year, ptime.Month(month), day, 12, 0, 0, 0, ptime.Iran())
	return Date{pt.Year(), int(pt.Month()), pt.Day()}
}

// FromTime returns the Jalali date of the given instant.
func FromTime(t time.Time) Date {
	pt := ptime.New(t)
	return Date{pt.Year(), int(pt.Month()), pt.Day()}
}

// Today returns the current Jalali date.
func Today() Date { return FromTime(time.Now()) }

// Year returns the Jalali year.
func (d Date) Year() int { return d.y }

// Month returns the Jalali month, 1 (Farvardin) to 12 (Esfand).
func (d Date) Month() int { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Time returns a canonical time.Time for that day (noon Tehran time, which
// keeps the day stable across the historical Iranian DST switches).
// Time is the inverse of [FromTime] for every valid date.
func (d Date) Time() time.Time {
	return ptime.Date(d.y, ptime.Month(d.m), d.d, 12, 0, 0, 0, ptime.Iran()).Time()
}

// String formats the date as "1403/07/01".
func (d Date) String() string { return fmt.Sprintf(DateFormat, d.y, d.m, d.d) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Parse parses a Jalali Date from a string. It is lenient about zero padding
// and accepts "1403/7/1" as well as "1403/07/01".
func Parse(str string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(str), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want yyyy/mm/dd", str)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", str, err)
		}
		n[i] = v
	}
	d := Date{n[0], n[1], n[2]}
	// Round-tripping through the calendar arithmetic rejects days that do
	// not exist, like 1402/12/30 on a non-leap year.
	if norm := New(n[0], n[1], n[2]); norm != d {
		return Date{}, fmt.Errorf("invalid date %q: no such day", str)
	}
	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ToDisplay converts a Gregorian "yyyy/mm/dd" string to its Jalali display
// form. Unparseable input is returned unchanged: display conversion is
// best-effort and must never break a rendering path.
func ToDisplay(text string) string {
	t, err := time.ParseInLocation(gregorianFormat, strings.TrimSpace(text), ptime.Iran())
	if err != nil {
		return text
	}
	return FromTime(t).String()
}

// ToStorage converts a Jalali "yyyy/mm/dd" string back to its Gregorian
// form. Like [ToDisplay] it returns unparseable input unchanged.
func ToStorage(text string) string {
	d, err := Parse(text)
	if err != nil {
		return text
	}
	return d.Time().Format(gregorianFormat)
}

// MarshalJSON implements the json.Marshaler interface, writing the date in
// its standard string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
