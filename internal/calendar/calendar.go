// Package calendar converts dates between serial day numbers (SDN) and the
// Gregorian, Julian, Jewish and French Republican calendars, and computes the
// date of Easter.
//
// Every function in this package is a pure function of its arguments.
// Conversions into SDN report invalid or unsupported dates by returning 0;
// a positive result does not prove the input was a canonical date. Convert
// back with FromSDN and compare to validate a date.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// Calendar identifies one of the supported calendar systems.
// The numeric values match the legacy CAL_* constants.
type Calendar int

const (
	Gregorian Calendar = iota
	Julian
	Jewish
	French
)

// NumCalendars is the number of supported calendars.
const NumCalendars = 4

// Date is a calendar date. Gregorian and Julian years use astronomical
// numbering without a year 0 (-1 is 1 BCE). Jewish and French years count
// from their own epochs and are always positive.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// IsZero reports whether d is the 0/0/0 sentinel returned for out-of-range
// serial day numbers.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as month/day/year.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}

// Converter converts dates of one calendar to and from serial day numbers.
type Converter interface {
	// ToSDN returns 0 for any input detected as invalid or out of range.
	ToSDN(year, month, day int) int
	// FromSDN returns the zero Date when sdn is outside the calendar's domain.
	FromSDN(sdn int) Date
}

// converters maps each Calendar to its implementation.
var converters = [NumCalendars]Converter{
	Gregorian: GregorianCalendar{},
	Julian:    JulianCalendar{},
	Jewish:    JewishCalendar{},
	French:    FrenchCalendar{},
}

// Valid reports whether c names a supported calendar.
func (c Calendar) Valid() bool {
	return c >= 0 && c < NumCalendars
}

// Converter returns the implementation for c.
func (c Calendar) Converter() (Converter, error) {
	if !c.Valid() {
		return nil, newArgumentError("calendar", "must be a valid calendar ID", ErrInvalidCalendar)
	}
	return converters[c], nil
}

// String returns the lower-case calendar name.
func (c Calendar) String() string {
	switch c {
	case Gregorian:
		return "gregorian"
	case Julian:
		return "julian"
	case Jewish:
		return "jewish"
	case French:
		return "french"
	default:
		return "calendar(" + strconv.Itoa(int(c)) + ")"
	}
}

// ParseCalendar accepts a calendar name ("gregorian", "julian", "jewish",
// "french"), its CAL_* symbol, or its numeric id.
func ParseCalendar(s string) (Calendar, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "cal_")

	for c := Calendar(0); c < NumCalendars; c++ {
		if s == c.String() {
			return c, nil
		}
	}

	if n, err := strconv.Atoi(s); err == nil && Calendar(n).Valid() {
		return Calendar(n), nil
	}

	return 0, newArgumentError("calendar", fmt.Sprintf("must be a valid calendar ID, got %q", s), ErrInvalidCalendar)
}
