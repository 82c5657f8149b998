package calendar

import "time"

// Clock supplies the current time for operations whose year or timestamp
// defaults to "now".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// CurrentYear returns the Gregorian year of clk in UTC.
func CurrentYear(clk Clock) int {
	return clk.Now().UTC().Year()
}

// Today returns the serial day number of the current UTC day.
func Today(clk Clock) int {
	now := clk.Now().UTC()
	return GregorianCalendar{}.ToSDN(now.Year(), int(now.Month()), now.Day())
}
