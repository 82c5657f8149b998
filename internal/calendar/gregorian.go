package calendar

import "math"

const (
	gregorianSDNOffset = 32045
	daysPer5Months     = 153
	daysPer4Years      = 1461
	daysPer400Years    = 146097

	// maxYear bounds the year accepted by the Gregorian and Julian
	// converters so the day-count formulas never overflow.
	maxYear = math.MaxInt32
)

// GregorianCalendar converts proleptic Gregorian dates. SDN 1 is
// November 25, 4714 BCE.
type GregorianCalendar struct{}

// ToSDN returns the serial day number of a Gregorian date, or 0 when the
// date is detected as invalid or precedes SDN 1.
func (GregorianCalendar) ToSDN(year, month, day int) int {
	if year == 0 || year < -4714 || year > maxYear ||
		month <= 0 || month > 12 || day <= 0 || day > 31 {
		return 0
	}

	// before Nov 25, 4714 BCE
	if year == -4714 {
		if month < 11 || (month == 11 && day < 25) {
			return 0
		}
	}

	y, m := shiftToMarch(year, month)

	return (y/100*daysPer400Years)/4 +
		(y%100*daysPer4Years)/4 +
		(m*daysPer5Months+2)/5 +
		day -
		gregorianSDNOffset
}

// FromSDN converts a serial day number to a Gregorian date. Non-positive
// values and values large enough to overflow the arithmetic yield the zero
// Date.
func (GregorianCalendar) FromSDN(sdn int) Date {
	if sdn <= 0 || sdn > (math.MaxInt-4*gregorianSDNOffset)/4 {
		return Date{}
	}

	temp := (sdn+gregorianSDNOffset)*4 - 1

	century := temp / daysPer400Years

	// year and day of year within the century
	temp = ((temp % daysPer400Years) / 4 * 4) + 3
	year := century*100 + temp/daysPer4Years
	dayOfYear := (temp%daysPer4Years)/4 + 1

	month, day := monthDayFromMarch(dayOfYear)
	if month > 12 {
		month -= 12
		year++
	}

	return Date{Year: unshiftYear(year), Month: month, Day: day}
}

// shiftToMarch makes year non-negative and moves the start of the year to
// March so that leap days fall at the end.
func shiftToMarch(year, month int) (int, int) {
	if year < 0 {
		year += 4801
	} else {
		year += 4800
	}

	if month > 2 {
		return year, month - 3
	}
	return year - 1, month + 9
}

// monthDayFromMarch splits a March-based day of year into a month and day.
// Months past December come back as 13 and 14.
func monthDayFromMarch(dayOfYear int) (int, int) {
	temp := dayOfYear*5 - 3
	month := temp / daysPer5Months
	day := (temp%daysPer5Months)/5 + 1

	return month + 3, day
}

// unshiftYear reverses the +4800 normalization and skips year 0.
func unshiftYear(year int) int {
	year -= 4800
	if year <= 0 {
		year--
	}
	return year
}
