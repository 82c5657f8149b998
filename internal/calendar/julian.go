package calendar

import (
	"fmt"
	"math"
)

const (
	julianSDNOffset = 32083

	// legacyGregorianMaxSDN is the first SDN the legacy Gregorian
	// formatter refuses.
	legacyGregorianMaxSDN = 536838867
)

// JulianCalendar converts proleptic Julian dates. SDN 1 is January 2,
// 4713 BCE.
type JulianCalendar struct{}

// ToSDN returns the serial day number of a Julian date, or 0 when the date
// is detected as invalid or precedes SDN 1.
func (JulianCalendar) ToSDN(year, month, day int) int {
	if year == 0 || year < -4713 || year > maxYear ||
		month <= 0 || month > 12 || day <= 0 || day > 31 {
		return 0
	}

	// Jan 1, 4713 BCE is SDN 0
	if year == -4713 && month == 1 && day == 1 {
		return 0
	}

	y, m := shiftToMarch(year, month)

	return (y*daysPer4Years)/4 +
		(m*daysPer5Months+2)/5 +
		day -
		julianSDNOffset
}

// FromSDN converts a serial day number to a Julian date.
func (JulianCalendar) FromSDN(sdn int) Date {
	if sdn <= 0 || sdn > (math.MaxInt-(julianSDNOffset*4-1))/4 {
		return Date{}
	}

	temp := sdn*4 + (julianSDNOffset*4 - 1)

	year := temp / daysPer4Years
	dayOfYear := (temp%daysPer4Years)/4 + 1

	month, day := monthDayFromMarch(dayOfYear)
	if month > 12 {
		month -= 12
		year++
	}

	return Date{Year: unshiftYear(year), Month: month, Day: day}
}

// FormatJulian renders sdn as a Julian "m/d/y" string, "0/0/0" when out of
// range.
func FormatJulian(sdn int) string {
	return JulianCalendar{}.FromSDN(sdn).String()
}

// FormatGregorianLegacy renders sdn as a Gregorian "m/d/y" string using the
// floor-division algorithm of the historical jdtogregorian helper. It only
// accepts 0 < sdn < 536838867 and returns "0/0/0" otherwise.
func FormatGregorianLegacy(sdn int) string {
	if sdn <= 0 || sdn >= legacyGregorianMaxSDN {
		return "0/0/0"
	}

	j := (sdn - 1721119) % 535117748

	calc1 := 4*j - 1
	year := floorDiv(calc1, daysPer400Years)
	j = calc1 - daysPer400Years*year
	day := floorDiv(j, 4)

	calc2 := 4*day + 3
	j = floorDiv(calc2, daysPer4Years)
	day = calc2 - daysPer4Years*j
	day = floorDiv(day+4, 4)

	calc3 := 5*day - 3
	month := floorDiv(calc3, daysPer5Months)
	day = calc3 - daysPer5Months*month
	day = floorDiv(day+5, 5)

	year = 100*year + j

	if month < 10 {
		month += 3
	} else {
		month -= 9
		year++
	}

	if year <= 0 {
		year--
	}

	return fmt.Sprintf("%d/%d/%d", month, day, year)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a mod b with the sign of b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
