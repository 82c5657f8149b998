package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EasterMode selects which calendar basis the computus uses for a year.
// The numeric values match the legacy CAL_EASTER_* constants.
type EasterMode int

const (
	// EasterDefault uses the Julian computus up to 1752, when Britain and
	// its colonies switched, and the Gregorian computus after.
	EasterDefault EasterMode = iota
	// EasterRoman switches to the Gregorian computus after 1582.
	EasterRoman
	// EasterAlwaysGregorian uses the Gregorian computus for every year.
	EasterAlwaysGregorian
	// EasterAlwaysJulian uses the Julian computus for every year, as the
	// Orthodox churches do.
	EasterAlwaysJulian
)

// Years for which EasterDate can produce a 32-bit Unix timestamp.
const (
	EasterDateMinYear = 1970
	EasterDateMaxYear = 2037
)

var easterModeNames = map[EasterMode]string{
	EasterDefault:         "default",
	EasterRoman:           "roman",
	EasterAlwaysGregorian: "gregorian",
	EasterAlwaysJulian:    "julian",
}

func (m EasterMode) String() string {
	if name, ok := easterModeNames[m]; ok {
		return name
	}
	return "easter_mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseEasterMode accepts a mode name or its numeric value.
func ParseEasterMode(s string) (EasterMode, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	for mode, name := range easterModeNames {
		if s == name {
			return mode, nil
		}
	}

	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := easterModeNames[EasterMode(n)]; ok {
			return EasterMode(n), nil
		}
	}

	return EasterDefault, newArgumentError("mode", fmt.Sprintf("must be one of default, roman, gregorian, julian, got %q", s), ErrOutOfRange)
}

// UsesJulian reports whether the computus for year follows the Julian
// calendar under mode. Unknown modes behave like EasterDefault.
func (m EasterMode) UsesJulian(year int) bool {
	switch m {
	case EasterAlwaysJulian:
		return true
	case EasterAlwaysGregorian:
		return false
	case EasterRoman:
		return year <= 1582
	default:
		return year <= 1752
	}
}

// EasterDays returns the number of days after March 21 on which Easter
// Sunday falls in year. The date is in the Julian calendar when
// mode.UsesJulian(year), in the Gregorian calendar otherwise.
//
// The algorithm is the one described by Bradley for the Book of Common
// Prayer tables and works for any year.
func EasterDays(year int, mode EasterMode) int {
	golden := year%19 + 1

	var dominical, pfm int
	if mode.UsesJulian(year) {
		dominical = (year + year/4 + 5) % 7
		pfm = (3 - 11*golden - 7) % 30
	} else {
		dominical = (year + year/4 - year/100 + year/400) % 7

		solar := (year-1600)/100 - (year-1600)/400
		lunar := ((year - 1400) / 100 * 8) / 25

		pfm = (3 - 11*golden + solar - lunar) % 30
	}
	if dominical < 0 {
		dominical += 7
	}
	if pfm < 0 {
		pfm += 30
	}

	// corrected date of the Paschal full moon, in days after March 21
	if pfm == 29 || (pfm == 28 && golden > 11) {
		pfm--
	}

	offset := (4 - pfm - dominical) % 7
	if offset < 0 {
		offset += 7
	}

	return pfm + offset + 1
}

// EasterMonthDay converts an EasterDays result to a March or April date.
func EasterMonthDay(days int) (month, day int) {
	if days < 11 {
		return 3, days + 21
	}
	return 4, days - 10
}

// EasterSDN returns the serial day number of Easter Sunday in year. The
// month and day from EasterDays are read in the calendar the computus used,
// so the result is the real day Easter was kept. It returns 0 when the
// date cannot be converted.
func EasterSDN(year int, mode EasterMode) int {
	month, day := EasterMonthDay(EasterDays(year, mode))

	if mode.UsesJulian(year) {
		return JulianCalendar{}.ToSDN(year, month, day)
	}
	return GregorianCalendar{}.ToSDN(year, month, day)
}

// EasterDate returns midnight UTC on the month and day EasterDays gives for
// year. The month and day are taken as they are, so on a Julian basis the
// result carries the Julian label rather than the day EasterSDN places.
// Only years between EasterDateMinYear and EasterDateMaxYear are accepted.
func EasterDate(year int, mode EasterMode) (time.Time, error) {
	if year < EasterDateMinYear || year > EasterDateMaxYear {
		return time.Time{}, newArgumentError("year",
			fmt.Sprintf("must be between %d and %d", EasterDateMinYear, EasterDateMaxYear), ErrOutOfRange)
	}

	month, day := EasterMonthDay(EasterDays(year, mode))
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
