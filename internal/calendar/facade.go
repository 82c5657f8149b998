package calendar

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// UnixEpochSDN is the serial day number of January 1, 1970.
	UnixEpochSDN = 2440588

	secondsPerDay = 86400

	// MaxUnixSDN is the last SDN whose Unix timestamp fits in an int on
	// this platform.
	MaxUnixSDN = math.MaxInt/secondsPerDay + UnixEpochSDN

	// maxMonthOrYear is the ceiling DaysInMonth enforces on month and year.
	maxMonthOrYear = math.MaxInt32 - 1
)

// ToSDN converts a date of calendar c to a serial day number. Unknown
// calendars are rejected; invalid dates yield 0.
func ToSDN(c Calendar, year, month, day int) (int, error) {
	conv, err := c.Converter()
	if err != nil {
		return 0, err
	}
	return conv.ToSDN(year, month, day), nil
}

// DateInfo is the full breakdown of a serial day number in one calendar.
type DateInfo struct {
	Date        string `json:"date"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Year        int    `json:"year"`
	DayOfWeek   *int   `json:"dow"`
	AbbrevDay   string `json:"abbrevdayname"`
	DayName     string `json:"dayname"`
	AbbrevMonth string `json:"abbrevmonth"`
	MonthName   string `json:"monthname"`
}

// FromSDN breaks sdn down in calendar c.
//
// For Jewish dates before year 1 the weekday is left nil and the day names
// empty, matching the historical implementation.
func FromSDN(sdn int, c Calendar) (DateInfo, error) {
	conv, err := c.Converter()
	if err != nil {
		return DateInfo{}, err
	}

	d := conv.FromSDN(sdn)
	info := DateInfo{
		Date:  d.String(),
		Month: d.Month,
		Day:   d.Day,
		Year:  d.Year,
	}

	if c != Jewish || d.Year > 0 {
		dow := DayOfWeek(sdn)
		info.DayOfWeek = &dow
		info.AbbrevDay = dayNameShort[dow]
		info.DayName = dayNameLong[dow]
	}

	switch c {
	case Jewish:
		info.AbbrevMonth = JewishMonthName(d.Year, d.Month)
		info.MonthName = info.AbbrevMonth
	case French:
		info.AbbrevMonth = frenchMonthName[d.Month]
		info.MonthName = frenchMonthName[d.Month]
	default:
		info.AbbrevMonth = monthNameShort[d.Month]
		info.MonthName = monthNameLong[d.Month]
	}

	return info, nil
}

// FormatSDN renders sdn as the legacy "m/d/y" string of calendar c, or
// "0/0/0" when sdn is outside the calendar's range. Gregorian dates use the
// historical algorithm, which only covers 0 < sdn < 536838867.
func FormatSDN(c Calendar, sdn int) (string, error) {
	switch c {
	case Gregorian:
		return FormatGregorianLegacy(sdn), nil
	case Julian:
		return FormatJulian(sdn), nil
	case Jewish:
		return FormatJewish(sdn), nil
	case French:
		return FormatFrench(sdn), nil
	default:
		return "", newArgumentError("calendar", "must be a valid calendar ID", ErrInvalidCalendar)
	}
}

// DaysInMonth returns the number of days in month of year in calendar c.
//
// A Jewish common year has no month 6 (Adar I) and reports 0 days for it.
func DaysInMonth(c Calendar, month, year int) (int, error) {
	conv, err := c.Converter()
	if err != nil {
		return 0, err
	}

	if month <= 0 || month > maxMonthOrYear {
		return 0, newArgumentError("month", fmt.Sprintf("must be between 1 and %d", maxMonthOrYear), ErrOutOfRange)
	}
	if year > maxMonthOrYear {
		return 0, newArgumentError("year", fmt.Sprintf("must be less than %d", maxMonthOrYear), ErrOutOfRange)
	}

	start := conv.ToSDN(year, month, 1)
	if start == 0 {
		return 0, newArgumentError("", "Invalid date", ErrInvalidDate)
	}

	next := conv.ToSDN(year, month+1, 1)
	if next == 0 {
		// The year after 1 BCE is 1 CE.
		if year == -1 {
			next = conv.ToSDN(1, 1, 1)
		} else {
			next = conv.ToSDN(year+1, 1, 1)
		}
	}

	if next == 0 {
		// The calendar ends with this month; probe for its last day.
		last := 0
		for day := 1; day <= 32; day++ {
			if conv.ToSDN(year, month, day) > 0 {
				last = day
			}
		}
		return last, nil
	}

	return next - start, nil
}

// DayOfWeek returns the weekday of sdn, 0 for Sunday through 6 for
// Saturday.
func DayOfWeek(sdn int) int {
	dow := (sdn + 1) % 7
	if dow < 0 {
		dow += 7
	}
	return dow
}

// DayOfWeekMode selects how FormatDayOfWeek renders a weekday. The numeric
// values match the legacy CAL_DOW_* constants.
type DayOfWeekMode int

const (
	DayNumber DayOfWeekMode = iota
	DayLong
	DayShort
)

// FormatDayOfWeek renders the weekday of sdn as its number, long name or
// short name. Unknown modes render the number.
func FormatDayOfWeek(sdn int, mode DayOfWeekMode) string {
	dow := DayOfWeek(sdn)

	switch mode {
	case DayLong:
		return dayNameLong[dow]
	case DayShort:
		return dayNameShort[dow]
	default:
		return strconv.Itoa(dow)
	}
}

// MonthNameMode selects the calendar and table used by MonthName. The
// numeric values match the legacy CAL_MONTH_* constants.
type MonthNameMode int

const (
	MonthGregorianShort MonthNameMode = iota
	MonthGregorianLong
	MonthJulianShort
	MonthJulianLong
	MonthJewish
	MonthFrench
)

// MonthName returns the name of the month containing sdn in the calendar
// selected by mode. Out-of-range SDNs give an empty string. Unknown modes
// behave like MonthGregorianShort.
func MonthName(sdn int, mode MonthNameMode) string {
	switch mode {
	case MonthGregorianLong:
		return monthNameLong[GregorianCalendar{}.FromSDN(sdn).Month]
	case MonthJulianShort:
		return monthNameShort[JulianCalendar{}.FromSDN(sdn).Month]
	case MonthJulianLong:
		return monthNameLong[JulianCalendar{}.FromSDN(sdn).Month]
	case MonthJewish:
		d := JewishCalendar{}.FromSDN(sdn)
		return JewishMonthName(d.Year, d.Month)
	case MonthFrench:
		return frenchMonthName[FrenchCalendar{}.FromSDN(sdn).Month]
	default:
		return monthNameShort[GregorianCalendar{}.FromSDN(sdn).Month]
	}
}

// SDNToUnix returns the Unix timestamp of midnight UTC at the start of sdn.
func SDNToUnix(sdn int) (int64, error) {
	if sdn < UnixEpochSDN || sdn-UnixEpochSDN > math.MaxInt/secondsPerDay {
		return 0, newArgumentError("jday", fmt.Sprintf("must be between %d and %d", UnixEpochSDN, MaxUnixSDN), ErrOutOfRange)
	}
	return int64(sdn-UnixEpochSDN) * secondsPerDay, nil
}

// UnixToSDN returns the serial day number containing the Unix timestamp ts.
func UnixToSDN(ts int64) (int, error) {
	if ts < 0 {
		return 0, newArgumentError("timestamp", "must be greater than or equal to 0", ErrOutOfRange)
	}
	return int(ts/secondsPerDay) + UnixEpochSDN, nil
}
