package calendar

import "maps"

var dayNameShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var dayNameLong = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNameShort = [13]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthNameLong = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var jewishMonthName = [14]string{
	"", "Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "", "Adar",
	"Nisan", "Iyyar", "Sivan", "Tammuz", "Av", "Elul",
}

var jewishMonthNameLeap = [14]string{
	"", "Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "Adar I", "Adar II",
	"Nisan", "Iyyar", "Sivan", "Tammuz", "Av", "Elul",
}

var frenchMonthName = [14]string{
	"", "Vendemiaire", "Brumaire", "Frimaire", "Nivose", "Pluviose", "Ventose",
	"Germinal", "Floreal", "Prairial", "Messidor", "Thermidor", "Fructidor", "Extra",
}

// JewishMonthName returns the English name of month in year, choosing the
// leap-year table when year has 13 months. Years below 1 have no names.
func JewishMonthName(year, month int) string {
	if year <= 0 || month < 0 || month > 13 {
		return ""
	}
	if IsJewishLeapYear(year) {
		return jewishMonthNameLeap[month]
	}
	return jewishMonthName[month]
}

// CalendarInfo is the static description of a calendar. Month maps are
// keyed by month number.
type CalendarInfo struct {
	Months         map[int]string `json:"months"`
	AbbrevMonths   map[int]string `json:"abbrevmonths"`
	MaxDaysInMonth int            `json:"maxdaysinmonth"`
	Name           string         `json:"calname"`
	Symbol         string         `json:"calsymbol"`
}

// AllCalendars asks Info for every calendar.
const AllCalendars Calendar = -1

var calendarInfo = [NumCalendars]CalendarInfo{
	Gregorian: {
		Months:         monthTable(monthNameLong[:]),
		AbbrevMonths:   monthTable(monthNameShort[:]),
		MaxDaysInMonth: 31,
		Name:           "Gregorian",
		Symbol:         "CAL_GREGORIAN",
	},
	Julian: {
		Months:         monthTable(monthNameLong[:]),
		AbbrevMonths:   monthTable(monthNameShort[:]),
		MaxDaysInMonth: 31,
		Name:           "Julian",
		Symbol:         "CAL_JULIAN",
	},
	Jewish: {
		Months:         monthTable(jewishMonthNameLeap[:]),
		AbbrevMonths:   monthTable(jewishMonthNameLeap[:]),
		MaxDaysInMonth: 30,
		Name:           "Jewish",
		Symbol:         "CAL_JEWISH",
	},
	French: {
		Months:         monthTable(frenchMonthName[:]),
		AbbrevMonths:   monthTable(frenchMonthName[:]),
		MaxDaysInMonth: 30,
		Name:           "French",
		Symbol:         "CAL_FRENCH",
	},
}

func monthTable(names []string) map[int]string {
	m := make(map[int]string, len(names)-1)
	for i, name := range names[1:] {
		m[i+1] = name
	}
	return m
}

// Info returns the description of c, or of every calendar when c is
// AllCalendars. Callers receive copies and may modify them.
func Info(c Calendar) ([]CalendarInfo, error) {
	if c == AllCalendars {
		all := make([]CalendarInfo, 0, NumCalendars)
		for _, info := range calendarInfo {
			all = append(all, info.clone())
		}
		return all, nil
	}

	if !c.Valid() {
		return nil, newArgumentError("calendar", "must be a valid calendar ID", ErrInvalidCalendar)
	}

	return []CalendarInfo{calendarInfo[c].clone()}, nil
}

func (ci CalendarInfo) clone() CalendarInfo {
	ci.Months = maps.Clone(ci.Months)
	ci.AbbrevMonths = maps.Clone(ci.AbbrevMonths)
	return ci
}
