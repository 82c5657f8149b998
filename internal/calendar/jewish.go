package calendar

const (
	halakimPerHour         = 1080
	halakimPerDay          = 25920
	halakimPerLunarCycle   = 29*halakimPerDay + 13753
	halakimPerMetonicCycle = halakimPerLunarCycle * (12*19 + 7)

	jewishSDNOffset = 347997

	// JewishMaxSDN is the last SDN the Jewish converter accepts.
	JewishMaxSDN = 324542846

	// newMoonOfCreation is the molad of Tishri of year 1, in halakim.
	newMoonOfCreation = 31524

	// postponement thresholds, in halakim after the start of the day
	noon          = 18 * halakimPerHour
	tuesdayCutoff = 9*halakimPerHour + 204  // 3:11:20 AM
	mondayCutoff  = 15*halakimPerHour + 589 // 9:32:43 AM
)

// Cumulative lunar months at the start of each year of a metonic cycle.
var yearOffset = [19]int{
	0, 12, 24, 37, 49, 61, 74, 86, 99, 111, 123,
	136, 148, 160, 173, 185, 197, 210, 222,
}

var monthsPerYear = [19]int{
	12, 12, 13, 12, 12, 13, 12, 13, 12, 12, 13, 12, 12, 13, 12, 12, 13, 12, 13,
}

// JewishCalendar converts dates of the Hebrew lunisolar calendar.
//
// Months are numbered from Tishri (1) to Elul (13). Month 6 is Adar I and
// only exists in leap years; month 7 is Adar in common years and Adar II in
// leap years.
type JewishCalendar struct{}

// IsJewishLeapYear reports whether year has 13 months.
func IsJewishLeapYear(year int) bool {
	return floorMod(year*7+1, 19) < 7
}

// molad is the moment of a lunar conjunction, as whole days plus halakim.
type molad struct {
	day     int
	halakim int
}

// add advances m by halakim and renormalizes.
func (m *molad) add(halakim int) {
	m.halakim += halakim
	m.day += m.halakim / halakimPerDay
	m.halakim %= halakimPerDay
}

// moladOfMetonicCycle returns the molad of Tishri at the start of cycle.
func moladOfMetonicCycle(cycle int) molad {
	total := int64(newMoonOfCreation) + int64(cycle)*halakimPerMetonicCycle
	return molad{
		day:     int(total / halakimPerDay),
		halakim: int(total % halakimPerDay),
	}
}

// tishri1 applies the postponement rules to the molad of Tishri of the
// year at position metonicYear in its cycle and returns the day of Rosh
// Hashanah.
func tishri1(metonicYear int, m molad) int {
	day := m.day
	dow := day % 7

	leapYear := monthsPerYear[metonicYear] == 13
	lastWasLeapYear := monthsPerYear[(metonicYear+18)%19] == 13

	if m.halakim >= noon ||
		(!leapYear && dow == 2 && m.halakim >= tuesdayCutoff) ||
		(lastWasLeapYear && dow == 1 && m.halakim >= mondayCutoff) {
		day++
		dow = (dow + 1) % 7
	}

	// Rosh Hashanah never falls on Wednesday, Friday or Sunday.
	if dow == 3 || dow == 5 || dow == 0 {
		day++
	}

	return day
}

// startOfYear locates Tishri 1 of year.
type startOfYear struct {
	cycle       int
	metonicYear int
	molad       molad
	tishri1     int
}

func findStartOfYear(year int) startOfYear {
	s := startOfYear{
		cycle:       (year - 1) / 19,
		metonicYear: (year - 1) % 19,
	}
	s.molad = moladOfMetonicCycle(s.cycle)
	s.molad.add(halakimPerLunarCycle * yearOffset[s.metonicYear])
	s.tishri1 = tishri1(s.metonicYear, s.molad)

	return s
}

// nextTishri1 returns Tishri 1 of the year following s.
func (s startOfYear) nextTishri1() int {
	m := s.molad
	m.add(halakimPerLunarCycle * monthsPerYear[s.metonicYear])
	return tishri1((s.metonicYear+1)%19, m)
}

// findTishriMolad finds the molad of Tishri near inputDay: the start of the
// year for days in its first months, the end of the year for days in its
// last months.
func findTishriMolad(inputDay int) startOfYear {
	// The estimate never overshoots since a cycle is slightly shorter than
	// 6940 days.
	cycle := (inputDay + 310) / 6940
	m := moladOfMetonicCycle(cycle)

	for m.day < inputDay-6940+310 {
		cycle++
		m.add(halakimPerMetonicCycle)
	}

	metonicYear := 0
	for ; metonicYear < 18; metonicYear++ {
		if m.day > inputDay-74 {
			break
		}
		m.add(halakimPerLunarCycle * monthsPerYear[metonicYear])
	}

	return startOfYear{cycle: cycle, metonicYear: metonicYear, molad: m}
}

// ToSDN returns the serial day number of a Jewish date, or 0 when the date
// is detected as invalid.
func (JewishCalendar) ToSDN(year, month, day int) int {
	if year <= 0 || year > maxYear || day <= 0 || day > 30 {
		return 0
	}

	var sdn int

	switch month {
	case 1, 2:
		start := findStartOfYear(year)
		if month == 1 {
			sdn = start.tishri1 + day - 1
		} else {
			sdn = start.tishri1 + day + 29
		}

	case 3:
		// Kislev depends on whether Heshvan has 29 or 30 days.
		start := findStartOfYear(year)
		yearLength := start.nextTishri1() - start.tishri1

		if yearLength == 355 || yearLength == 385 {
			sdn = start.tishri1 + day + 59
		} else {
			sdn = start.tishri1 + day + 58
		}

	case 4, 5, 6:
		tishri1After := findStartOfYear(year + 1).tishri1

		lengthOfAdarIAndII := 59
		if monthsPerYear[(year-1)%19] == 12 {
			lengthOfAdarIAndII = 29
		}

		switch month {
		case 4:
			sdn = tishri1After + day - lengthOfAdarIAndII - 237
		case 5:
			sdn = tishri1After + day - lengthOfAdarIAndII - 208
		default:
			sdn = tishri1After + day - lengthOfAdarIAndII - 178
		}

	default:
		offset, ok := daysBeforeNextTishri[month]
		if !ok {
			return 0
		}
		sdn = findStartOfYear(year+1).tishri1 + day - offset
	}

	return sdn + jewishSDNOffset
}

// daysBeforeNextTishri holds, for Adar (II) through Elul, how many days
// before the next Tishri 1 the day before the month's first day falls.
var daysBeforeNextTishri = map[int]int{
	7:  207,
	8:  178,
	9:  148,
	10: 119,
	11: 89,
	12: 60,
	13: 30,
}

// lastMonths is searched backwards from Tishri 1 for days in the final six
// months of a year.
var lastMonths = []struct {
	month  int
	before int
}{
	{13, 30},
	{12, 60},
	{11, 89},
	{10, 119},
	{9, 148},
}

// FromSDN converts a serial day number to a Jewish date. SDNs at or before
// the epoch, or past JewishMaxSDN, yield the zero Date.
func (JewishCalendar) FromSDN(sdn int) Date {
	if sdn <= jewishSDNOffset || sdn > JewishMaxSDN {
		return Date{}
	}

	inputDay := sdn - jewishSDNOffset

	start := findTishriMolad(inputDay)
	start.tishri1 = tishri1(start.metonicYear, start.molad)

	var year, tishri1After int

	if inputDay >= start.tishri1 {
		// on or after the start of the year
		year = start.cycle*19 + start.metonicYear + 1

		if inputDay < start.tishri1+30 {
			return Date{Year: year, Month: 1, Day: inputDay - start.tishri1 + 1}
		}
		if inputDay < start.tishri1+59 {
			return Date{Year: year, Month: 2, Day: inputDay - start.tishri1 - 29}
		}

		tishri1After = start.nextTishri1()
	} else {
		// before the start of the year
		year = start.cycle*19 + start.metonicYear

		if inputDay >= start.tishri1-177 {
			for _, lm := range lastMonths {
				if inputDay > start.tishri1-lm.before {
					return Date{Year: year, Month: lm.month, Day: inputDay - start.tishri1 + lm.before}
				}
			}
			return Date{Year: year, Month: 8, Day: inputDay - start.tishri1 + 178}
		}

		month := 7
		day := inputDay - start.tishri1 + 207
		if day > 0 {
			return Date{Year: year, Month: month, Day: day}
		}

		if monthsPerYear[(year-1)%19] == 13 {
			// Adar I
			month--
			day += 30
			if day > 0 {
				return Date{Year: year, Month: month, Day: day}
			}
			month--
		} else {
			month -= 2
		}
		day += 30

		// Shevat, then Tevet
		if day > 0 {
			return Date{Year: year, Month: month, Day: day}
		}
		month--
		day += 29
		if day > 0 {
			return Date{Year: year, Month: month, Day: day}
		}

		// Heshvan or Kislev: the year length decides.
		tishri1After = start.tishri1
		start = findTishriMolad(start.molad.day - 365)
		start.tishri1 = tishri1(start.metonicYear, start.molad)
	}

	yearLength := tishri1After - start.tishri1
	day := inputDay - start.tishri1 - 29

	heshvan := 29
	if yearLength == 355 || yearLength == 385 {
		heshvan = 30
	}
	if day <= heshvan {
		return Date{Year: year, Month: 2, Day: day}
	}

	return Date{Year: year, Month: 3, Day: day - heshvan}
}

// FormatJewish renders sdn as a Jewish "m/d/y" string, "0/0/0" when out of
// range.
func FormatJewish(sdn int) string {
	return JewishCalendar{}.FromSDN(sdn).String()
}
