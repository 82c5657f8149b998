package calendar

// Days from Easter Sunday to the movable feasts tied to it.
const (
	// DaysFromEasterToAshWednesday covers 40 days of Lent plus the six
	// Sundays, which are not counted.
	DaysFromEasterToAshWednesday = -46
	DaysFromEasterToPalmSunday   = -7
	DaysFromEasterToGoodFriday   = -2
	// DaysFromEasterToAscension always lands on a Thursday.
	DaysFromEasterToAscension = 39
	DaysFromEasterToPentecost = 49
)

// Feast is a movable feast anchored to Easter.
type Feast struct {
	Name string `json:"name"`
	SDN  int    `json:"sdn"`
}

var movableFeasts = []struct {
	name   string
	offset int
}{
	{"Ash Wednesday", DaysFromEasterToAshWednesday},
	{"Palm Sunday", DaysFromEasterToPalmSunday},
	{"Good Friday", DaysFromEasterToGoodFriday},
	{"Easter", 0},
	{"Ascension", DaysFromEasterToAscension},
	{"Pentecost", DaysFromEasterToPentecost},
}

// MovableFeasts returns the Easter-relative feasts of year in date order.
// It returns nil when Easter cannot be placed.
func MovableFeasts(year int, mode EasterMode) []Feast {
	easter := EasterSDN(year, mode)
	if easter <= 0 {
		return nil
	}

	feasts := make([]Feast, 0, len(movableFeasts))
	for _, f := range movableFeasts {
		feasts = append(feasts, Feast{Name: f.name, SDN: easter + f.offset})
	}

	return feasts
}

// AdventSunday returns the SDN of the first Sunday of Advent in the
// Gregorian year, the fourth Sunday before Christmas.
func AdventSunday(year int) int {
	christmas := GregorianCalendar{}.ToSDN(year, 12, 25)
	if christmas == 0 {
		return 0
	}

	dow := DayOfWeek(christmas)
	if dow == 0 {
		dow = 7
	}

	return christmas - dow - 21
}
