package calendar

const (
	frenchSDNOffset    = 2375474
	frenchDaysPerMonth = 30

	// FrenchFirstSDN is 1 Vendemiaire, year 1.
	FrenchFirstSDN = 2375840

	// FrenchLastSDN is the fifth Sansculottides day of year 14.
	FrenchLastSDN = 2380952

	frenchMaxYear = 14
)

// FrenchCalendar converts dates of the French Republican calendar. Only
// years 1 to 14 are supported. Month 13 holds the Sansculottides, five days
// long except in the leap years 3, 7 and 11 where it has six.
type FrenchCalendar struct{}

// ToSDN returns the serial day number of a French Republican date, or 0
// outside years 1-14, months 1-13 and the month's length.
func (FrenchCalendar) ToSDN(year, month, day int) int {
	if year < 1 || year > frenchMaxYear ||
		month < 1 || month > 13 ||
		day < 1 || day > frenchDaysPerMonth {
		return 0
	}

	if month == 13 && day > sansculottides(year) {
		return 0
	}

	return (year*daysPer4Years)/4 +
		(month-1)*frenchDaysPerMonth +
		day +
		frenchSDNOffset
}

// FromSDN converts a serial day number to a French Republican date. SDNs
// outside FrenchFirstSDN..FrenchLastSDN yield the zero Date.
func (FrenchCalendar) FromSDN(sdn int) Date {
	if sdn < FrenchFirstSDN || sdn > FrenchLastSDN {
		return Date{}
	}

	temp := (sdn-frenchSDNOffset)*4 - 1
	year := temp / daysPer4Years
	dayOfYear := (temp % daysPer4Years) / 4

	return Date{
		Year:  year,
		Month: dayOfYear/frenchDaysPerMonth + 1,
		Day:   dayOfYear%frenchDaysPerMonth + 1,
	}
}

// sansculottides returns the number of complementary days closing year.
func sansculottides(year int) int {
	switch year {
	case 3, 7, 11:
		return 6
	default:
		return 5
	}
}

// FormatFrench renders sdn as a French Republican "m/d/y" string, "0/0/0"
// outside the supported span.
func FormatFrench(sdn int) string {
	return FrenchCalendar{}.FromSDN(sdn).String()
}
