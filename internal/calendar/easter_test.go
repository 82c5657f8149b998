package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasterDays(t *testing.T) {
	tests := []struct {
		year int
		mode EasterMode
		want int
	}{
		{2000, EasterDefault, 33},
		{2000, EasterAlwaysJulian, 27},
		{1999, EasterDefault, 14},
		{1492, EasterDefault, 32},
		{1913, EasterDefault, 2},
		{2024, EasterDefault, 10},
		{2024, EasterAlwaysJulian, 32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EasterDays(tt.year, tt.mode), "year %d mode %s", tt.year, tt.mode)
	}
}

func TestEasterDaysHasNoYearLimit(t *testing.T) {
	for _, year := range []int{1, 1000, 1969, 2038, 4000} {
		days := EasterDays(year, EasterDefault)
		assert.GreaterOrEqual(t, days, 1, "year %d", year)
		assert.LessOrEqual(t, days, 35, "year %d", year)
	}
}

func TestEasterModeUsesJulian(t *testing.T) {
	tests := []struct {
		mode EasterMode
		year int
		want bool
	}{
		{EasterDefault, 1752, true},
		{EasterDefault, 1753, false},
		{EasterRoman, 1582, true},
		{EasterRoman, 1583, false},
		{EasterRoman, 1700, false},
		{EasterAlwaysGregorian, 1000, false},
		{EasterAlwaysJulian, 2024, true},
		{EasterMode(9), 1700, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.UsesJulian(tt.year), "%s %d", tt.mode, tt.year)
	}
}

func TestEasterDate(t *testing.T) {
	tests := []struct {
		year int
		want int64
	}{
		{2000, 956448000},
		{2001, 987292800},
		{2002, 1017532800},
	}

	for _, tt := range tests {
		got, err := EasterDate(tt.year, EasterDefault)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Unix(), "year %d", tt.year)
		assert.Equal(t, time.UTC, got.Location())
	}

	got, err := EasterDate(2024, EasterDefault)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestEasterDateJulianDrift(t *testing.T) {
	gregorian, err := EasterDate(2000, EasterDefault)
	require.NoError(t, err)
	julian, err := EasterDate(2000, EasterAlwaysJulian)
	require.NoError(t, err)

	// The Julian month/day is composed as is.
	assert.Equal(t, time.Date(2000, time.April, 23, 0, 0, 0, 0, time.UTC), gregorian)
	assert.Equal(t, time.Date(2000, time.April, 17, 0, 0, 0, 0, time.UTC), julian)
	assert.Equal(t, int64(955929600), julian.Unix())

	// EasterSDN places the same label on the real day, 13 days later.
	label := GregorianCalendar{}.ToSDN(2000, 4, 17)
	assert.Equal(t, 13, EasterSDN(2000, EasterAlwaysJulian)-label)
}

func TestEasterDateRange(t *testing.T) {
	for _, year := range []int{1969, 2038, 0, -100} {
		_, err := EasterDate(year, EasterDefault)
		assert.ErrorIs(t, err, ErrOutOfRange, "year %d", year)
		assert.EqualError(t, err, "year must be between 1970 and 2037")
	}

	for _, year := range []int{1970, 2037} {
		_, err := EasterDate(year, EasterDefault)
		assert.NoError(t, err, "year %d", year)
	}
}

func TestEasterIsSunday(t *testing.T) {
	for year := 1583; year <= 2500; year++ {
		assert.Equal(t, 0, DayOfWeek(EasterSDN(year, EasterAlwaysGregorian)), "gregorian %d", year)
	}
	for year := 1; year <= 2500; year++ {
		assert.Equal(t, 0, DayOfWeek(EasterSDN(year, EasterAlwaysJulian)), "julian %d", year)
	}
}

func TestEasterMonthDay(t *testing.T) {
	month, day := EasterMonthDay(1)
	assert.Equal(t, [2]int{3, 22}, [2]int{month, day})

	month, day = EasterMonthDay(10)
	assert.Equal(t, [2]int{3, 31}, [2]int{month, day})

	month, day = EasterMonthDay(11)
	assert.Equal(t, [2]int{4, 1}, [2]int{month, day})

	month, day = EasterMonthDay(35)
	assert.Equal(t, [2]int{4, 25}, [2]int{month, day})
}

func TestParseEasterMode(t *testing.T) {
	tests := []struct {
		in   string
		want EasterMode
	}{
		{"default", EasterDefault},
		{"Roman", EasterRoman},
		{"gregorian", EasterAlwaysGregorian},
		{" julian ", EasterAlwaysJulian},
		{"3", EasterAlwaysJulian},
		{"0", EasterDefault},
	}

	for _, tt := range tests {
		got, err := ParseEasterMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "orthodox", "4", "-1"} {
		_, err := ParseEasterMode(in)
		assert.ErrorIs(t, err, ErrOutOfRange, in)
	}
}
