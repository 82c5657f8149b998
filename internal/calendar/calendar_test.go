package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendar(t *testing.T) {
	tests := []struct {
		in   string
		want Calendar
	}{
		{"gregorian", Gregorian},
		{"Julian", Julian},
		{" jewish", Jewish},
		{"FRENCH", French},
		{"CAL_JEWISH", Jewish},
		{"0", Gregorian},
		{"3", French},
	}

	for _, tt := range tests {
		got, err := ParseCalendar(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "hebrew", "4", "-1"} {
		_, err := ParseCalendar(in)
		assert.ErrorIs(t, err, ErrInvalidCalendar, in)
	}
}

func TestCalendarString(t *testing.T) {
	assert.Equal(t, "gregorian", Gregorian.String())
	assert.Equal(t, "french", French.String())
	assert.Equal(t, "calendar(9)", Calendar(9).String())
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "8/26/74", Date{Year: 74, Month: 8, Day: 26}.String())
	assert.Equal(t, "0/0/0", Date{}.String())
	assert.True(t, Date{}.IsZero())
	assert.False(t, Date{Year: 1, Month: 1, Day: 1}.IsZero())
}

func TestInfo(t *testing.T) {
	all, err := Info(AllCalendars)
	require.NoError(t, err)
	require.Len(t, all, NumCalendars)

	symbols := make([]string, 0, len(all))
	for _, info := range all {
		symbols = append(symbols, info.Symbol)
	}
	assert.Equal(t, []string{"CAL_GREGORIAN", "CAL_JULIAN", "CAL_JEWISH", "CAL_FRENCH"}, symbols)

	greg, err := Info(Gregorian)
	require.NoError(t, err)
	require.Len(t, greg, 1)
	assert.Equal(t, "Gregorian", greg[0].Name)
	assert.Equal(t, 31, greg[0].MaxDaysInMonth)
	assert.Len(t, greg[0].Months, 12)
	assert.Equal(t, "January", greg[0].Months[1])
	assert.Equal(t, "Dec", greg[0].AbbrevMonths[12])

	jewish, err := Info(Jewish)
	require.NoError(t, err)
	assert.Equal(t, 30, jewish[0].MaxDaysInMonth)
	assert.Len(t, jewish[0].Months, 13)
	assert.Equal(t, "Adar I", jewish[0].Months[6])
	assert.Equal(t, "Adar II", jewish[0].Months[7])

	french, err := Info(French)
	require.NoError(t, err)
	assert.Equal(t, "Extra", french[0].Months[13])

	_, err = Info(Calendar(4))
	assert.ErrorIs(t, err, ErrInvalidCalendar)
	_, err = Info(Calendar(-2))
	assert.ErrorIs(t, err, ErrInvalidCalendar)
}

func TestInfoReturnsCopies(t *testing.T) {
	first, err := Info(Gregorian)
	require.NoError(t, err)
	first[0].Months[1] = "Janvier"

	second, err := Info(Gregorian)
	require.NoError(t, err)
	assert.Equal(t, "January", second[0].Months[1])
}

func TestJewishMonthName(t *testing.T) {
	assert.Equal(t, "Adar", JewishMonthName(5780, 7))
	assert.Equal(t, "", JewishMonthName(5780, 6))
	assert.Equal(t, "Adar II", JewishMonthName(5779, 7))
	assert.Equal(t, "", JewishMonthName(0, 1))
	assert.Equal(t, "", JewishMonthName(5779, 14))
}
