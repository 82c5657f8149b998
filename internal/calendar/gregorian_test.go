package calendar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGregorianToSDN(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             int
	}{
		{"first day", -4714, 11, 25, 1},
		{"day before first", -4714, 11, 24, 0},
		{"october 4714 BCE", -4714, 10, 30, 0},
		{"year 74", 74, 8, 26, 1748326},
		{"declaration", 1776, 7, 4, 2369916},
		{"1582 new year", 1582, 1, 1, 2298874},
		{"reform gap", 1582, 10, 5, 2299151},
		{"unix epoch", 1970, 1, 1, 2440588},
		{"christmas 2019", 2019, 12, 25, 2458843},
		{"far future", 2999, 1, 1, 2816423},
		{"year six million", 6000000, 5, 5, 2193176185},
		{"year zero", 0, 1, 1, 0},
		{"before epoch year", -4715, 12, 31, 0},
		{"month zero", 2000, 0, 1, 0},
		{"month thirteen", 2000, 13, 1, 0},
		{"day zero", 2000, 1, 0, 0},
		{"day 32", 2000, 1, 32, 0},
		{"year overflow", math.MaxInt32 + 1, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GregorianCalendar{}.ToSDN(tt.year, tt.month, tt.day))
		})
	}
}

func TestGregorianFromSDN(t *testing.T) {
	tests := []struct {
		sdn  int
		want Date
	}{
		{1, Date{-4714, 11, 25}},
		{2440588, Date{1970, 1, 1}},
		{2458843, Date{2019, 12, 25}},
		{1721426, Date{1, 1, 1}},
		{1721425, Date{-1, 12, 31}},
		{0, Date{}},
		{-5, Date{}},
		{math.MaxInt, Date{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GregorianCalendar{}.FromSDN(tt.sdn), "sdn %d", tt.sdn)
	}
}

func TestGregorianInverse(t *testing.T) {
	conv := GregorianCalendar{}

	for sdn := 1; sdn < 2470000; sdn += 97 {
		d := conv.FromSDN(sdn)
		assert.Equal(t, sdn, conv.ToSDN(d.Year, d.Month, d.Day), "sdn %d (%s)", sdn, d)
	}
}

func TestGregorianRoundTripByDate(t *testing.T) {
	conv := GregorianCalendar{}

	for _, year := range []int{-4713, -1, 1, 1582, 1900, 2000, 2024} {
		for month := 1; month <= 12; month++ {
			days, err := DaysInMonth(Gregorian, month, year)
			if !assert.NoError(t, err) {
				continue
			}
			for day := 1; day <= days; day++ {
				sdn := conv.ToSDN(year, month, day)
				assert.Equal(t, Date{year, month, day}, conv.FromSDN(sdn))
			}
		}
	}
}

func TestGregorianMonotonic(t *testing.T) {
	conv := GregorianCalendar{}

	prev := 0
	for year := 1990; year <= 2010; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 28; day++ {
				sdn := conv.ToSDN(year, month, day)
				assert.Greater(t, sdn, prev)
				prev = sdn
			}
		}
	}
}

func TestJulianMonotonic(t *testing.T) {
	conv := JulianCalendar{}

	prev := conv.ToSDN(-51, 12, 31)
	for year := -50; year <= 50; year++ {
		if year == 0 {
			continue
		}
		for month := 1; month <= 12; month++ {
			days, err := DaysInMonth(Julian, month, year)
			require.NoError(t, err)
			for day := 1; day <= days; day++ {
				sdn := conv.ToSDN(year, month, day)
				require.Equal(t, prev+1, sdn, "%d/%d/%d", month, day, year)
				prev = sdn
			}
		}
	}
}

func TestToSDNIsWeak(t *testing.T) {
	// February 30 is not a date but still maps to a positive SDN. Only the
	// round trip exposes it.
	sdn := GregorianCalendar{}.ToSDN(2019, 2, 30)
	assert.Positive(t, sdn)
	assert.Equal(t, Date{2019, 3, 2}, GregorianCalendar{}.FromSDN(sdn))
}

func TestJulianToSDN(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             int
	}{
		{"first day", -4713, 1, 2, 1},
		{"sdn zero", -4713, 1, 1, 0},
		{"before epoch year", -4714, 12, 31, 0},
		{"year 74", 74, 8, 26, 1748324},
		{"christmas 2019", 2019, 12, 25, 2458856},
		{"year zero", 0, 6, 1, 0},
		{"month thirteen", 1000, 13, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JulianCalendar{}.ToSDN(tt.year, tt.month, tt.day))
		})
	}
}

func TestJulianInverse(t *testing.T) {
	conv := JulianCalendar{}

	for sdn := 1; sdn < 2470000; sdn += 101 {
		d := conv.FromSDN(sdn)
		assert.Equal(t, sdn, conv.ToSDN(d.Year, d.Month, d.Day), "sdn %d (%s)", sdn, d)
	}

	assert.Equal(t, Date{}, conv.FromSDN(0))
	assert.Equal(t, Date{}, conv.FromSDN(math.MaxInt))
}

func TestFormatJulian(t *testing.T) {
	assert.Equal(t, "12/25/2019", FormatJulian(2458856))
	assert.Equal(t, "1/2/-4713", FormatJulian(1))
	assert.Equal(t, "0/0/0", FormatJulian(0))
}

func TestFormatGregorianLegacy(t *testing.T) {
	tests := []struct {
		sdn  int
		want string
	}{
		{2458489, "1/5/2019"},
		{2458465, "12/12/2018"},
		{1, "11/25/-4714"},
		{536838866, "10/17/1465102"},
		{536838867, "0/0/0"},
		{0, "0/0/0"},
		{-1, "0/0/0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatGregorianLegacy(tt.sdn), "sdn %d", tt.sdn)
	}
}

func TestFormatGregorianLegacyMatchesConverter(t *testing.T) {
	for sdn := 1; sdn < 2470000; sdn += 1009 {
		assert.Equal(t, GregorianCalendar{}.FromSDN(sdn).String(), FormatGregorianLegacy(sdn), "sdn %d", sdn)
	}
}
