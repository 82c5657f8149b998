package calendar

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// HebrewFlags control how Hebrew numerals are written.
type HebrewFlags int

// The numeric values match the legacy CAL_JEWISH_ADD_* constants.
const (
	// AddAlafimGeresh appends a geresh after the thousands digit.
	AddAlafimGeresh HebrewFlags = 2
	// AddAlafim appends the word "alafim" after the thousands digit.
	AddAlafim HebrewFlags = 4
	// AddGereshayim marks the number with a geresh or gershayim.
	AddGereshayim HebrewFlags = 8
)

const (
	geresh     = '\''
	gershayim  = '"'
	alafimWord = " אלפים "
)

// alefBet maps numeral indices to letters: 1-9 are units, 10-18 tens and
// 19-22 hundreds.
var alefBet = [23]rune{
	0,
	'א', 'ב', 'ג', 'ד', 'ה', 'ו', 'ז', 'ח', 'ט',
	'י', 'כ', 'ל', 'מ', 'נ', 'ס', 'ע', 'פ', 'צ',
	'ק', 'ר', 'ש', 'ת',
}

// HebrewNumeral writes n (1-9999) in Hebrew letters.
func HebrewNumeral(n int, flags HebrewFlags) (string, error) {
	if n < 1 || n > 9999 {
		return "", newArgumentError("number", "must be between 1 and 9999", ErrOutOfRange)
	}

	buf := make([]rune, 0, 16)
	endOfAlafim := 0

	if n >= 1000 {
		buf = append(buf, alefBet[n/1000])
		if flags&AddAlafimGeresh != 0 {
			buf = append(buf, geresh)
		}
		if flags&AddAlafim != 0 {
			buf = append(buf, []rune(alafimWord)...)
		}
		endOfAlafim = len(buf)
		n %= 1000
	}

	for n >= 400 {
		buf = append(buf, alefBet[22])
		n -= 400
	}

	if n >= 100 {
		buf = append(buf, alefBet[18+n/100])
		n %= 100
	}

	// 15 and 16 are written tet-vav and tet-zayin
	if n == 15 || n == 16 {
		buf = append(buf, alefBet[9], alefBet[n-9])
	} else {
		if n >= 10 {
			buf = append(buf, alefBet[9+n/10])
			n %= 10
		}
		if n > 0 {
			buf = append(buf, alefBet[n])
		}
	}

	if flags&AddGereshayim != 0 {
		switch len(buf) - endOfAlafim {
		case 0:
		case 1:
			buf = append(buf, geresh)
		default:
			last := buf[len(buf)-1]
			buf = append(buf[:len(buf)-1], gershayim, last)
		}
	}

	return string(buf), nil
}

var jewishMonthHebrew = [14]string{
	"", "תשרי", "חשון", "כסלו", "טבת", "שבט", "", "אדר",
	"ניסן", "אייר", "סיון", "תמוז", "אב", "אלול",
}

var jewishMonthHebrewLeap = [14]string{
	"", "תשרי", "חשון", "כסלו", "טבת", "שבט", "אדר א'", "אדר ב'",
	"ניסן", "אייר", "סיון", "תמוז", "אב", "אלול",
}

// JewishMonthNameHebrew returns the Hebrew name of month in year.
func JewishMonthNameHebrew(year, month int) string {
	if month < 0 || month > 13 {
		return ""
	}
	if IsJewishLeapYear(year) {
		return jewishMonthHebrewLeap[month]
	}
	return jewishMonthHebrew[month]
}

// FormatJewishHebrew renders sdn as "<day> <month> <year>" in Hebrew
// letters. Years outside 1-9999 are rejected.
func FormatJewishHebrew(sdn int, flags HebrewFlags) (string, error) {
	d := JewishCalendar{}.FromSDN(sdn)
	if d.Year <= 0 || d.Year > 9999 {
		return "", newArgumentError("year", "out of range (0-9999)", ErrOutOfRange)
	}

	day, err := HebrewNumeral(d.Day, flags)
	if err != nil {
		return "", fmt.Errorf("day: %w", err)
	}
	year, err := HebrewNumeral(d.Year, flags)
	if err != nil {
		return "", fmt.Errorf("year: %w", err)
	}

	return strings.Join([]string{day, JewishMonthNameHebrew(d.Year, d.Month), year}, " "), nil
}

// EncodeHebrewLegacy converts UTF-8 Hebrew text to the ISO-8859-8 byte
// string produced by legacy implementations.
func EncodeHebrewLegacy(s string) ([]byte, error) {
	b, err := charmap.ISO8859_8.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode ISO-8859-8: %w", err)
	}
	return b, nil
}
