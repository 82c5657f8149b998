package observance

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/emersion/go-ical"

	"github.com/zapponejosh/calendar-api/internal/calendar"
)

const (
	icalProdID = "-//Calendar API//Observances//EN"
	icalDomain = "calendar-api"
)

// emptyCalendar is served when a year has no occurrences; the encoder
// refuses a VCALENDAR without components.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + icalProdID + "\r\nEND:VCALENDAR\r\n"

// ICal renders the occurrences of year as an iCalendar feed with one
// all-day event per occurrence.
func (r *Resolver) ICal(ctx context.Context, year int) ([]byte, error) {
	occurrences, err := r.Resolve(ctx, year)
	if err != nil {
		return nil, err
	}

	if len(occurrences) == 0 {
		return []byte(emptyCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icalProdID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")
	cal.Props.SetText("X-WR-CALNAME", fmt.Sprintf("Observances %d", year))

	stamp := r.clock.Now().UTC()

	for _, occ := range occurrences {
		cal.Children = append(cal.Children, newEvent(occ, stamp).Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode iCalendar: %w", err)
	}

	return buf.Bytes(), nil
}

func newEvent(occ Occurrence, stamp time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%d@%s", slug(occ.Name), occ.SDN, icalDomain))
	event.Props.SetText(ical.PropSummary, occ.Name)
	event.Props.SetText(ical.PropDescription, fmt.Sprintf("%s (%s)", occ.LocalDate, occ.Calendar))

	dtStamp := ical.NewProp(ical.PropDateTimeStamp)
	dtStamp.SetDateTime(stamp)
	event.Props.Set(dtStamp)

	start := sdnToTime(occ.SDN)

	dtStart := ical.NewProp(ical.PropDateTimeStart)
	dtStart.SetDate(start)
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(ical.PropDateTimeEnd)
	dtEnd.SetDate(start.AddDate(0, 0, 1))
	event.Props.Set(dtEnd)

	return event
}

func sdnToTime(sdn int) time.Time {
	d := calendar.GregorianCalendar{}.FromSDN(sdn)
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// slug lower-cases name and joins its words with hyphens.
func slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}
