// Package observance places stored observances on the days they fall in a
// Gregorian civil year.
package observance

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/zapponejosh/calendar-api/internal/calendar"
	"github.com/zapponejosh/calendar-api/internal/database"
)

// Civil years Resolve accepts.
const (
	MinYear = 1
	MaxYear = 9999
)

// Store lists observance definitions. *database.DB satisfies it.
type Store interface {
	ListObservances(ctx context.Context) ([]database.Observance, error)
}

// Occurrence is one day on which an observance falls.
type Occurrence struct {
	Name      string                  `json:"name"`
	Kind      database.ObservanceKind `json:"kind"`
	SDN       int                     `json:"sdn"`
	Date      string                  `json:"date"` // Gregorian, YYYY-MM-DD
	Weekday   string                  `json:"weekday"`
	Calendar  string                  `json:"calendar"`   // calendar the definition is written in
	LocalDate string                  `json:"local_date"` // m/d/y in that calendar
}

// Resolver turns observance definitions into occurrences.
type Resolver struct {
	store  Store
	mode   calendar.EasterMode
	clock  calendar.Clock
	logger *slog.Logger
}

// NewResolver creates a resolver. mode is used for Easter observances that
// don't name their own.
func NewResolver(store Store, mode calendar.EasterMode, clock calendar.Clock, logger *slog.Logger) *Resolver {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		store:  store,
		mode:   mode,
		clock:  clock,
		logger: logger,
	}
}

// Mode returns the default Easter mode.
func (r *Resolver) Mode() calendar.EasterMode {
	return r.mode
}

// Resolve returns every occurrence of every stored observance between
// January 1 and December 31 of the Gregorian year, ordered by day and then
// by name. Definitions that cannot be placed are logged and skipped.
func (r *Resolver) Resolve(ctx context.Context, year int) ([]Occurrence, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("year must be between %d and %d: %w", MinYear, MaxYear, calendar.ErrOutOfRange)
	}

	observances, err := r.store.ListObservances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list observances: %w", err)
	}

	civil := civilYear(year)
	occurrences := make([]Occurrence, 0, len(observances))

	for _, o := range observances {
		var days []int

		switch o.Kind {
		case database.KindEaster:
			days = r.easterDays(o, civil)
		case database.KindFixed:
			days, err = fixedDays(o, civil)
			if err != nil {
				r.logger.WarnContext(ctx, "skipping observance",
					slog.String("name", o.Name),
					slog.Any("error", err),
				)
				continue
			}
		default:
			r.logger.WarnContext(ctx, "skipping observance of unknown kind",
				slog.String("name", o.Name),
				slog.String("kind", string(o.Kind)),
			)
			continue
		}

		if len(days) == 0 {
			r.logger.DebugContext(ctx, "observance does not fall in year",
				slog.String("name", o.Name),
				slog.Int("year", year),
			)
		}

		for _, sdn := range days {
			occ, err := newOccurrence(o, sdn)
			if err != nil {
				r.logger.WarnContext(ctx, "skipping observance",
					slog.String("name", o.Name),
					slog.Any("error", err),
				)
				break
			}
			occurrences = append(occurrences, occ)
		}
	}

	slices.SortFunc(occurrences, func(a, b Occurrence) int {
		return cmp.Or(cmp.Compare(a.SDN, b.SDN), cmp.Compare(a.Name, b.Name))
	})

	return occurrences, nil
}

// span is an inclusive range of serial day numbers.
type span struct {
	first, last int
}

func civilYear(year int) span {
	g := calendar.GregorianCalendar{}
	return span{first: g.ToSDN(year, 1, 1), last: g.ToSDN(year, 12, 31)}
}

func (s span) contains(sdn int) bool {
	return sdn >= s.first && sdn <= s.last
}

// easterDays checks the Easters of the neighbouring years too, so large
// offsets that cross January 1 still land in the right civil year.
func (r *Resolver) easterDays(o database.Observance, s span) []int {
	mode := r.mode
	if o.EasterMode != nil {
		mode = calendar.EasterMode(*o.EasterMode)
	}

	year := calendar.GregorianCalendar{}.FromSDN(s.first).Year

	var days []int
	for y := year - 1; y <= year+1; y++ {
		easter := calendar.EasterSDN(y, mode)
		if easter == 0 {
			continue
		}
		if sdn := easter + o.EasterOffset; s.contains(sdn) {
			days = append(days, sdn)
		}
	}
	return days
}

// fixedDays converts month/day in each year of the observance's calendar
// that overlaps s. Dates that don't exist in a given year, like Adar I in
// a Jewish common year, are dropped.
func fixedDays(o database.Observance, s span) ([]int, error) {
	conv, err := calendar.Calendar(o.Calendar).Converter()
	if err != nil {
		return nil, err
	}

	first, last := conv.FromSDN(s.first), conv.FromSDN(s.last)
	switch {
	case first.IsZero() && last.IsZero():
		// The civil year lies entirely outside the calendar's range.
		return nil, nil
	case first.IsZero():
		first = last
	case last.IsZero():
		last = first
	}
	from, to := first.Year, last.Year

	var days []int
	for y := from; y <= to; y++ {
		if y == 0 {
			continue
		}

		sdn := conv.ToSDN(y, o.Month, o.Day)
		if sdn == 0 {
			continue
		}

		want := calendar.Date{Year: y, Month: o.Month, Day: o.Day}
		if conv.FromSDN(sdn) != want {
			continue
		}

		if s.contains(sdn) {
			days = append(days, sdn)
		}
	}
	return days, nil
}

func newOccurrence(o database.Observance, sdn int) (Occurrence, error) {
	g := calendar.GregorianCalendar{}.FromSDN(sdn)

	source := calendar.Gregorian
	if o.Kind == database.KindFixed {
		source = calendar.Calendar(o.Calendar)
	}
	conv, err := source.Converter()
	if err != nil {
		return Occurrence{}, err
	}

	return Occurrence{
		Name:      o.Name,
		Kind:      o.Kind,
		SDN:       sdn,
		Date:      fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day),
		Weekday:   calendar.FormatDayOfWeek(sdn, calendar.DayLong),
		Calendar:  source.String(),
		LocalDate: conv.FromSDN(sdn).String(),
	}, nil
}
