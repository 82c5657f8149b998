package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/calendar-api/internal/calendar"
	"github.com/zapponejosh/calendar-api/internal/config"
	"github.com/zapponejosh/calendar-api/internal/database"
	"github.com/zapponejosh/calendar-api/internal/logger"
	"github.com/zapponejosh/calendar-api/internal/observance"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	resolver *observance.Resolver
	clock    calendar.Clock
	cfg      *config.Config
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance. A nil clock reads the wall
// clock.
func NewHandlers(db *database.DB, cfg *config.Config, clock calendar.Clock, log *slog.Logger) *Handlers {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &Handlers{
		db:       db,
		resolver: observance.NewResolver(db, cfg.DefaultEasterMode(), clock, log),
		clock:    clock,
		cfg:      cfg,
		logger:   log,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// =============================================================================
// Calendars
// =============================================================================

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	info, err := calendar.Info(calendar.AllCalendars)
	if err != nil {
		h.writeError(w, r, err, "Failed to list calendars")
		return
	}

	WriteSuccess(w, info)
}

// GetCalendar handles GET /api/v1/calendars/{calendar}
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	c, err := calendar.ParseCalendar(chi.URLParam(r, "calendar"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	info, err := calendar.Info(c)
	if err != nil {
		h.writeError(w, r, err, "Failed to describe calendar")
		return
	}

	WriteSuccess(w, info[0])
}

// CalendarToSDN handles GET /api/v1/calendars/{calendar}/sdn?year=&month=&day=
//
// Dates the calendar cannot represent give sdn 0.
func (h *Handlers) CalendarToSDN(w http.ResponseWriter, r *http.Request) {
	c, err := calendar.ParseCalendar(chi.URLParam(r, "calendar"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	q := r.URL.Query()
	year, err := requiredInt(q.Get("year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := requiredInt(q.Get("month"), "month")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	day, err := requiredInt(q.Get("day"), "day")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	sdn, err := calendar.ToSDN(c, year, month, day)
	if err != nil {
		h.writeError(w, r, err, "Failed to convert date")
		return
	}

	WriteSuccess(w, map[string]any{
		"calendar": c.String(),
		"year":     year,
		"month":    month,
		"day":      day,
		"sdn":      sdn,
	})
}

// SDNToCalendar handles GET /api/v1/calendars/{calendar}/dates/{sdn}
//
// With format=legacy only the historical m/d/y string is returned.
func (h *Handlers) SDNToCalendar(w http.ResponseWriter, r *http.Request) {
	c, err := calendar.ParseCalendar(chi.URLParam(r, "calendar"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	sdn, err := requiredInt(chi.URLParam(r, "sdn"), "sdn")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	if r.URL.Query().Get("format") == "legacy" {
		date, err := calendar.FormatSDN(c, sdn)
		if err != nil {
			h.writeError(w, r, err, "Failed to format serial day number")
			return
		}
		WriteSuccess(w, map[string]any{
			"calendar": c.String(),
			"sdn":      sdn,
			"date":     date,
		})
		return
	}

	info, err := calendar.FromSDN(sdn, c)
	if err != nil {
		h.writeError(w, r, err, "Failed to convert serial day number")
		return
	}

	WriteSuccess(w, info)
}

// DaysInMonth handles GET /api/v1/calendars/{calendar}/days-in-month?year=&month=
func (h *Handlers) DaysInMonth(w http.ResponseWriter, r *http.Request) {
	c, err := calendar.ParseCalendar(chi.URLParam(r, "calendar"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	q := r.URL.Query()
	year, err := requiredInt(q.Get("year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := requiredInt(q.Get("month"), "month")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	days, err := calendar.DaysInMonth(c, month, year)
	if err != nil {
		h.writeError(w, r, err, "Failed to count days")
		return
	}

	WriteSuccess(w, map[string]any{
		"calendar": c.String(),
		"year":     year,
		"month":    month,
		"days":     days,
	})
}

// =============================================================================
// Serial day numbers
// =============================================================================

var weekdayModes = map[string]calendar.DayOfWeekMode{
	"":       calendar.DayNumber,
	"number": calendar.DayNumber,
	"long":   calendar.DayLong,
	"short":  calendar.DayShort,
	"0":      calendar.DayNumber,
	"1":      calendar.DayLong,
	"2":      calendar.DayShort,
}

// Weekday handles GET /api/v1/sdn/{sdn}/weekday?mode=number|long|short
func (h *Handlers) Weekday(w http.ResponseWriter, r *http.Request) {
	sdn, err := requiredInt(chi.URLParam(r, "sdn"), "sdn")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	mode, ok := weekdayModes[strings.ToLower(r.URL.Query().Get("mode"))]
	if !ok {
		WriteBadRequest(w, "mode must be one of number, long, short")
		return
	}

	WriteSuccess(w, map[string]any{
		"sdn":     sdn,
		"dow":     calendar.DayOfWeek(sdn),
		"weekday": calendar.FormatDayOfWeek(sdn, mode),
	})
}

// MonthName handles GET /api/v1/sdn/{sdn}/month-name?mode=0..5
func (h *Handlers) MonthName(w http.ResponseWriter, r *http.Request) {
	sdn, err := requiredInt(chi.URLParam(r, "sdn"), "sdn")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	mode, err := optionalInt(r.URL.Query().Get("mode"), "mode", 0)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, map[string]any{
		"sdn":        sdn,
		"mode":       mode,
		"month_name": calendar.MonthName(sdn, calendar.MonthNameMode(mode)),
	})
}

// SDNToUnix handles GET /api/v1/sdn/{sdn}/unix
func (h *Handlers) SDNToUnix(w http.ResponseWriter, r *http.Request) {
	sdn, err := requiredInt(chi.URLParam(r, "sdn"), "sdn")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	ts, err := calendar.SDNToUnix(sdn)
	if err != nil {
		h.writeError(w, r, err, "Failed to convert to timestamp")
		return
	}

	WriteSuccess(w, map[string]any{
		"sdn":       sdn,
		"timestamp": ts,
	})
}

// Hebrew handles GET /api/v1/sdn/{sdn}/hebrew?flags=&charset=utf-8|iso-8859-8
//
// The ISO-8859-8 rendering is returned as a plain text body.
func (h *Handlers) Hebrew(w http.ResponseWriter, r *http.Request) {
	sdn, err := requiredInt(chi.URLParam(r, "sdn"), "sdn")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	q := r.URL.Query()
	flags, err := optionalInt(q.Get("flags"), "flags", 0)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	text, err := calendar.FormatJewishHebrew(sdn, calendar.HebrewFlags(flags))
	if err != nil {
		h.writeError(w, r, err, "Failed to format Hebrew date")
		return
	}

	switch strings.ToLower(q.Get("charset")) {
	case "", "utf-8", "utf8":
		WriteSuccess(w, map[string]any{
			"sdn":    sdn,
			"flags":  flags,
			"hebrew": text,
		})
	case "iso-8859-8":
		legacy, err := calendar.EncodeHebrewLegacy(text)
		if err != nil {
			h.writeError(w, r, err, "Failed to encode Hebrew date")
			return
		}
		WriteText(w, "text/plain; charset=iso-8859-8", legacy)
	default:
		WriteBadRequest(w, "charset must be utf-8 or iso-8859-8")
	}
}

// UnixToSDN handles GET /api/v1/unix/sdn?timestamp=
//
// Without a timestamp the current time is used.
func (h *Handlers) UnixToSDN(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("timestamp")

	ts := h.clock.Now().Unix()
	if raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteBadRequest(w, "timestamp must be an integer")
			return
		}
		ts = parsed
	}

	sdn, err := calendar.UnixToSDN(ts)
	if err != nil {
		h.writeError(w, r, err, "Failed to convert timestamp")
		return
	}

	WriteSuccess(w, map[string]any{
		"timestamp": ts,
		"sdn":       sdn,
	})
}

// =============================================================================
// Easter
// =============================================================================

// Easter handles GET /api/v1/easter?year=&mode=
//
// days is the offset of Easter from March 21 in the computus' own
// calendar. date and timestamp compose that month/day with the year and are
// only present for years EasterDate accepts. civil_date is the Gregorian
// day Easter was actually kept.
func (h *Handlers) Easter(w http.ResponseWriter, r *http.Request) {
	year, mode, err := h.easterParams(r, r.URL.Query().Get("year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	days := calendar.EasterDays(year, mode)
	month, day := calendar.EasterMonthDay(days)
	sdn := calendar.EasterSDN(year, mode)

	resp := map[string]any{
		"year":   year,
		"mode":   mode.String(),
		"days":   days,
		"month":  month,
		"day":    day,
		"julian": mode.UsesJulian(year),
		"sdn":    sdn,
	}
	if g := (calendar.GregorianCalendar{}).FromSDN(sdn); !g.IsZero() {
		resp["civil_date"] = fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day)
	}

	if date, err := calendar.EasterDate(year, mode); err == nil {
		resp["date"] = date.Format("2006-01-02")
		resp["timestamp"] = date.Unix()
	}

	WriteSuccess(w, resp)
}

// Feasts handles GET /api/v1/feasts/{year}?mode=
func (h *Handlers) Feasts(w http.ResponseWriter, r *http.Request) {
	year, mode, err := h.easterParams(r, chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	feasts := calendar.MovableFeasts(year, mode)
	if feasts == nil {
		WriteBadRequest(w, fmt.Sprintf("Easter cannot be placed in year %d", year))
		return
	}

	WriteSuccess(w, map[string]any{
		"year":          year,
		"mode":          mode.String(),
		"feasts":        feasts,
		"advent_sunday": calendar.AdventSunday(year),
	})
}

// easterParams reads the year (defaulting to the current one) and the
// mode query parameter (defaulting to the configured mode).
func (h *Handlers) easterParams(r *http.Request, rawYear string) (int, calendar.EasterMode, error) {
	year, err := optionalInt(rawYear, "year", calendar.CurrentYear(h.clock))
	if err != nil {
		return 0, 0, err
	}

	mode := h.resolver.Mode()
	if raw := r.URL.Query().Get("mode"); raw != "" {
		mode, err = calendar.ParseEasterMode(raw)
		if err != nil {
			return 0, 0, err
		}
	}

	return year, mode, nil
}

// =============================================================================
// Observances
// =============================================================================

// ListObservances handles GET /api/v1/observances
func (h *Handlers) ListObservances(w http.ResponseWriter, r *http.Request) {
	observances, err := h.db.ListObservances(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to list observances")
		return
	}

	WriteSuccess(w, observances)
}

// GetObservance handles GET /api/v1/observances/{name}
func (h *Handlers) GetObservance(w http.ResponseWriter, r *http.Request) {
	o, err := h.db.GetObservanceByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err, "Failed to get observance")
		return
	}

	WriteSuccess(w, o)
}

// ResolveObservances handles GET /api/v1/observances/{year}
func (h *Handlers) ResolveObservances(w http.ResponseWriter, r *http.Request) {
	year, err := requiredInt(chi.URLParam(r, "year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	occurrences, err := h.resolver.Resolve(r.Context(), year)
	if err != nil {
		h.writeError(w, r, err, "Failed to resolve observances")
		return
	}

	WriteSuccess(w, map[string]any{
		"year":        year,
		"occurrences": occurrences,
	})
}

// ObservancesICal handles GET /api/v1/observances/{year}/ical
func (h *Handlers) ObservancesICal(w http.ResponseWriter, r *http.Request) {
	year, err := requiredInt(chi.URLParam(r, "year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	data, err := h.resolver.ICal(r.Context(), year)
	if err != nil {
		h.writeError(w, r, err, "Failed to build calendar feed")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=observances-%d.ics", year))
	WriteText(w, "text/calendar; charset=utf-8", data)
}

// CreateObservance handles POST /api/v1/observances
func (h *Handlers) CreateObservance(w http.ResponseWriter, r *http.Request) {
	var o database.Observance
	if err := decodeJSON(r, &o); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.db.CreateObservance(r.Context(), &o); err != nil {
		h.writeError(w, r, err, "Failed to create observance")
		return
	}

	h.log(r).Info("observance created",
		slog.String("name", o.Name),
		slog.String("kind", string(o.Kind)),
	)

	WriteCreated(w, o)
}

// DeleteObservance handles DELETE /api/v1/observances/{name}
func (h *Handlers) DeleteObservance(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		WriteBadRequest(w, "Observance name is required")
		return
	}

	if err := h.db.DeleteObservance(r.Context(), name); err != nil {
		h.writeError(w, r, err, "Failed to delete observance")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Observance deleted"})
}

// =============================================================================
// Helpers
// =============================================================================

// writeError maps rejected input to 400, missing records to 404 and name
// clashes to 409. Anything else is logged and reported as a 500 with msg.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, calendar.ErrInvalidCalendar),
		errors.Is(err, calendar.ErrOutOfRange),
		errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, database.ErrInvalid):
		WriteBadRequest(w, err.Error())
	case database.IsNotFound(err):
		WriteNotFound(w, "Observance not found")
	case errors.Is(err, database.ErrDuplicate):
		WriteConflict(w, err.Error())
	default:
		h.log(r).Error(msg, slog.Any("error", err))
		WriteInternalError(w, msg)
	}
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

func requiredInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

func optionalInt(raw, name string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return requiredInt(raw, name)
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
