package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/calendar-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/calendars
//	GET    /api/v1/calendars/{calendar}
//	GET    /api/v1/calendars/{calendar}/sdn?year=&month=&day=
//	GET    /api/v1/calendars/{calendar}/dates/{sdn}[?format=legacy]
//	GET    /api/v1/calendars/{calendar}/days-in-month?year=&month=
//	GET    /api/v1/sdn/{sdn}/weekday?mode=
//	GET    /api/v1/sdn/{sdn}/month-name?mode=
//	GET    /api/v1/sdn/{sdn}/unix
//	GET    /api/v1/sdn/{sdn}/hebrew?flags=&charset=
//	GET    /api/v1/unix/sdn?timestamp=
//	GET    /api/v1/easter?year=&mode=
//	GET    /api/v1/feasts/{year}?mode=
//	GET    /api/v1/observances
//	GET    /api/v1/observances/{year}
//	GET    /api/v1/observances/{year}/ical
//	GET    /api/v1/observances/{name}
//	POST   /api/v1/observances                 (API key)
//	DELETE /api/v1/observances/{name}          (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// ======================================================================
		// Conversions
		// ======================================================================
		r.Get("/calendars", handlers.ListCalendars)
		r.Route("/calendars/{calendar}", func(r chi.Router) {
			r.Get("/", handlers.GetCalendar)
			r.Get("/sdn", handlers.CalendarToSDN)
			r.Get("/dates/{sdn}", handlers.SDNToCalendar)
			r.Get("/days-in-month", handlers.DaysInMonth)
		})

		r.Route("/sdn/{sdn}", func(r chi.Router) {
			r.Get("/weekday", handlers.Weekday)
			r.Get("/month-name", handlers.MonthName)
			r.Get("/unix", handlers.SDNToUnix)
			r.Get("/hebrew", handlers.Hebrew)
		})
		r.Get("/unix/sdn", handlers.UnixToSDN)

		// ======================================================================
		// Easter and observances
		// ======================================================================
		r.Get("/easter", handlers.Easter)
		r.Get("/feasts/{year}", handlers.Feasts)

		r.Get("/observances", handlers.ListObservances)
		// Numeric segments are years; anything else is an observance name.
		r.Get("/observances/{year:[0-9]+}", handlers.ResolveObservances)
		r.Get("/observances/{year:[0-9]+}/ical", handlers.ObservancesICal)
		r.Get("/observances/{name}", handlers.GetObservance)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Post("/observances", handlers.CreateObservance)
			r.Delete("/observances/{name}", handlers.DeleteObservance)
		})
	})

	return r
}
