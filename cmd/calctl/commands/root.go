package commands

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendar-api/internal/calendar"
	"github.com/zapponejosh/calendar-api/internal/logger"
)

var (
	dbPath   string
	logLevel string

	log   *slog.Logger
	clock calendar.Clock = calendar.SystemClock{}
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "calctl",
		Short:        "Calendar conversions, Easter dates and observances",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = logger.New(cmd.ErrOrStderr(), logLevel, "text")
			return nil
		},
	}

	defaultDB := os.Getenv("DATABASE_PATH")
	if defaultDB == "" {
		defaultDB = "./data/calendar.db"
	}

	root.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "SQLite database for observances (env DATABASE_PATH)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		toSDNCmd(),
		fromSDNCmd(),
		daysInMonthCmd(),
		easterCmd(),
		hebrewCmd(),
		infoCmd(),
		observancesCmd(),
	)
	return root
}

// calendarFlag registers --calendar on cmd.
func calendarFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "calendar", "c", "gregorian", "calendar: gregorian, julian, jewish, french or 0-3")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
