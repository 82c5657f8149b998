package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendar-api/internal/calendar"
	"github.com/zapponejosh/calendar-api/internal/database"
	"github.com/zapponejosh/calendar-api/internal/observance"
)

func observancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "observances",
		Short: "List a year's observances or import definitions",
	}
	cmd.AddCommand(observancesListCmd(), observancesImportCmd())
	return cmd
}

// openDB opens and migrates the database named by --db.
func openDB(ctx context.Context) (*database.DB, error) {
	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return nil, err
	}

	if _, err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// observances list <year>: occurrences in a Gregorian year.
func observancesListCmd() *cobra.Command {
	var (
		ics      bool
		modeName string
	)

	cmd := &cobra.Command{
		Use:   "list <year>",
		Short: "List the observances falling in a Gregorian year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be an integer, got %q", args[0])
			}

			mode, err := calendar.ParseEasterMode(modeName)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			resolver := observance.NewResolver(db, mode, clock, log)
			out := cmd.OutOrStdout()

			if ics {
				data, err := resolver.ICal(ctx, year)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			occurrences, err := resolver.Resolve(ctx, year)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, occ := range occurrences {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\n", occ.Date, occ.Weekday, occ.Name, occ.Calendar, occ.LocalDate)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&ics, "ics", false, "write an iCalendar feed instead of a table")
	cmd.Flags().StringVar(&modeName, "mode", "default", "computus for observances without their own")
	return cmd
}

// observances import <file.json>: upsert definitions from a JSON array in
// one transaction.
func observancesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Create or replace observances from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			var observances []database.Observance
			if err := json.Unmarshal(data, &observances); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			ctx := cmd.Context()
			db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			err = db.WithTx(ctx, func(tx *database.Tx) error {
				for i := range observances {
					if err := tx.UpsertObservance(ctx, &observances[i]); err != nil {
						return fmt.Errorf("observance %d (%q): %w", i, observances[i].Name, err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			log.Info("observances imported",
				slog.String("file", args[0]),
				slog.Int("count", len(observances)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d observances\n", len(observances))
			return nil
		},
	}
}
