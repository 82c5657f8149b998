package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendar-api/internal/calendar"
)

// easter: the date of Easter Sunday, or with --days its offset from March 21.
func easterCmd() *cobra.Command {
	var (
		year     int
		modeName string
		daysOnly bool
		feasts   bool
	)

	cmd := &cobra.Command{
		Use:   "easter",
		Short: "Compute Easter for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := calendar.ParseEasterMode(modeName)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("year") {
				year = calendar.CurrentYear(clock)
			}

			out := cmd.OutOrStdout()

			if daysOnly {
				fmt.Fprintln(out, calendar.EasterDays(year, mode))
				return nil
			}

			if feasts {
				for _, f := range calendar.MovableFeasts(year, mode) {
					fmt.Fprintf(out, "%-14s %s\n", f.Name, isoDate(f.SDN))
				}
				fmt.Fprintf(out, "%-14s %s\n", "Advent Sunday", isoDate(calendar.AdventSunday(year)))
				return nil
			}

			sdn := calendar.EasterSDN(year, mode)
			if sdn == 0 {
				return fmt.Errorf("easter cannot be placed in year %d", year)
			}

			month, day := calendar.EasterMonthDay(calendar.EasterDays(year, mode))
			if mode.UsesJulian(year) {
				fmt.Fprintf(out, "%s (Julian %d/%d)\n", isoDate(sdn), month, day)
				return nil
			}
			fmt.Fprintln(out, isoDate(sdn))
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default current year)")
	cmd.Flags().StringVar(&modeName, "mode", "default", "computus: default, roman, gregorian, julian")
	cmd.Flags().BoolVar(&daysOnly, "days", false, "print days after March 21 instead of the date")
	cmd.Flags().BoolVar(&feasts, "feasts", false, "list the movable feasts of the year")
	cmd.MarkFlagsMutuallyExclusive("days", "feasts")
	return cmd
}

// isoDate formats sdn as a proleptic Gregorian YYYY-MM-DD.
func isoDate(sdn int) string {
	d := calendar.GregorianCalendar{}.FromSDN(sdn)
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
