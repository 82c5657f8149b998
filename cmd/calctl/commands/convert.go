package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendar-api/internal/calendar"
)

// to-sdn: calendar date to serial day number. Invalid dates print 0.
func toSDNCmd() *cobra.Command {
	var (
		cal             string
		year, month, dy int
	)

	cmd := &cobra.Command{
		Use:   "to-sdn",
		Short: "Convert a calendar date to a serial day number",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := calendar.ParseCalendar(cal)
			if err != nil {
				return err
			}

			sdn, err := calendar.ToSDN(c, year, month, dy)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sdn)
			return nil
		},
	}

	calendarFlag(cmd, &cal)
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "month")
	cmd.Flags().IntVarP(&dy, "day", "d", 0, "day")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}

// from-sdn [sdn]: break a serial day number, by default today's, down in
// one calendar.
func fromSDNCmd() *cobra.Command {
	var (
		cal    string
		asJSON bool
		legacy bool
	)

	cmd := &cobra.Command{
		Use:   "from-sdn [sdn]",
		Short: "Break a serial day number down in one calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdn := calendar.Today(clock)
			if len(args) == 1 {
				parsed, err := parseSDN(args[0])
				if err != nil {
					return err
				}
				sdn = parsed
			}

			c, err := calendar.ParseCalendar(cal)
			if err != nil {
				return err
			}

			if legacy {
				s, err := calendar.FormatSDN(c, sdn)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}

			info, err := calendar.FromSDN(sdn, c)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}

			out := cmd.OutOrStdout()
			if info.DayOfWeek == nil {
				fmt.Fprintf(out, "%s  %d %s %d\n", info.Date, info.Day, info.MonthName, info.Year)
				return nil
			}
			fmt.Fprintf(out, "%s  %s, %d %s %d\n", info.Date, info.DayName, info.Day, info.MonthName, info.Year)
			return nil
		},
	}

	calendarFlag(cmd, &cal)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full breakdown as JSON")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "print only the legacy m/d/y string")
	cmd.MarkFlagsMutuallyExclusive("json", "legacy")
	return cmd
}

// days-in-month: number of days in a month of a calendar year.
func daysInMonthCmd() *cobra.Command {
	var (
		cal         string
		year, month int
	)

	cmd := &cobra.Command{
		Use:   "days-in-month",
		Short: "Count the days in a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := calendar.ParseCalendar(cal)
			if err != nil {
				return err
			}

			days, err := calendar.DaysInMonth(c, month, year)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), days)
			return nil
		},
	}

	calendarFlag(cmd, &cal)
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "month")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

// info [calendar]: calendar metadata as JSON.
func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [calendar]",
		Short: "Describe one calendar, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := calendar.AllCalendars
			if len(args) == 1 {
				parsed, err := calendar.ParseCalendar(args[0])
				if err != nil {
					return err
				}
				c = parsed
			}

			info, err := calendar.Info(c)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return writeJSON(cmd.OutOrStdout(), info[0])
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
}

func parseSDN(s string) (int, error) {
	sdn, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("sdn must be an integer, got %q", s)
	}
	return sdn, nil
}
