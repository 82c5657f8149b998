package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendar-api/internal/calendar"
)

// hebrew <sdn>: Jewish date in Hebrew letters.
func hebrewCmd() *cobra.Command {
	var (
		flags  int
		legacy bool
	)

	cmd := &cobra.Command{
		Use:   "hebrew <sdn>",
		Short: "Render a serial day number as a Hebrew date",
		Long: `Render a serial day number as a Hebrew date.

Flags may be combined: 2 adds a geresh after the thousands letter, 4 adds
the word for thousands, 8 adds gereshayim before the last letter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdn, err := parseSDN(args[0])
			if err != nil {
				return err
			}

			text, err := calendar.FormatJewishHebrew(sdn, calendar.HebrewFlags(flags))
			if err != nil {
				return err
			}

			if !legacy {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			b, err := calendar.EncodeHebrewLegacy(text)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(b, '\n'))
			return err
		},
	}

	cmd.Flags().IntVar(&flags, "flags", 0, "formatting flags (2, 4, 8 or a sum)")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "write ISO-8859-8 bytes instead of UTF-8")
	return cmd
}
