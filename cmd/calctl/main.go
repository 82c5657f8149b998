// Command calctl converts dates between calendars and manages observances
// from the command line.
package main

import (
	"os"

	"github.com/zapponejosh/calendar-api/cmd/calctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
