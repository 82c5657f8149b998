// Package commands defines the calctl CLI.
//
// Commands
//
//   - to-sdn          Convert a calendar date to a serial day number
//   - from-sdn        Break a serial day number down in one calendar
//   - days-in-month   Count the days of a month
//   - easter          Compute Easter for a year
//   - hebrew          Render a serial day number as a Hebrew date
//   - info            Describe one calendar or all of them
//   - observances     List a year's observances or import definitions
//
// Only the observances commands touch the database; it is opened on demand
// from --db.
package commands
