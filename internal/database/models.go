package database

import (
	"fmt"
	"strings"
	"time"
)

// ObservanceKind says how an observance is placed in a year.
type ObservanceKind string

const (
	// KindFixed observances fall on a fixed month and day of one calendar.
	KindFixed ObservanceKind = "fixed"
	// KindEaster observances fall a fixed number of days from Easter.
	KindEaster ObservanceKind = "easter"
)

// IsValid checks if a kind is known.
func (k ObservanceKind) IsValid() bool {
	return k == KindFixed || k == KindEaster
}

// Observance is a named recurring day.
//
// Fixed observances use Calendar, Month and Day, where Calendar is a
// calendar id (0 Gregorian, 1 Julian, 2 Jewish, 3 French). Easter
// observances use EasterOffset and EasterMode; a nil EasterMode means the
// server default.
type Observance struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Kind         ObservanceKind `json:"kind"`
	Calendar     int            `json:"calendar"`
	Month        int            `json:"month,omitempty"`
	Day          int            `json:"day,omitempty"`
	EasterOffset int            `json:"easter_offset,omitempty"`
	EasterMode   *int           `json:"easter_mode,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Validate checks the fields the schema constrains.
func (o *Observance) Validate() error {
	var problems []string

	if strings.TrimSpace(o.Name) == "" {
		problems = append(problems, "name is required")
	}

	switch o.Kind {
	case KindFixed:
		if o.Calendar < 0 || o.Calendar > 3 {
			problems = append(problems, fmt.Sprintf("calendar must be 0-3, got %d", o.Calendar))
		}
		if o.Month < 1 || o.Month > 13 {
			problems = append(problems, fmt.Sprintf("month must be 1-13, got %d", o.Month))
		}
		if o.Day < 1 || o.Day > 31 {
			problems = append(problems, fmt.Sprintf("day must be 1-31, got %d", o.Day))
		}
	case KindEaster:
		if o.EasterMode != nil && (*o.EasterMode < 0 || *o.EasterMode > 3) {
			problems = append(problems, fmt.Sprintf("easter_mode must be 0-3, got %d", *o.EasterMode))
		}
		if o.EasterOffset < -366 || o.EasterOffset > 366 {
			problems = append(problems, fmt.Sprintf("easter_offset must be within a year, got %d", o.EasterOffset))
		}
	default:
		problems = append(problems, fmt.Sprintf("kind must be %q or %q, got %q", KindFixed, KindEaster, o.Kind))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
