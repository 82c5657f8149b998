package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/calendar-api/internal/calendar"
)

// run executes calctl with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	clock = calendar.FixedClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	t.Cleanup(func() { clock = calendar.SystemClock{} })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--log-level", "error"))

	err := root.Execute()
	return out.String(), err
}

func TestToSDN(t *testing.T) {
	out, err := run(t, "to-sdn", "--calendar", "jewish", "-y", "5785", "-m", "1", "-d", "1")
	require.NoError(t, err)
	assert.Equal(t, "2460587\n", out)

	out, err = run(t, "to-sdn", "-y", "2019", "-m", "2", "-d", "30")
	require.NoError(t, err)
	assert.Equal(t, "2458545\n", out)

	_, err = run(t, "to-sdn", "--calendar", "aztec", "-y", "1", "-m", "1", "-d", "1")
	assert.ErrorIs(t, err, calendar.ErrInvalidCalendar)

	_, err = run(t, "to-sdn", "-y", "2024")
	assert.Error(t, err)
}

func TestFromSDN(t *testing.T) {
	out, err := run(t, "from-sdn", "2460401")
	require.NoError(t, err)
	assert.Equal(t, "3/31/2024  Sunday, 31 March 2024\n", out)

	out, err = run(t, "from-sdn", "2460424", "-c", "jewish", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"date": "8/15/5784"`)
	assert.Contains(t, out, `"monthname": "Nisan"`)

	// Defaults to today, 2024-06-01 on the test clock.
	out, err = run(t, "from-sdn", "--legacy")
	require.NoError(t, err)
	assert.Equal(t, "6/1/2024\n", out)

	out, err = run(t, "from-sdn", "2375840", "-c", "french", "--legacy")
	require.NoError(t, err)
	assert.Equal(t, "1/1/1\n", out)

	_, err = run(t, "from-sdn", "tomorrow")
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	out, err := run(t, "days-in-month", "-y", "2000", "-m", "2")
	require.NoError(t, err)
	assert.Equal(t, "29\n", out)

	out, err = run(t, "days-in-month", "-c", "french", "-y", "14", "-m", "13")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	_, err = run(t, "days-in-month", "-y", "2000", "-m", "0")
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestEaster(t *testing.T) {
	out, err := run(t, "easter", "-y", "2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-31\n", out)

	out, err = run(t, "easter", "-y", "2024", "--mode", "julian")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-05 (Julian 4/22)\n", out)

	out, err = run(t, "easter", "--days")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, err = run(t, "easter", "-y", "2024", "--feasts")
	require.NoError(t, err)
	assert.Contains(t, out, "Ash Wednesday  2024-02-14")
	assert.Contains(t, out, "Pentecost      2024-05-19")
	assert.Contains(t, out, "Advent Sunday  2024-12-01")

	_, err = run(t, "easter", "--mode", "coptic")
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestHebrew(t *testing.T) {
	out, err := run(t, "hebrew", "2458465")
	require.NoError(t, err)
	assert.Equal(t, "ד טבת התשעט\n", out)

	out, err = run(t, "hebrew", "2458465", "--legacy")
	require.NoError(t, err)
	assert.Len(t, out, len([]rune("ד טבת התשעט"))+1)

	_, err = run(t, "hebrew", "1")
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "julian")
	require.NoError(t, err)
	assert.Contains(t, out, `"calsymbol": "CAL_JULIAN"`)

	out, err = run(t, "info")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, `"calname"`))
}

func TestObservancesList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "calendar.db")

	out, err := run(t, "observances", "list", "2024", "--db", db)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)
	assert.True(t, strings.HasPrefix(lines[0], "2024-01-07"), lines[0])
	assert.Contains(t, lines[0], "Orthodox Christmas")
	assert.Contains(t, lines[0], "julian 12/25/2023")

	out, err = run(t, "observances", "list", "2024", "--db", db, "--ics")
	require.NoError(t, err)
	assert.Equal(t, 15, strings.Count(out, "BEGIN:VEVENT"))
}

func TestObservancesImport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "calendar.db")
	file := filepath.Join(dir, "observances.json")

	require.NoError(t, os.WriteFile(file, []byte(`[
		{"name": "Bastille Day", "kind": "fixed", "calendar": 0, "month": 7, "day": 14},
		{"name": "Easter", "kind": "easter", "easter_mode": 3}
	]`), 0o644))

	out, err := run(t, "observances", "import", file, "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 observances\n", out)

	out, err = run(t, "observances", "list", "2024", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Bastille Day")
	// Easter now follows the Julian computus, like Orthodox Easter.
	assert.Equal(t, 2, strings.Count(out, "2024-05-05"))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[
		{"name": "Fine", "kind": "easter", "easter_offset": 1},
		{"name": "Broken", "kind": "fixed", "month": 20, "day": 1}
	]`), 0o644))

	_, err = run(t, "observances", "import", bad, "--db", db)
	require.Error(t, err)

	// The whole file is rolled back.
	out, err = run(t, "observances", "list", "2024", "--db", db)
	require.NoError(t, err)
	assert.NotContains(t, out, "Fine")
}
