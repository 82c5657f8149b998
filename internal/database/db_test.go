package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

// testDB creates a migrated in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func intPtr(n int) *int {
	return &n
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)

	applied, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if applied != 0 {
		t.Errorf("second migrate applied %d migrations, want 0", applied)
	}
}

func TestHealth(t *testing.T) {
	db := testDB(t)

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestSeededObservances(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	observances, err := db.ListObservances(ctx)
	if err != nil {
		t.Fatalf("ListObservances() error = %v", err)
	}
	if len(observances) != 15 {
		t.Fatalf("got %d seeded observances, want 15", len(observances))
	}

	for i := 1; i < len(observances); i++ {
		if observances[i-1].Name > observances[i].Name {
			t.Errorf("observances not sorted: %q before %q", observances[i-1].Name, observances[i].Name)
		}
	}

	orthodox, err := db.GetObservanceByName(ctx, "Orthodox Easter")
	if err != nil {
		t.Fatalf("GetObservanceByName() error = %v", err)
	}
	if orthodox.Kind != KindEaster || orthodox.EasterMode == nil || *orthodox.EasterMode != 3 {
		t.Errorf("Orthodox Easter = %+v, want easter kind with mode 3", orthodox)
	}

	easter, err := db.GetObservanceByName(ctx, "Easter")
	if err != nil {
		t.Fatalf("GetObservanceByName() error = %v", err)
	}
	if easter.EasterMode != nil {
		t.Errorf("Easter mode = %d, want nil", *easter.EasterMode)
	}

	passover, err := db.GetObservanceByName(ctx, "Passover")
	if err != nil {
		t.Fatalf("GetObservanceByName() error = %v", err)
	}
	if passover.Calendar != 2 || passover.Month != 8 || passover.Day != 15 {
		t.Errorf("Passover = %d/%d in calendar %d, want 8/15 in 2", passover.Month, passover.Day, passover.Calendar)
	}
	if passover.CreatedAt.IsZero() {
		t.Error("Passover created_at was not parsed")
	}
}

func TestGetObservanceNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetObservanceByName(context.Background(), "Festivus")
	if !IsNotFound(err) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestCreateObservance(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	o := &Observance{
		Name:     "Bastille Day",
		Kind:     KindFixed,
		Calendar: 0,
		Month:    7,
		Day:      14,
	}
	if err := db.CreateObservance(ctx, o); err != nil {
		t.Fatalf("CreateObservance() error = %v", err)
	}
	if o.ID == 0 {
		t.Error("ID was not set")
	}

	got, err := db.GetObservanceByName(ctx, "Bastille Day")
	if err != nil {
		t.Fatalf("GetObservanceByName() error = %v", err)
	}
	if got.Month != 7 || got.Day != 14 {
		t.Errorf("got %d/%d, want 7/14", got.Month, got.Day)
	}

	dup := &Observance{Name: "Bastille Day", Kind: KindFixed, Month: 7, Day: 14}
	if err := db.CreateObservance(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate create error = %v, want ErrDuplicate", err)
	}
}

func TestCreateObservanceValidation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	tests := []struct {
		name string
		o    Observance
	}{
		{"missing name", Observance{Kind: KindFixed, Month: 1, Day: 1}},
		{"unknown kind", Observance{Name: "x", Kind: "lunar"}},
		{"bad calendar", Observance{Name: "x", Kind: KindFixed, Calendar: 4, Month: 1, Day: 1}},
		{"bad month", Observance{Name: "x", Kind: KindFixed, Month: 14, Day: 1}},
		{"bad day", Observance{Name: "x", Kind: KindFixed, Month: 1, Day: 0}},
		{"bad easter mode", Observance{Name: "x", Kind: KindEaster, EasterMode: intPtr(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.o
			if err := db.CreateObservance(ctx, &o); !errors.Is(err, ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestUpsertObservanceInTx(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.UpsertObservance(ctx, &Observance{Name: "Easter", Kind: KindEaster, EasterMode: intPtr(2)}); err != nil {
			return err
		}
		return tx.UpsertObservance(ctx, &Observance{Name: "Corpus Christi", Kind: KindEaster, EasterOffset: 60})
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	easter, err := db.GetObservanceByName(ctx, "Easter")
	if err != nil {
		t.Fatalf("GetObservanceByName() error = %v", err)
	}
	if easter.EasterMode == nil || *easter.EasterMode != 2 {
		t.Errorf("Easter mode not updated: %+v", easter)
	}

	if _, err := db.GetObservanceByName(ctx, "Corpus Christi"); err != nil {
		t.Errorf("Corpus Christi not inserted: %v", err)
	}
}

func TestWithTxRollsBack(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	wantErr := errors.New("boom")
	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.UpsertObservance(ctx, &Observance{Name: "Leap Day", Kind: KindFixed, Month: 2, Day: 29}); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("WithTx() error = %v, want %v", err, wantErr)
	}

	if _, err := db.GetObservanceByName(ctx, "Leap Day"); !IsNotFound(err) {
		t.Errorf("Leap Day survived rollback: err = %v", err)
	}
}

func TestDeleteObservance(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.DeleteObservance(ctx, "Purim"); err != nil {
		t.Fatalf("DeleteObservance() error = %v", err)
	}
	if _, err := db.GetObservanceByName(ctx, "Purim"); !IsNotFound(err) {
		t.Errorf("Purim still present: err = %v", err)
	}
	if err := db.DeleteObservance(ctx, "Purim"); !IsNotFound(err) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-31 12:00:00", time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)},
		{"2024-03-31T12:00:00Z", time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)},
		{"garbage", time.Time{}},
	}

	for _, tt := range tests {
		if got := parseTimestamp(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
