package ledger

import (
	"fmt"
	"os"
	"testing"
	"time"

	"alimtalk/internal/config"
	"alimtalk/internal/store"
)

// newTestService builds a service over a temp-dir store with a fixed
// clock and sequential ids.
func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(config.NewPaths(t.TempDir()), nil)
	s := NewService(st, nil)
	s.now = func() time.Time {
		return time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)
	}
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%04d", seq)
	}
	return s
}

func TestNewServiceSeedsDrivers(t *testing.T) {
	s := newTestService(t)
	drivers := s.Drivers()
	if len(drivers) != 2 {
		t.Fatalf("expected 2 seed drivers, got %d", len(drivers))
	}
	if drivers[0].Name != "기사A" || drivers[0].HourlyRate != 5000 {
		t.Fatalf("unexpected first seed driver: %+v", drivers[0])
	}
	if drivers[1].Name != "기사B" || drivers[1].HourlyRate != 6000 {
		t.Fatalf("unexpected second seed driver: %+v", drivers[1])
	}
}

func TestNewServiceStartsWithCorruptFiles(t *testing.T) {
	// A corrupt document must not halt startup; the service comes up
	// with defaults.
	dir := t.TempDir()
	paths := config.NewPaths(dir)
	st := store.New(paths, nil)
	if err := st.SaveSettings(config.DefaultSettings()); err != nil {
		t.Fatal(err)
	}
	writeGarbage(t, paths.Customers)
	writeGarbage(t, paths.Records)

	s := NewService(store.New(paths, nil), nil)
	if len(s.Customers()) != 0 {
		t.Fatalf("expected empty customers after corrupt load")
	}
	if len(s.Records()) != 0 {
		t.Fatalf("expected empty records after corrupt load")
	}
}

func writeGarbage(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("## not json ##"), 0o644); err != nil {
		t.Fatal(err)
	}
}
