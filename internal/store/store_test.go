package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"alimtalk/internal/config"
	"alimtalk/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(config.NewPaths(t.TempDir()), nil)
}

func TestLoadCustomersMissingFile(t *testing.T) {
	s := newTestStore(t)
	customers, res := s.LoadCustomers()
	if res != DefaultedMissing {
		t.Fatalf("expected DefaultedMissing, got %v", res)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty list, got %d customers", len(customers))
	}
}

func TestLoadCustomersCorruptFile(t *testing.T) {
	dir := t.TempDir()
	paths := config.NewPaths(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.Customers, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(paths, nil)
	customers, res := s.LoadCustomers()
	if res != DefaultedCorrupt {
		t.Fatalf("expected DefaultedCorrupt, got %v", res)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty list after corrupt load, got %d", len(customers))
	}
}

func TestLoadDriversSeedsDefaults(t *testing.T) {
	s := newTestStore(t)
	drivers, res := s.LoadDrivers()
	if res != DefaultedMissing {
		t.Fatalf("expected DefaultedMissing, got %v", res)
	}
	if diff := cmp.Diff(config.SeedDrivers(), drivers); diff != "" {
		t.Fatalf("seed drivers mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettingsDefault(t *testing.T) {
	s := newTestStore(t)
	settings, res := s.LoadSettings()
	if res != DefaultedMissing {
		t.Fatalf("expected DefaultedMissing, got %v", res)
	}
	if settings.BusinessName != config.DefaultBusinessName {
		t.Fatalf("unexpected business name %q", settings.BusinessName)
	}
	if settings.MessageTemplate != config.DefaultMessageTemplate {
		t.Fatalf("unexpected template")
	}
}

func TestRoundTripAllDocuments(t *testing.T) {
	s := newTestStore(t)

	customers := []types.Customer{{
		ID: "c1", Name: "홍길동", Phone: "010-1234-5678", GameName: "리니지",
		TotalHours: 30, UsedHours: 12.5, Memo: "야간 선호",
		CreatedAt: "2026-08-30T10:00:00",
	}}
	records := []types.DeductionRecord{{
		ID: "r1", CustomerID: "c1", CustomerName: "홍길동", DriverName: "기사A",
		PlayHours: 2.5, HourlyRate: 5000, TotalPay: 12500,
		Date: "2026-08-30", MessageSent: true, CreatedAt: "2026-08-30T10:00:00",
	}}
	drivers := []types.Driver{{ID: "d9", Name: "기사C", HourlyRate: 7000}}
	settings := types.Settings{BusinessName: "학교", MessageTemplate: "{고객명}님"}

	if err := s.SaveCustomers(customers); err != nil {
		t.Fatalf("save customers: %v", err)
	}
	if err := s.SaveRecords(records); err != nil {
		t.Fatalf("save records: %v", err)
	}
	if err := s.SaveDrivers(drivers); err != nil {
		t.Fatalf("save drivers: %v", err)
	}
	if err := s.SaveSettings(settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	gotCustomers, res := s.LoadCustomers()
	if res != LoadedFromFile {
		t.Fatalf("customers not loaded from file: %v", res)
	}
	if diff := cmp.Diff(customers, gotCustomers); diff != "" {
		t.Fatalf("customers round trip (-want +got):\n%s", diff)
	}

	gotRecords, _ := s.LoadRecords()
	if diff := cmp.Diff(records, gotRecords); diff != "" {
		t.Fatalf("records round trip (-want +got):\n%s", diff)
	}

	gotDrivers, _ := s.LoadDrivers()
	if diff := cmp.Diff(drivers, gotDrivers); diff != "" {
		t.Fatalf("drivers round trip (-want +got):\n%s", diff)
	}

	gotSettings, _ := s.LoadSettings()
	if diff := cmp.Diff(settings, gotSettings); diff != "" {
		t.Fatalf("settings round trip (-want +got):\n%s", diff)
	}
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", config.DirName)
	s := New(config.NewPaths(dir), nil)
	if err := s.SaveSettings(config.DefaultSettings()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "settings.json")); err != nil {
		t.Fatalf("settings file not created: %v", err)
	}
}

func TestSaveErrorIsSurfaced(t *testing.T) {
	// Pointing the document path at a directory makes the write fail;
	// the error must be returned, not swallowed.
	dir := t.TempDir()
	paths := config.NewPaths(dir)
	if err := os.MkdirAll(paths.Settings, 0o755); err != nil {
		t.Fatal(err)
	}
	s := New(paths, nil)
	if err := s.SaveSettings(config.DefaultSettings()); err == nil {
		t.Fatalf("expected write error for directory path")
	}
}
