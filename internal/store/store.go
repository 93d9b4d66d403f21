// Package store persists the four data documents as whole-file JSON
// under the data directory. Each document is loaded fully at startup
// and rewritten fully on every save; there is no locking across
// processes and no partial-write recovery. A missing file is the
// expected first-run state and falls back to the default silently; a
// file that exists but cannot be read or parsed also falls back, but
// is logged so the data-loss risk is visible.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"alimtalk/internal/config"
	"alimtalk/internal/types"
)

// LoadResult reports which path a load took.
type LoadResult int

const (
	// LoadedFromFile means the document was read from disk.
	LoadedFromFile LoadResult = iota
	// DefaultedMissing means the file does not exist yet.
	DefaultedMissing
	// DefaultedCorrupt means the file exists but could not be read or
	// parsed; the default was substituted and the on-disk content will
	// be overwritten by the next save.
	DefaultedCorrupt
)

// Store owns the data files.
type Store struct {
	mu     sync.Mutex
	paths  config.Paths
	logger *zap.Logger
}

// New creates a store over the given paths.
func New(paths config.Paths, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{paths: paths, logger: logger}
}

// LoadCustomers reads the customers document, defaulting to an empty
// list.
func (s *Store) LoadCustomers() ([]types.Customer, LoadResult) {
	customers := []types.Customer{}
	res := s.load(s.paths.Customers, &customers)
	if res != LoadedFromFile {
		customers = []types.Customer{}
	}
	return customers, res
}

// SaveCustomers rewrites the customers document.
func (s *Store) SaveCustomers(customers []types.Customer) error {
	return s.save(s.paths.Customers, customers)
}

// LoadRecords reads the deduction record document, defaulting to an
// empty list.
func (s *Store) LoadRecords() ([]types.DeductionRecord, LoadResult) {
	records := []types.DeductionRecord{}
	res := s.load(s.paths.Records, &records)
	if res != LoadedFromFile {
		records = []types.DeductionRecord{}
	}
	return records, res
}

// SaveRecords rewrites the deduction record document.
func (s *Store) SaveRecords(records []types.DeductionRecord) error {
	return s.save(s.paths.Records, records)
}

// LoadDrivers reads the driver document, seeding the two default
// drivers when the file is absent or unreadable.
func (s *Store) LoadDrivers() ([]types.Driver, LoadResult) {
	var drivers []types.Driver
	res := s.load(s.paths.Drivers, &drivers)
	if res != LoadedFromFile {
		drivers = config.SeedDrivers()
	}
	return drivers, res
}

// SaveDrivers rewrites the driver document.
func (s *Store) SaveDrivers(drivers []types.Driver) error {
	return s.save(s.paths.Drivers, drivers)
}

// LoadSettings reads the settings document, defaulting to the stock
// business name and template.
func (s *Store) LoadSettings() (types.Settings, LoadResult) {
	var settings types.Settings
	res := s.load(s.paths.Settings, &settings)
	if res != LoadedFromFile {
		settings = config.DefaultSettings()
	}
	return settings, res
}

// SaveSettings rewrites the settings document.
func (s *Store) SaveSettings(settings types.Settings) error {
	return s.save(s.paths.Settings, settings)
}

func (s *Store) load(path string, v any) LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultedMissing
		}
		s.logger.Warn("data file unreadable, using default",
			zap.String("path", path), zap.Error(err))
		return DefaultedCorrupt
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("data file corrupt, using default",
			zap.String("path", path), zap.Error(err))
		return DefaultedCorrupt
	}
	return LoadedFromFile
}

func (s *Store) save(path string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	s.logger.Debug("saved data file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
