// Package ledger owns the in-memory application state: the customer
// list, the driver roster, the deduction record ledger and the
// settings record. Every mutating operation rewrites the backing JSON
// document through the store before returning, so the in-memory state
// and disk only diverge when a write fails, and that failure is
// returned to the caller.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alimtalk/internal/store"
	"alimtalk/internal/types"
)

// Service is the single coordinating object over the four data sets.
// It is not safe for concurrent use; the UI drives it from a single
// event loop.
type Service struct {
	store  *store.Store
	logger *zap.Logger

	customers []types.Customer
	drivers   []types.Driver
	records   []types.DeductionRecord
	settings  types.Settings

	// Seams for tests.
	now   func() time.Time
	newID func() string
}

// NewService loads all four documents and returns the ready service.
// Load failures never abort startup: missing files are the normal
// first-run state and corrupt files fall back to defaults (the store
// logs those).
func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:  st,
		logger: logger,
		now:    time.Now,
		newID:  shortID,
	}

	var res store.LoadResult
	s.customers, res = st.LoadCustomers()
	logger.Debug("customers loaded", zap.Int("count", len(s.customers)), zap.Int("result", int(res)))
	s.records, res = st.LoadRecords()
	logger.Debug("records loaded", zap.Int("count", len(s.records)), zap.Int("result", int(res)))
	s.drivers, res = st.LoadDrivers()
	logger.Debug("drivers loaded", zap.Int("count", len(s.drivers)), zap.Int("result", int(res)))
	s.settings, res = st.LoadSettings()
	logger.Debug("settings loaded", zap.Int("result", int(res)))

	return s
}

// SaveAll rewrites every document. Used on shutdown; each mutation has
// already persisted its own document, so this is a belt-and-braces
// flush inherited from the original tool.
func (s *Service) SaveAll() error {
	if err := s.store.SaveCustomers(s.customers); err != nil {
		return err
	}
	if err := s.store.SaveRecords(s.records); err != nil {
		return err
	}
	if err := s.store.SaveDrivers(s.drivers); err != nil {
		return err
	}
	return s.store.SaveSettings(s.settings)
}

// shortID returns an 8-character opaque identifier.
func shortID() string {
	return uuid.NewString()[:8]
}

func zapID(id string) zap.Field {
	return zap.String("id", id)
}

const (
	timestampLayout = "2006-01-02T15:04:05"
	dateLayout      = "2006-01-02"
)
