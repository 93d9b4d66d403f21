package ledger

import (
	"fmt"
	"strings"

	"alimtalk/internal/types"
)

// Drivers returns a copy of the driver roster.
func (s *Service) Drivers() []types.Driver {
	out := make([]types.Driver, len(s.drivers))
	copy(out, s.drivers)
	return out
}

// DriverByID looks up a driver.
func (s *Service) DriverByID(id string) (types.Driver, bool) {
	for _, d := range s.drivers {
		if d.ID == id {
			return d, true
		}
	}
	return types.Driver{}, false
}

// CreateDriver appends a driver and persists. The name is required;
// the rate is stored as given (the form layer applies the permissive
// parse and the 5000 default for empty input).
func (s *Service) CreateDriver(name string, hourlyRate float64) (types.Driver, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Driver{}, ErrDriverNameRequired
	}
	d := types.Driver{
		ID:         s.newID(),
		Name:       name,
		HourlyRate: hourlyRate,
	}
	s.drivers = append(s.drivers, d)
	if err := s.store.SaveDrivers(s.drivers); err != nil {
		return types.Driver{}, fmt.Errorf("save drivers: %w", err)
	}
	s.logger.Info("driver created", zapID(d.ID))
	return d, nil
}

// UpdateDriver replaces the name and rate of the matching driver and
// persists. Existing deduction records keep the name snapshot taken
// when they were written.
func (s *Service) UpdateDriver(id, name string, hourlyRate float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDriverNameRequired
	}
	for i := range s.drivers {
		if s.drivers[i].ID != id {
			continue
		}
		s.drivers[i].Name = name
		s.drivers[i].HourlyRate = hourlyRate
		if err := s.store.SaveDrivers(s.drivers); err != nil {
			return fmt.Errorf("save drivers: %w", err)
		}
		return nil
	}
	return ErrNotFound
}

// DeleteDriver removes the matching driver and persists. Records
// referencing the driver keep their snapshot.
func (s *Service) DeleteDriver(id string) error {
	kept := s.drivers[:0]
	found := false
	for _, d := range s.drivers {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return ErrNotFound
	}
	s.drivers = kept
	if err := s.store.SaveDrivers(s.drivers); err != nil {
		return fmt.Errorf("save drivers: %w", err)
	}
	s.logger.Info("driver deleted", zapID(id))
	return nil
}
