package ledger

import (
	"fmt"
	"strings"

	"alimtalk/internal/config"
	"alimtalk/internal/types"
)

// CustomerInput carries the editable customer fields from a form.
type CustomerInput struct {
	Name       string
	Phone      string
	GameName   string
	TotalHours float64
	UsedHours  float64
	Memo       string
}

// Customers returns a copy of the customer list in insertion order.
func (s *Service) Customers() []types.Customer {
	out := make([]types.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// CustomerByID looks up a customer.
func (s *Service) CustomerByID(id string) (types.Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return types.Customer{}, false
}

// CreateCustomer validates, assigns an id and creation timestamp,
// appends and persists. The name is required; an empty game name
// falls back to the default.
func (s *Service) CreateCustomer(in CustomerInput) (types.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return types.Customer{}, ErrNameRequired
	}
	gameName := strings.TrimSpace(in.GameName)
	if gameName == "" {
		gameName = config.DefaultGameName
	}

	c := types.Customer{
		ID:         s.newID(),
		Name:       name,
		Phone:      strings.TrimSpace(in.Phone),
		GameName:   gameName,
		TotalHours: in.TotalHours,
		UsedHours:  in.UsedHours,
		Memo:       strings.TrimSpace(in.Memo),
		CreatedAt:  s.now().Format(timestampLayout),
	}
	s.customers = append(s.customers, c)
	if err := s.store.SaveCustomers(s.customers); err != nil {
		return types.Customer{}, fmt.Errorf("save customers: %w", err)
	}
	s.logger.Info("customer created", zapID(c.ID))
	return c, nil
}

// UpdateCustomer merges the editable fields into the matching record
// and persists. ID and creation timestamp are immutable.
func (s *Service) UpdateCustomer(id string, in CustomerInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ErrNameRequired
	}
	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		gameName := strings.TrimSpace(in.GameName)
		if gameName == "" {
			gameName = config.DefaultGameName
		}
		s.customers[i].Name = name
		s.customers[i].Phone = strings.TrimSpace(in.Phone)
		s.customers[i].GameName = gameName
		s.customers[i].TotalHours = in.TotalHours
		s.customers[i].UsedHours = in.UsedHours
		s.customers[i].Memo = strings.TrimSpace(in.Memo)
		if err := s.store.SaveCustomers(s.customers); err != nil {
			return fmt.Errorf("save customers: %w", err)
		}
		return nil
	}
	return ErrNotFound
}

// DeleteCustomer removes the matching record and persists. Existing
// deduction records keep their denormalized snapshot of this customer;
// deletion does not cascade.
func (s *Service) DeleteCustomer(id string) error {
	kept := s.customers[:0]
	found := false
	for _, c := range s.customers {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrNotFound
	}
	s.customers = kept
	if err := s.store.SaveCustomers(s.customers); err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	s.logger.Info("customer deleted", zapID(id))
	return nil
}
