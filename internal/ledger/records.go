package ledger

import (
	"fmt"
	"math"
	"sort"

	"alimtalk/internal/message"
	"alimtalk/internal/types"
)

// SubmitResult is returned from a successful deduction submission.
type SubmitResult struct {
	Record  types.DeductionRecord
	Message string
}

// Records returns a copy of the record ledger in insertion order.
func (s *Service) Records() []types.DeductionRecord {
	out := make([]types.DeductionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// RecordsNewestFirst returns the records sorted by creation timestamp,
// newest first, for the history view.
func (s *Service) RecordsNewestFirst() []types.DeductionRecord {
	out := s.Records()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// RecentRecords returns the n newest records for the dashboard.
func (s *Service) RecentRecords(n int) []types.DeductionRecord {
	out := s.RecordsNewestFirst()
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// SubmitDeduction logs a played duration against a customer: it
// appends a record with a payout snapshot, adds the hours to the
// customer's used balance, persists both documents, renders the
// notification and marks the record sent (the caller copies the
// returned message to the clipboard).
//
// The record and customer writes are not transactional; a failure
// between them can leave the two documents inconsistent. Acceptable
// for a single-user tool, but the order (records first) is fixed so
// the failure mode is a record without the matching balance change.
//
// A deduction may push the customer's remaining balance negative;
// that is allowed and only affects how the balance is displayed.
func (s *Service) SubmitDeduction(customerID, driverID string, playHours float64) (SubmitResult, error) {
	customer, ok := s.CustomerByID(customerID)
	if !ok {
		return SubmitResult{}, ErrNoCustomer
	}
	driver, ok := s.DriverByID(driverID)
	if !ok {
		return SubmitResult{}, ErrNoDriver
	}
	if playHours <= 0 {
		return SubmitResult{}, ErrNoPlayTime
	}

	now := s.now()
	record := types.DeductionRecord{
		ID:           s.newID(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		DriverName:   driver.Name,
		PlayHours:    playHours,
		HourlyRate:   driver.HourlyRate,
		TotalPay:     int(math.Round(playHours * driver.HourlyRate)),
		Date:         now.Format(dateLayout),
		MessageSent:  false,
		CreatedAt:    now.Format(timestampLayout),
	}

	// Render against the pre-mutation balance: cumulative includes the
	// new hours exactly once.
	msg := s.renderFor(customer, playHours)

	s.records = append(s.records, record)
	for i := range s.customers {
		if s.customers[i].ID == customer.ID {
			s.customers[i].UsedHours += playHours
			break
		}
	}

	if err := s.store.SaveRecords(s.records); err != nil {
		return SubmitResult{}, fmt.Errorf("save records: %w", err)
	}
	if err := s.store.SaveCustomers(s.customers); err != nil {
		return SubmitResult{}, fmt.Errorf("save customers: %w", err)
	}

	// The submission flow always hands the message off, so the record
	// is marked sent immediately.
	s.records[len(s.records)-1].MessageSent = true
	record.MessageSent = true
	if err := s.store.SaveRecords(s.records); err != nil {
		return SubmitResult{}, fmt.Errorf("save records: %w", err)
	}

	s.logger.Info("deduction submitted", zapID(record.ID))
	return SubmitResult{Record: record, Message: msg}, nil
}

// MarkSent flips the sent flag of a record and persists. Used when a
// message is copied from the history view.
func (s *Service) MarkSent(recordID string) error {
	for i := range s.records {
		if s.records[i].ID != recordID {
			continue
		}
		s.records[i].MessageSent = true
		if err := s.store.SaveRecords(s.records); err != nil {
			return fmt.Errorf("save records: %w", err)
		}
		return nil
	}
	return ErrNotFound
}

// RecordByID looks up a record.
func (s *Service) RecordByID(id string) (types.DeductionRecord, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return types.DeductionRecord{}, false
}

// RenderRecordMessage re-renders the notification for an existing
// record against the customer's current balance. It needs the customer
// to still exist; records whose customer was deleted keep displaying
// their snapshot fields but can no longer produce a message.
func (s *Service) RenderRecordMessage(recordID string) (string, error) {
	record, ok := s.RecordByID(recordID)
	if !ok {
		return "", ErrNotFound
	}
	customer, ok := s.CustomerByID(record.CustomerID)
	if !ok {
		return "", ErrCustomerGone
	}
	return s.renderFor(customer, record.PlayHours), nil
}

// PreviewMessage renders the notification a submission would produce,
// without mutating anything. Used by the live preview pane.
func (s *Service) PreviewMessage(customerID string, playHours float64) (string, error) {
	customer, ok := s.CustomerByID(customerID)
	if !ok {
		return "", ErrNoCustomer
	}
	return s.renderFor(customer, playHours), nil
}

func (s *Service) renderFor(customer types.Customer, playHours float64) string {
	cumulative := customer.UsedHours + playHours
	remaining := customer.Remaining() - playHours
	return message.Render(
		s.settings.MessageTemplate,
		s.settings.BusinessName,
		customer.Name,
		playHours,
		cumulative,
		remaining,
	)
}

// Stats are the dashboard aggregates.
type Stats struct {
	TotalCustomers  int
	TodayDeductions int
	PendingMessages int
	TotalRemaining  float64
}

// ComputeStats derives the dashboard numbers. A customer's negative
// balance counts as zero toward the remaining-hours total.
func (s *Service) ComputeStats() Stats {
	st := Stats{TotalCustomers: len(s.customers)}
	today := s.now().Format(dateLayout)
	for _, r := range s.records {
		if r.Date == today {
			st.TodayDeductions++
		}
		if !r.MessageSent {
			st.PendingMessages++
		}
	}
	for _, c := range s.customers {
		if remaining := c.Remaining(); remaining > 0 {
			st.TotalRemaining += remaining
		}
	}
	return st
}
