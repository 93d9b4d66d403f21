package ledger

import (
	"errors"
	"testing"
)

func TestCreateDriver(t *testing.T) {
	s := newTestService(t)
	d, err := s.CreateDriver("기사C", 7000)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if d.ID == "" {
		t.Fatalf("id must be assigned")
	}
	if len(s.Drivers()) != 3 { // two seeds plus the new one
		t.Fatalf("expected 3 drivers, got %d", len(s.Drivers()))
	}
}

func TestCreateDriverRejectsEmptyName(t *testing.T) {
	s := newTestService(t)
	if _, err := s.CreateDriver("  ", 5000); !errors.Is(err, ErrDriverNameRequired) {
		t.Fatalf("expected ErrDriverNameRequired, got %v", err)
	}
}

func TestUpdateDriverDoesNotTouchRecords(t *testing.T) {
	s := newTestService(t)
	c, _ := s.CreateCustomer(CustomerInput{Name: "홍길동", TotalHours: 30})
	d := s.Drivers()[0]
	if _, err := s.SubmitDeduction(c.ID, d.ID, 1); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateDriver(d.ID, "개명기사", 9999); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := s.Records()[0]; got.DriverName != "기사A" || got.HourlyRate != 5000 {
		t.Fatalf("record snapshot must not follow driver edits: %+v", got)
	}
}

func TestDeleteDriverKeepsRecords(t *testing.T) {
	s := newTestService(t)
	c, _ := s.CreateCustomer(CustomerInput{Name: "홍길동", TotalHours: 30})
	d := s.Drivers()[0]
	if _, err := s.SubmitDeduction(c.ID, d.ID, 1); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteDriver(d.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(s.Records()) != 1 {
		t.Fatalf("record must survive driver deletion")
	}
	if err := s.DeleteDriver(d.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
