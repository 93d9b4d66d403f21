package ledger

import (
	"errors"
	"testing"
)

func TestCreateCustomer(t *testing.T) {
	s := newTestService(t)
	c, err := s.CreateCustomer(CustomerInput{
		Name:       "홍길동",
		Phone:      "010-1234-5678",
		TotalHours: 30,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if c.ID == "" || c.CreatedAt == "" {
		t.Fatalf("id and created_at must be assigned: %+v", c)
	}
	if c.GameName != "리니지" {
		t.Fatalf("empty game name must default, got %q", c.GameName)
	}
	if got := s.Customers(); len(got) != 1 || got[0].Name != "홍길동" {
		t.Fatalf("customer not appended: %+v", got)
	}
}

func TestCreateCustomerRejectsEmptyName(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateCustomer(CustomerInput{Name: "   "})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if len(s.Customers()) != 0 {
		t.Fatalf("rejected create must not mutate the ledger")
	}
}

func TestUpdateCustomer(t *testing.T) {
	s := newTestService(t)
	c, err := s.CreateCustomer(CustomerInput{Name: "김철수", TotalHours: 10})
	if err != nil {
		t.Fatal(err)
	}

	err = s.UpdateCustomer(c.ID, CustomerInput{
		Name:       "김철수",
		TotalHours: 20,
		UsedHours:  3,
		Memo:       "연장 구매",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, ok := s.CustomerByID(c.ID)
	if !ok {
		t.Fatalf("customer disappeared")
	}
	if got.TotalHours != 20 || got.UsedHours != 3 || got.Memo != "연장 구매" {
		t.Fatalf("fields not merged: %+v", got)
	}
	if got.CreatedAt != c.CreatedAt {
		t.Fatalf("created_at must be immutable")
	}
}

func TestUpdateCustomerUnknownID(t *testing.T) {
	s := newTestService(t)
	err := s.UpdateCustomer("nope", CustomerInput{Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCustomerKeepsRecords(t *testing.T) {
	s := newTestService(t)
	c, _ := s.CreateCustomer(CustomerInput{Name: "홍길동", TotalHours: 30})
	d := s.Drivers()[0]

	if _, err := s.SubmitDeduction(c.ID, d.ID, 2); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if err := s.DeleteCustomer(c.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	records := s.Records()
	if len(records) != 1 {
		t.Fatalf("record must survive customer deletion, got %d", len(records))
	}
	if records[0].CustomerID != c.ID || records[0].CustomerName != "홍길동" {
		t.Fatalf("denormalized snapshot lost: %+v", records[0])
	}
}

func TestRenamingCustomerKeepsRecordSnapshot(t *testing.T) {
	s := newTestService(t)
	c, _ := s.CreateCustomer(CustomerInput{Name: "옛이름", TotalHours: 30})
	d := s.Drivers()[0]
	if _, err := s.SubmitDeduction(c.ID, d.ID, 1); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateCustomer(c.ID, CustomerInput{Name: "새이름", TotalHours: 30, UsedHours: 1}); err != nil {
		t.Fatal(err)
	}
	if got := s.Records()[0].CustomerName; got != "옛이름" {
		t.Fatalf("record snapshot must not follow the rename, got %q", got)
	}
}
