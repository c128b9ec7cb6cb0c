package service

import (
	"testing"

	"github.com/dreyes/roomledger/models"
)

func TestCreateCustomerTrimsFields(t *testing.T) {
	svc, _ := newTestService(t)

	customer, err := svc.CreateCustomer("  Ana Torres ", " ana@example.com\n")
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if customer.Name != "Ana Torres" || customer.Email != "ana@example.com" {
		t.Errorf("expected trimmed fields, got name=%q email=%q", customer.Name, customer.Email)
	}
	if customer.CustomerID == "" {
		t.Error("expected a generated customer id")
	}
}

func TestCreateCustomerAcceptsAnyEmail(t *testing.T) {
	svc, _ := newTestService(t)

	// Email is free-form; no format validation is performed.
	customer, err := svc.CreateCustomer("Ana Torres", "not-an-email")
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if customer.Email != "not-an-email" {
		t.Errorf("expected email stored verbatim, got %q", customer.Email)
	}
}

func TestDeleteCustomerBlockedByActiveReservation(t *testing.T) {
	svc, _ := newTestService(t)

	hotel := seedHotel(t, svc, "Azure Inn", "Monterrey", 5)
	customer := seedCustomer(t, svc, "Ana Torres", "ana@example.com")
	seedReservation(t, svc, hotel.HotelID, customer.CustomerID, 1)

	before := snapshotFiles(t, svc)

	if err := svc.DeleteCustomer(customer.CustomerID); err != models.ErrCustomerHasActiveReservations {
		t.Fatalf("expected ErrCustomerHasActiveReservations, got %v", err)
	}
	assertFilesUnchanged(t, svc, before)

	if _, err := svc.GetCustomer(customer.CustomerID); err != nil {
		t.Errorf("customer should still exist, got %v", err)
	}
}

func TestDeleteCustomerWithOnlyCancelledReservations(t *testing.T) {
	svc, _ := newTestService(t)

	hotel := seedHotel(t, svc, "Azure Inn", "Monterrey", 5)
	customer := seedCustomer(t, svc, "Ana Torres", "ana@example.com")
	res := seedReservation(t, svc, hotel.HotelID, customer.CustomerID, 1)

	if err := svc.CancelReservation(res.ReservationID); err != nil {
		t.Fatalf("CancelReservation failed: %v", err)
	}

	if err := svc.DeleteCustomer(customer.CustomerID); err != nil {
		t.Fatalf("DeleteCustomer failed: %v", err)
	}
	if _, err := svc.GetCustomer(customer.CustomerID); err != models.ErrCustomerNotFound {
		t.Errorf("expected ErrCustomerNotFound after delete, got %v", err)
	}
}

func TestDeleteCustomerNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	seedCustomer(t, svc, "Ana Torres", "ana@example.com")

	before := snapshotFiles(t, svc)

	if err := svc.DeleteCustomer("missing"); err != models.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	assertFilesUnchanged(t, svc, before)
}

func TestModifyCustomerPartialUpdate(t *testing.T) {
	svc, _ := newTestService(t)
	customer := seedCustomer(t, svc, "Ana Torres", "ana@example.com")

	email := "  ana.torres@example.com "
	if err := svc.ModifyCustomer(customer.CustomerID, models.CustomerUpdate{Email: &email}); err != nil {
		t.Fatalf("ModifyCustomer failed: %v", err)
	}

	updated, err := svc.GetCustomer(customer.CustomerID)
	if err != nil {
		t.Fatalf("GetCustomer failed: %v", err)
	}
	if updated.Email != "ana.torres@example.com" {
		t.Errorf("expected trimmed email update, got %q", updated.Email)
	}
	if updated.Name != "Ana Torres" {
		t.Errorf("omitted name changed: %q", updated.Name)
	}
}

func TestModifyCustomerNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	seedCustomer(t, svc, "Ana Torres", "ana@example.com")

	before := snapshotFiles(t, svc)

	name := "Someone Else"
	if err := svc.ModifyCustomer("missing", models.CustomerUpdate{Name: &name}); err != models.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	assertFilesUnchanged(t, svc, before)
}

func TestCustomerInfo(t *testing.T) {
	svc, _ := newTestService(t)
	customer := seedCustomer(t, svc, "Ana Torres", "ana@example.com")

	info, err := svc.CustomerInfo(customer.CustomerID)
	if err != nil {
		t.Fatalf("CustomerInfo failed: %v", err)
	}
	want := `Customer "Ana Torres" <ana@example.com>`
	if info != want {
		t.Errorf("unexpected summary:\ngot:  %s\nwant: %s", info, want)
	}
}

func TestCustomerInfoNotFound(t *testing.T) {
	svc, logs := newTestService(t)

	if _, err := svc.CustomerInfo("missing"); err != models.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if logs.FilterMessage("customer not found").Len() != 1 {
		t.Error("expected a not-found diagnostic")
	}
}
