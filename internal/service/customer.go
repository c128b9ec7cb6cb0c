package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dreyes/roomledger/models"
)

// CreateCustomer creates a customer, persists it, and returns it. Name and
// email are trimmed of surrounding whitespace but otherwise not validated;
// any email text is accepted.
func (s *Service) CreateCustomer(name, email string) (*models.Customer, error) {
	st := s.loadState()

	customer := models.Customer{
		CustomerID: uuid.New().String(),
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
	}
	st.customers = append(st.customers, customer)

	if err := s.saveState(st); err != nil {
		return nil, err
	}

	s.logger.Info("created customer",
		zap.String("customer_id", customer.CustomerID),
		zap.String("name", customer.Name))
	return &customer, nil
}

// DeleteCustomer removes a customer. Deletion is refused while any active
// reservation references the customer.
func (s *Service) DeleteCustomer(customerID string) error {
	st := s.loadState()

	for i := range st.reservations {
		r := &st.reservations[i]
		if r.CustomerID == customerID && r.Active() {
			s.logger.Warn("cannot delete customer with active reservations",
				zap.String("customer_id", customerID),
				zap.String("reservation_id", r.ReservationID))
			return models.ErrCustomerHasActiveReservations
		}
	}

	kept := make([]models.Customer, 0, len(st.customers))
	for i := range st.customers {
		if st.customers[i].CustomerID != customerID {
			kept = append(kept, st.customers[i])
		}
	}
	if len(kept) == len(st.customers) {
		s.logger.Warn("customer not found", zap.String("customer_id", customerID))
		return models.ErrCustomerNotFound
	}

	st.customers = kept
	if err := s.saveState(st); err != nil {
		return err
	}

	s.logger.Info("deleted customer", zap.String("customer_id", customerID))
	return nil
}

// ModifyCustomer applies a partial update to a customer. Nil fields in upd
// are left unchanged; new values are trimmed.
func (s *Service) ModifyCustomer(customerID string, upd models.CustomerUpdate) error {
	st := s.loadState()

	idx := -1
	for i := range st.customers {
		if st.customers[i].CustomerID == customerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn("customer not found", zap.String("customer_id", customerID))
		return models.ErrCustomerNotFound
	}

	updated := st.customers[idx]
	if upd.Name != nil {
		updated.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		updated.Email = strings.TrimSpace(*upd.Email)
	}

	st.customers[idx] = updated
	if err := s.saveState(st); err != nil {
		return err
	}

	s.logger.Info("updated customer",
		zap.String("customer_id", customerID),
		zap.String("name", updated.Name))
	return nil
}

// GetCustomer returns the customer with the given identifier.
func (s *Service) GetCustomer(customerID string) (*models.Customer, error) {
	customers := s.store.LoadCustomers()
	for i := range customers {
		if customers[i].CustomerID == customerID {
			customer := customers[i]
			return &customer, nil
		}
	}
	s.logger.Warn("customer not found", zap.String("customer_id", customerID))
	return nil, models.ErrCustomerNotFound
}

// CustomerInfo returns a one-line summary of the customer, e.g.
// `Customer "Ana Torres" <ana@example.com>`.
func (s *Service) CustomerInfo(customerID string) (string, error) {
	customers := s.store.LoadCustomers()
	for i := range customers {
		if customers[i].CustomerID == customerID {
			return fmt.Sprintf("Customer %q <%s>",
				customers[i].Name, customers[i].Email), nil
		}
	}
	s.logger.Warn("customer not found", zap.String("customer_id", customerID))
	return "", models.ErrCustomerNotFound
}
