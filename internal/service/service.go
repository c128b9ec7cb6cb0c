// Package service implements the lifecycle operations for hotels,
// customers, and reservations on top of the record store.
//
// Every mutating operation follows the same cycle: load fresh copies of all
// three collections, validate its preconditions, compute the new state, and
// rewrite all three collections. Nothing is cached between calls, so each
// operation observes whatever is on disk at that moment. There is no
// locking; the package is built for single-actor use and concurrent callers
// can overwrite each other's saves.
package service

import (
	"go.uber.org/zap"

	"github.com/dreyes/roomledger/internal/store"
	"github.com/dreyes/roomledger/models"
)

// Service provides all hotel, customer, and reservation operations.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a new Service.
//
// Parameters:
//   - store: Backing record store for the three collections
//   - logger: Zap logger for structured logging
func NewService(store *store.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// state is an in-memory snapshot of the three collections, reloaded fresh
// for every operation.
type state struct {
	hotels       []models.Hotel
	customers    []models.Customer
	reservations []models.Reservation
}

func (s *Service) loadState() *state {
	return &state{
		hotels:       s.store.LoadHotels(),
		customers:    s.store.LoadCustomers(),
		reservations: s.store.LoadReservations(),
	}
}

// saveState rewrites all three collection files. There is no transaction
// across them; a failure mid-way can leave the files mutually inconsistent.
func (s *Service) saveState(st *state) error {
	if err := s.store.SaveHotels(st.hotels); err != nil {
		return err
	}
	if err := s.store.SaveCustomers(st.customers); err != nil {
		return err
	}
	return s.store.SaveReservations(st.reservations)
}

func findHotel(hotels []models.Hotel, hotelID string) *models.Hotel {
	for i := range hotels {
		if hotels[i].HotelID == hotelID {
			return &hotels[i]
		}
	}
	return nil
}

func findCustomer(customers []models.Customer, customerID string) *models.Customer {
	for i := range customers {
		if customers[i].CustomerID == customerID {
			return &customers[i]
		}
	}
	return nil
}
