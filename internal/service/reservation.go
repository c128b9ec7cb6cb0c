package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dreyes/roomledger/models"
)

// availableRooms computes the hotel's remaining capacity from scratch:
// total rooms minus the rooms held by active reservations for that hotel.
// Cancelled reservations never count.
func availableRooms(hotel *models.Hotel, reservations []models.Reservation) int {
	used := 0
	for i := range reservations {
		r := &reservations[i]
		if r.HotelID == hotel.HotelID && r.Active() {
			used += r.Rooms
		}
	}
	return hotel.TotalRooms - used
}

// AvailableRooms returns the hotel's remaining capacity, recomputed from
// the stored reservations on every call.
func (s *Service) AvailableRooms(hotelID string) (int, error) {
	st := s.loadState()

	hotel := findHotel(st.hotels, hotelID)
	if hotel == nil {
		s.logger.Warn("hotel not found", zap.String("hotel_id", hotelID))
		return 0, models.ErrHotelNotFound
	}

	return availableRooms(hotel, st.reservations), nil
}

// CreateReservation books rooms at a hotel for a customer.
//
// The room count must be positive, both references must exist, and the
// request must fit within the hotel's remaining capacity.
//
// Returns:
//   - *models.Reservation with status active on success
//   - models.ErrInvalidRoomCount (before any state is read) if rooms <= 0
//   - models.ErrHotelNotFound or models.ErrCustomerNotFound for unknown references
//   - models.ErrInsufficientRooms if the request exceeds the remaining capacity
func (s *Service) CreateReservation(hotelID, customerID string, rooms int) (*models.Reservation, error) {
	if rooms <= 0 {
		s.logger.Warn("rejected reservation",
			zap.Int("rooms", rooms),
			zap.Error(models.ErrInvalidRoomCount))
		return nil, models.ErrInvalidRoomCount
	}

	st := s.loadState()

	hotel := findHotel(st.hotels, hotelID)
	if hotel == nil {
		s.logger.Warn("hotel not found", zap.String("hotel_id", hotelID))
		return nil, models.ErrHotelNotFound
	}
	if findCustomer(st.customers, customerID) == nil {
		s.logger.Warn("customer not found", zap.String("customer_id", customerID))
		return nil, models.ErrCustomerNotFound
	}

	available := availableRooms(hotel, st.reservations)
	if rooms > available {
		s.logger.Warn("not enough rooms",
			zap.String("hotel_id", hotelID),
			zap.Int("requested", rooms),
			zap.Int("available", available))
		return nil, models.ErrInsufficientRooms
	}

	res := models.Reservation{
		ReservationID: uuid.New().String(),
		HotelID:       hotelID,
		CustomerID:    customerID,
		Rooms:         rooms,
		Status:        models.StatusActive,
	}
	st.reservations = append(st.reservations, res)

	if err := s.saveState(st); err != nil {
		return nil, err
	}

	s.logger.Info("created reservation",
		zap.String("reservation_id", res.ReservationID),
		zap.String("hotel_id", hotelID),
		zap.String("customer_id", customerID),
		zap.Int("rooms", rooms))
	return &res, nil
}

// CancelReservation transitions a reservation to cancelled, releasing its
// rooms. Cancelled is terminal: cancelling again reports
// models.ErrReservationAlreadyCancelled, although the collections are still
// rewritten with unchanged content. An unknown identifier writes nothing.
func (s *Service) CancelReservation(reservationID string) error {
	st := s.loadState()

	idx := -1
	for i := range st.reservations {
		if st.reservations[i].ReservationID == reservationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn("reservation not found",
			zap.String("reservation_id", reservationID))
		return models.ErrReservationNotFound
	}

	if st.reservations[idx].Status == models.StatusCancelled {
		s.logger.Warn("reservation already cancelled",
			zap.String("reservation_id", reservationID))
		if err := s.saveState(st); err != nil {
			return err
		}
		return models.ErrReservationAlreadyCancelled
	}

	cancelled := st.reservations[idx]
	cancelled.Status = models.StatusCancelled
	st.reservations[idx] = cancelled

	if err := s.saveState(st); err != nil {
		return err
	}

	s.logger.Info("cancelled reservation",
		zap.String("reservation_id", reservationID),
		zap.String("hotel_id", cancelled.HotelID),
		zap.Int("rooms", cancelled.Rooms))
	return nil
}
