package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dreyes/roomledger/models"
)

// CreateHotel creates a hotel with the given name, city, and room
// inventory, persists it, and returns it.
//
// Parameters:
//   - name: Hotel name; surrounding whitespace is trimmed
//   - city: City name; trimmed
//   - totalRooms: Room inventory, must be greater than zero
//
// Returns:
//   - *models.Hotel with a freshly generated identifier
//   - models.ErrInvalidRoomCount, before any state is read, if totalRooms <= 0
func (s *Service) CreateHotel(name, city string, totalRooms int) (*models.Hotel, error) {
	if totalRooms <= 0 {
		s.logger.Warn("rejected hotel creation",
			zap.Int("total_rooms", totalRooms),
			zap.Error(models.ErrInvalidRoomCount))
		return nil, models.ErrInvalidRoomCount
	}

	st := s.loadState()

	hotel := models.Hotel{
		HotelID:    uuid.New().String(),
		Name:       strings.TrimSpace(name),
		City:       strings.TrimSpace(city),
		TotalRooms: totalRooms,
	}
	st.hotels = append(st.hotels, hotel)

	if err := s.saveState(st); err != nil {
		return nil, err
	}

	s.logger.Info("created hotel",
		zap.String("hotel_id", hotel.HotelID),
		zap.String("name", hotel.Name),
		zap.String("city", hotel.City),
		zap.Int("total_rooms", hotel.TotalRooms))
	return &hotel, nil
}

// DeleteHotel removes a hotel. Deletion is refused while any active
// reservation references the hotel; cancelled reservations do not block it.
func (s *Service) DeleteHotel(hotelID string) error {
	st := s.loadState()

	for i := range st.reservations {
		r := &st.reservations[i]
		if r.HotelID == hotelID && r.Active() {
			s.logger.Warn("cannot delete hotel with active reservations",
				zap.String("hotel_id", hotelID),
				zap.String("reservation_id", r.ReservationID))
			return models.ErrHotelHasActiveReservations
		}
	}

	kept := make([]models.Hotel, 0, len(st.hotels))
	for i := range st.hotels {
		if st.hotels[i].HotelID != hotelID {
			kept = append(kept, st.hotels[i])
		}
	}
	if len(kept) == len(st.hotels) {
		s.logger.Warn("hotel not found", zap.String("hotel_id", hotelID))
		return models.ErrHotelNotFound
	}

	st.hotels = kept
	if err := s.saveState(st); err != nil {
		return err
	}

	s.logger.Info("deleted hotel", zap.String("hotel_id", hotelID))
	return nil
}

// ModifyHotel applies a partial update to a hotel. Nil fields in upd are
// left unchanged; new string values are trimmed. A new room inventory must
// be positive but may shrink below the rooms currently held by active
// reservations: capacity is only enforced when reservations are created,
// so the resulting over-committed state is permitted and logged.
func (s *Service) ModifyHotel(hotelID string, upd models.HotelUpdate) error {
	st := s.loadState()

	idx := -1
	for i := range st.hotels {
		if st.hotels[i].HotelID == hotelID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn("hotel not found", zap.String("hotel_id", hotelID))
		return models.ErrHotelNotFound
	}

	if upd.TotalRooms != nil && *upd.TotalRooms <= 0 {
		s.logger.Warn("rejected hotel update",
			zap.String("hotel_id", hotelID),
			zap.Int("total_rooms", *upd.TotalRooms),
			zap.Error(models.ErrInvalidRoomCount))
		return models.ErrInvalidRoomCount
	}

	updated := st.hotels[idx]
	if upd.Name != nil {
		updated.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.City != nil {
		updated.City = strings.TrimSpace(*upd.City)
	}
	if upd.TotalRooms != nil {
		updated.TotalRooms = *upd.TotalRooms
	}

	if available := availableRooms(&updated, st.reservations); available < 0 {
		s.logger.Warn("hotel inventory shrunk below active usage",
			zap.String("hotel_id", hotelID),
			zap.Int("total_rooms", updated.TotalRooms),
			zap.Int("available", available))
	}

	st.hotels[idx] = updated
	if err := s.saveState(st); err != nil {
		return err
	}

	s.logger.Info("updated hotel",
		zap.String("hotel_id", hotelID),
		zap.String("name", updated.Name),
		zap.Int("total_rooms", updated.TotalRooms))
	return nil
}

// GetHotel returns the hotel with the given identifier.
func (s *Service) GetHotel(hotelID string) (*models.Hotel, error) {
	hotels := s.store.LoadHotels()
	for i := range hotels {
		if hotels[i].HotelID == hotelID {
			hotel := hotels[i]
			return &hotel, nil
		}
	}
	s.logger.Warn("hotel not found", zap.String("hotel_id", hotelID))
	return nil, models.ErrHotelNotFound
}

// HotelInfo returns a one-line summary of the hotel including its current
// availability, e.g. `Hotel "Azure Inn" in Monterrey (total: 5, available: 3)`.
func (s *Service) HotelInfo(hotelID string) (string, error) {
	st := s.loadState()

	hotel := findHotel(st.hotels, hotelID)
	if hotel == nil {
		s.logger.Warn("hotel not found", zap.String("hotel_id", hotelID))
		return "", models.ErrHotelNotFound
	}

	available := availableRooms(hotel, st.reservations)
	return fmt.Sprintf("Hotel %q in %s (total: %d, available: %d)",
		hotel.Name, hotel.City, hotel.TotalRooms, available), nil
}
