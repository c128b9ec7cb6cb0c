package models

import "errors"

// Common error types used throughout the roomledger application.
// Service operations return these sentinels directly so callers can match
// them with errors.Is; storage-level failures are wrapped I/O errors and
// never use these values.

var (
	// ErrHotelNotFound indicates the requested hotel does not exist.
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrCustomerNotFound indicates the requested customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrReservationNotFound indicates the requested reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidRoomCount indicates a non-positive room count was supplied.
	ErrInvalidRoomCount = errors.New("room count must be greater than zero")

	// ErrInsufficientRooms indicates a reservation request exceeds the hotel's
	// remaining capacity.
	ErrInsufficientRooms = errors.New("not enough rooms available")

	// ErrHotelHasActiveReservations indicates the hotel cannot be deleted
	// while active reservations reference it.
	ErrHotelHasActiveReservations = errors.New("hotel has active reservations")

	// ErrCustomerHasActiveReservations indicates the customer cannot be
	// deleted while active reservations reference it.
	ErrCustomerHasActiveReservations = errors.New("customer has active reservations")

	// ErrReservationAlreadyCancelled indicates the reservation is already in
	// the terminal cancelled state.
	ErrReservationAlreadyCancelled = errors.New("reservation already cancelled")
)
