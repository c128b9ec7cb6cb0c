package models

// Reservation status values.
const (
	// StatusActive marks a reservation that currently holds rooms and
	// counts against its hotel's capacity.
	StatusActive = "active"

	// StatusCancelled marks a reservation whose rooms have been released.
	// This state is terminal; cancelled reservations are kept on file but
	// never deleted.
	StatusCancelled = "cancelled"
)

// Reservation links one customer to one hotel and holds a number of rooms
// while its status is active. References are by identifier only and are
// validated by the service at operation time, not by the storage layer.
type Reservation struct {
	// ReservationID is the unique identifier for this reservation (UUID v4 format)
	ReservationID string `json:"reservation_id"`

	// HotelID references the hotel the rooms are held at
	HotelID string `json:"hotel_id"`

	// CustomerID references the customer the rooms are held for
	CustomerID string `json:"customer_id"`

	// Rooms is the number of rooms held; always positive for reservations
	// created through the service
	Rooms int `json:"rooms"`

	// Status is either StatusActive or StatusCancelled
	Status string `json:"status"`
}

// ReservationFromRecord builds a Reservation from a raw stored record.
// A missing status defaults to active, matching records written before the
// status transition existed.
func ReservationFromRecord(rec Record) (*Reservation, error) {
	reservationID, err := stringField(rec, "reservation_id")
	if err != nil {
		return nil, err
	}
	hotelID, err := stringField(rec, "hotel_id")
	if err != nil {
		return nil, err
	}
	customerID, err := stringField(rec, "customer_id")
	if err != nil {
		return nil, err
	}
	rooms, err := intField(rec, "rooms")
	if err != nil {
		return nil, err
	}

	status := StatusActive
	if _, ok := rec["status"]; ok {
		status, err = stringField(rec, "status")
		if err != nil {
			return nil, err
		}
	}

	return &Reservation{
		ReservationID: reservationID,
		HotelID:       hotelID,
		CustomerID:    customerID,
		Rooms:         rooms,
		Status:        status,
	}, nil
}

// ToRecord returns the reservation as a flat record for persistence.
func (r *Reservation) ToRecord() Record {
	return Record{
		"reservation_id": r.ReservationID,
		"hotel_id":       r.HotelID,
		"customer_id":    r.CustomerID,
		"rooms":          r.Rooms,
		"status":         r.Status,
	}
}

// Active reports whether this reservation currently holds rooms.
func (r *Reservation) Active() bool {
	return r.Status == StatusActive
}
