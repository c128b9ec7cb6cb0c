package models

// Hotel represents a bookable property with a fixed room inventory.
// Capacity accounting is derived: the rooms still available are the total
// minus the rooms held by active reservations, computed on demand.
type Hotel struct {
	// HotelID is the unique identifier for this hotel (UUID v4 format)
	HotelID string `json:"hotel_id"`

	// Name is the human-readable hotel name (e.g., "Azure Inn")
	Name string `json:"name"`

	// City is the city the hotel is located in
	City string `json:"city"`

	// TotalRooms is the fixed room inventory. Hotels created through the
	// service always have a positive value
	TotalRooms int `json:"total_rooms"`
}

// HotelFromRecord builds a Hotel from a raw stored record, validating that
// every field is present and coercible. The error describes the first
// offending field so the caller can log it and skip the record.
func HotelFromRecord(rec Record) (*Hotel, error) {
	hotelID, err := stringField(rec, "hotel_id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(rec, "name")
	if err != nil {
		return nil, err
	}
	city, err := stringField(rec, "city")
	if err != nil {
		return nil, err
	}
	totalRooms, err := intField(rec, "total_rooms")
	if err != nil {
		return nil, err
	}

	return &Hotel{
		HotelID:    hotelID,
		Name:       name,
		City:       city,
		TotalRooms: totalRooms,
	}, nil
}

// ToRecord returns the hotel as a flat record for persistence. The field
// set is the exact inverse of HotelFromRecord.
func (h *Hotel) ToRecord() Record {
	return Record{
		"hotel_id":    h.HotelID,
		"name":        h.Name,
		"city":        h.City,
		"total_rooms": h.TotalRooms,
	}
}

// HotelUpdate describes a partial update to a hotel. Nil fields are left
// unchanged.
type HotelUpdate struct {
	// Name replaces the hotel name when set (trimmed of surrounding whitespace)
	Name *string

	// City replaces the city when set (trimmed)
	City *string

	// TotalRooms replaces the room inventory when set; must be positive
	TotalRooms *int
}
