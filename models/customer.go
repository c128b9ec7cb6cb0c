package models

// Customer represents a person reservations can be booked for.
type Customer struct {
	// CustomerID is the unique identifier for this customer (UUID v4 format)
	CustomerID string `json:"customer_id"`

	// Name is the customer's display name
	Name string `json:"name"`

	// Email is a free-form contact address; no format validation is performed
	Email string `json:"email"`
}

// CustomerFromRecord builds a Customer from a raw stored record, validating
// that every field is present and is a string.
func CustomerFromRecord(rec Record) (*Customer, error) {
	customerID, err := stringField(rec, "customer_id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(rec, "name")
	if err != nil {
		return nil, err
	}
	email, err := stringField(rec, "email")
	if err != nil {
		return nil, err
	}

	return &Customer{
		CustomerID: customerID,
		Name:       name,
		Email:      email,
	}, nil
}

// ToRecord returns the customer as a flat record for persistence.
func (c *Customer) ToRecord() Record {
	return Record{
		"customer_id": c.CustomerID,
		"name":        c.Name,
		"email":       c.Email,
	}
}

// CustomerUpdate describes a partial update to a customer. Nil fields are
// left unchanged.
type CustomerUpdate struct {
	// Name replaces the customer name when set (trimmed of surrounding whitespace)
	Name *string

	// Email replaces the contact address when set (trimmed)
	Email *string
}
