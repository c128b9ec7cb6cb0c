// Package models provides shared data structures for the roomledger project.
//
// This package contains the three persisted record shapes and the errors the
// service layer reports. By keeping models in a separate package, they can be
// imported by the store, the service, and the CLI without creating circular
// dependencies.
//
// The models in this package represent:
//   - Hotels: Bookable properties with a fixed room inventory
//   - Customers: People that reservations are booked for
//   - Reservations: Room holds linking one customer to one hotel
//
// Entities are treated as immutable values: update operations build a
// replacement value and substitute it in the collection rather than mutating
// in place. Each entity converts to and from the flat Record shape the store
// persists; conversion from a Record validates field presence and types so
// that a single malformed stored record can be skipped without discarding
// the rest of its collection.
package models
