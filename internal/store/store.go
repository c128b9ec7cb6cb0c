// Package store persists the three entity collections as whole JSON array files.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dreyes/roomledger/models"
)

// Collection names understood by the store. Each maps to one JSON file
// under the data directory.
const (
	CollectionHotels       = "hotels"
	CollectionCustomers    = "customers"
	CollectionReservations = "reservations"
)

// Store reads and writes the three entity collections as JSON array files
// under a single directory. Loads never fail the caller: a missing,
// unreadable, or corrupt file degrades to an empty collection with a logged
// diagnostic, and the next successful save rewrites the file in full.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a store rooted at dir, creating the directory if needed.
//
// Parameters:
//   - dir: Directory holding the collection files
//   - logger: Zap logger for load-time diagnostics
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logger,
	}, nil
}

// Dir returns the directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path backing the named collection.
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads the named collection as raw records. A missing file yields an
// empty collection silently; an unreadable file, invalid JSON, or a
// non-array top level yields an empty collection with a logged error. Array
// elements that are not JSON objects are skipped one by one with a logged
// error, keeping the valid records around them.
func (s *Store) Load(collection string) []models.Record {
	path := s.Path(collection)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.logger.Error("failed to read collection file",
			zap.String("collection", collection),
			zap.String("path", path),
			zap.Error(err))
		return nil
	}

	var elements []any
	if err := json.Unmarshal(data, &elements); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			s.logger.Error("invalid JSON in collection file",
				zap.String("collection", collection),
				zap.String("path", path),
				zap.Int64("offset", syntaxErr.Offset),
				zap.Error(err))
		} else {
			s.logger.Error("collection file must contain a JSON array",
				zap.String("collection", collection),
				zap.String("path", path),
				zap.Error(err))
		}
		return nil
	}
	if elements == nil {
		// A JSON null parses without error but is not an array.
		s.logger.Error("collection file must contain a JSON array",
			zap.String("collection", collection),
			zap.String("path", path))
		return nil
	}

	records := make([]models.Record, 0, len(elements))
	for i, elem := range elements {
		obj, ok := elem.(map[string]any)
		if !ok {
			s.logger.Error("skipping non-object element in collection file",
				zap.String("collection", collection),
				zap.Int("index", i),
				zap.String("type", fmt.Sprintf("%T", elem)))
			continue
		}
		records = append(records, models.Record(obj))
	}
	return records
}

// Save fully overwrites the named collection file with the given records,
// serialized as two-space-indented JSON. Map keys marshal in sorted order,
// so saving the records just loaded reproduces the file byte for byte.
func (s *Store) Save(collection string, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s collection: %w", collection, err)
	}

	if err := os.WriteFile(s.Path(collection), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s collection: %w", collection, err)
	}

	return nil
}

// LoadHotels returns all decodable hotels, skipping malformed records with
// a logged error per skip.
func (s *Store) LoadHotels() []models.Hotel {
	raw := s.Load(CollectionHotels)
	hotels := make([]models.Hotel, 0, len(raw))
	for _, rec := range raw {
		hotel, err := models.HotelFromRecord(rec)
		if err != nil {
			s.logger.Error("skipping invalid hotel record",
				zap.String("collection", CollectionHotels),
				zap.Error(err))
			continue
		}
		hotels = append(hotels, *hotel)
	}
	return hotels
}

// SaveHotels persists the full hotel collection.
func (s *Store) SaveHotels(hotels []models.Hotel) error {
	records := make([]models.Record, 0, len(hotels))
	for i := range hotels {
		records = append(records, hotels[i].ToRecord())
	}
	return s.Save(CollectionHotels, records)
}

// LoadCustomers returns all decodable customers, skipping malformed records
// with a logged error per skip.
func (s *Store) LoadCustomers() []models.Customer {
	raw := s.Load(CollectionCustomers)
	customers := make([]models.Customer, 0, len(raw))
	for _, rec := range raw {
		customer, err := models.CustomerFromRecord(rec)
		if err != nil {
			s.logger.Error("skipping invalid customer record",
				zap.String("collection", CollectionCustomers),
				zap.Error(err))
			continue
		}
		customers = append(customers, *customer)
	}
	return customers
}

// SaveCustomers persists the full customer collection.
func (s *Store) SaveCustomers(customers []models.Customer) error {
	records := make([]models.Record, 0, len(customers))
	for i := range customers {
		records = append(records, customers[i].ToRecord())
	}
	return s.Save(CollectionCustomers, records)
}

// LoadReservations returns all decodable reservations, skipping malformed
// records with a logged error per skip.
func (s *Store) LoadReservations() []models.Reservation {
	raw := s.Load(CollectionReservations)
	reservations := make([]models.Reservation, 0, len(raw))
	for _, rec := range raw {
		res, err := models.ReservationFromRecord(rec)
		if err != nil {
			s.logger.Error("skipping invalid reservation record",
				zap.String("collection", CollectionReservations),
				zap.Error(err))
			continue
		}
		reservations = append(reservations, *res)
	}
	return reservations
}

// SaveReservations persists the full reservation collection.
func (s *Store) SaveReservations(reservations []models.Reservation) error {
	records := make([]models.Record, 0, len(reservations))
	for i := range reservations {
		records = append(records, reservations[i].ToRecord())
	}
	return s.Save(CollectionReservations, records)
}
