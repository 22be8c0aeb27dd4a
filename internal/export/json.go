// Package export implements the JSON and CSV file formats used by the
// import/export screen.  Import is replace-not-merge: a parsed file
// substitutes the entire corresponding collection.  Parsing validates
// shape only; a malformed file is rejected before any collection is
// touched.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
)

// MarshalJSON renders any of the three collections as an indented JSON
// array, the format produced by the original export buttons.
// Reservation dates serialize as RFC 3339 strings.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// ParseRoomsJSON decodes a JSON array of rooms.
func ParseRoomsJSON(data []byte) ([]model.Room, error) {
	var out []model.Room
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse rooms: %w", err)
	}
	return out, nil
}

// ParseTablesJSON decodes a JSON array of tables and rejects unknown
// shapes.
func ParseTablesJSON(data []byte) ([]model.Table, error) {
	var out []model.Table
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	for i, t := range out {
		if !t.Shape.Valid() {
			return nil, fmt.Errorf("parse tables: row %d: unknown shape %q", i, t.Shape)
		}
	}
	return out, nil
}

// ParseReservationsJSON decodes a JSON array of reservations.  Date
// strings are coerced into structured timestamps by the standard
// time.Time decoding; the store normalizes the redundant time-of-day
// string afterwards.
func ParseReservationsJSON(data []byte) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse reservations: %w", err)
	}
	return out, nil
}
