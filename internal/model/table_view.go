package model

import "time"

// TableStatus is a table's derived booking state for a specific date.
// StatusWaiting is part of the vocabulary for future use (a party that
// has booked but not yet been seated); no current rule produces it.
type TableStatus string

const (
	StatusFree     TableStatus = "free"     // no reservation on the target date
	StatusReserved TableStatus = "reserved" // at least one reservation on the target date
	StatusWaiting  TableStatus = "waiting"  // reserved for future use, never produced
)

// TableWithReservations is a read-only projection of a table annotated
// with its reservations for a requested period.  It is recomputed on
// every query and never stored.
//
// Fields:
//  Table           – the underlying table, embedded.
//  Reservations    – reservations inside the requested period, sorted
//                    ascending by date.  Always non-nil, possibly empty.
//  Status          – booking status for the reference date specifically,
//                    not for the whole period window.
//  NextReservation – date of the earliest reservation in the window,
//                    nil when the window is empty.
type TableWithReservations struct {
	Table
	Reservations    []Reservation `json:"reservations"`
	Status          TableStatus   `json:"status"`
	NextReservation *time.Time    `json:"next_reservation,omitempty"`
}
