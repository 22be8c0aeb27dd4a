package model

import "time"

// TimeLayout is the "HH:MM" layout used for a reservation's
// time-of-day string.
const TimeLayout = "15:04"

// Reservation records a booking of one table for a given date and
// party size.  The Date field carries the full timestamp including the
// time of day; Time repeats the time of day as an "HH:MM" string for
// display and filtering.  The timestamp is authoritative: the store
// re-derives Time from Date whenever the two disagree.
//
// Fields:
//  ID           – unique identifier of the reservation.
//  TableID      – id of the reserved table.
//  Date         – full timestamp of the booking.
//  Time         – "HH:MM" time-of-day string, kept consistent with Date.
//  PartySize    – number of guests, always positive.
//  CustomerName – optional name of the customer (nil when not recorded).
type Reservation struct {
	ID           string    `json:"id"`
	TableID      string    `json:"table_id"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	PartySize    int       `json:"party_size"`
	CustomerName *string   `json:"customer_name,omitempty"`
}

// ReservationPatch is a partial update for a reservation.  Only non-nil
// fields are merged.
type ReservationPatch struct {
	TableID      *string    `json:"table_id,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Time         *string    `json:"time,omitempty"`
	PartySize    *int       `json:"party_size,omitempty"`
	CustomerName *string    `json:"customer_name,omitempty"`
}

// Apply merges the non-nil patch fields into r.
func (p ReservationPatch) Apply(r *Reservation) {
	if p.TableID != nil {
		r.TableID = *p.TableID
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.PartySize != nil {
		r.PartySize = *p.PartySize
	}
	if p.CustomerName != nil {
		r.CustomerName = p.CustomerName
	}
}
