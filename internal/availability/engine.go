// Package availability computes derived, read-only views of the floor:
// a table's booking status for a given date and the set of tables
// annotated with their reservations over a period.  Every function is
// pure; callers pass in the current collections from the store.
package availability

import (
	"sort"
	"time"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
	"github.com/iliyamo/restaurant-floor-management/internal/period"
)

// Status returns the booking status of one table for one calendar day.
// A table is reserved when at least one of its reservations falls on
// the target day, time-of-day ignored on both sides; otherwise it is
// free.  StatusWaiting exists in the vocabulary but no rule here
// produces it.
func Status(reservations []model.Reservation, tableID string, date time.Time) model.TableStatus {
	for _, r := range reservations {
		if r.TableID == tableID && period.SameDay(r.Date, date) {
			return model.StatusReserved
		}
	}
	return model.StatusFree
}

// TablesForPeriod returns every table (optionally filtered to one room)
// annotated with its reservations inside the period anchored on ref.
// Recognized kinds are day, week, month and year; anything else
// resolves to the day range.  Reservation lists are sorted ascending by
// date and always non-nil.  The status reflects the reference date
// specifically, not the whole window: it answers "is this table booked
// that day", while the list answers "what is booked in this window".
// Tables keep their natural collection order.
func TablesForPeriod(tables []model.Table, reservations []model.Reservation, ref time.Time, kind period.Kind, roomID string) []model.TableWithReservations {
	rng := period.Resolve(kind, ref)
	out := make([]model.TableWithReservations, 0, len(tables))
	for _, t := range tables {
		if roomID != "" && t.RoomID != roomID {
			continue
		}
		inWindow := make([]model.Reservation, 0)
		for _, r := range reservations {
			if r.TableID == t.ID && rng.Contains(r.Date) {
				inWindow = append(inWindow, r)
			}
		}
		sort.Slice(inWindow, func(i, j int) bool {
			return inWindow[i].Date.Before(inWindow[j].Date)
		})
		view := model.TableWithReservations{
			Table:        t,
			Reservations: inWindow,
			Status:       Status(reservations, t.ID, ref),
		}
		if len(inWindow) > 0 {
			next := inWindow[0].Date
			view.NextReservation = &next
		}
		out = append(out, view)
	}
	return out
}
