package availability

import (
	"testing"
	"time"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
	"github.com/iliyamo/restaurant-floor-management/internal/period"
)

func day(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestStatusReservedOnSameCalendarDayOnly(t *testing.T) {
	reservations := []model.Reservation{
		{ID: "a", TableID: "t1", Date: day(2024, time.June, 12, 20, 30), Time: "20:30", PartySize: 2},
	}
	tests := []struct {
		name    string
		tableID string
		date    time.Time
		want    model.TableStatus
	}{
		{"same day, different hour", "t1", day(2024, time.June, 12, 8, 0), model.StatusReserved},
		{"day before", "t1", day(2024, time.June, 11, 20, 30), model.StatusFree},
		{"day after", "t1", day(2024, time.June, 13, 20, 30), model.StatusFree},
		{"other table", "t2", day(2024, time.June, 12, 20, 30), model.StatusFree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(reservations, tt.tableID, tt.date); got != tt.want {
				t.Errorf("Status = %q, want %q", got, tt.want)
			}
		})
	}
}

// Scenario: one round table with a single booking today at 12:30 must
// show as reserved for the day view, carrying that booking as both the
// reservation list and the next reservation date.
func TestTablesForPeriodSingleBooking(t *testing.T) {
	name := "Dupont"
	today := day(2024, time.June, 12, 12, 30)
	tables := []model.Table{
		{ID: "t1", Number: 1, Shape: model.ShapeRound, Seats: 4, RoomID: "patio"},
	}
	reservations := []model.Reservation{
		{ID: "a", TableID: "t1", Date: today, Time: "12:30", PartySize: 2, CustomerName: &name},
	}
	views := TablesForPeriod(tables, reservations, today, period.Day, "")
	if len(views) != 1 {
		t.Fatalf("len(views) = %d, want 1", len(views))
	}
	v := views[0]
	if v.Status != model.StatusReserved {
		t.Errorf("status = %q, want reserved", v.Status)
	}
	if len(v.Reservations) != 1 || v.Reservations[0].ID != "a" {
		t.Errorf("reservations = %+v, want the single booking", v.Reservations)
	}
	if v.NextReservation == nil || !v.NextReservation.Equal(today) {
		t.Errorf("next reservation = %v, want %v", v.NextReservation, today)
	}
}

func TestTablesForPeriodRoomFilter(t *testing.T) {
	tables := []model.Table{
		{ID: "t1", RoomID: "r1"},
		{ID: "t2", RoomID: "r2"},
		{ID: "t3", RoomID: "r1"},
	}
	ref := day(2024, time.June, 12, 0, 0)

	views := TablesForPeriod(tables, nil, ref, period.Day, "r1")
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
	for _, v := range views {
		if v.RoomID != "r1" {
			t.Errorf("table %s has room %s, want r1", v.ID, v.RoomID)
		}
	}

	// No filter returns the full set in natural collection order.
	all := TablesForPeriod(tables, nil, ref, period.Day, "")
	if len(all) != 3 || all[0].ID != "t1" || all[1].ID != "t2" || all[2].ID != "t3" {
		t.Errorf("unfiltered views out of order: %+v", all)
	}
}

func TestTablesForPeriodEmptyWindow(t *testing.T) {
	tables := []model.Table{{ID: "t1", RoomID: "r1"}}
	reservations := []model.Reservation{
		{ID: "a", TableID: "t1", Date: day(2024, time.July, 1, 12, 0), Time: "12:00", PartySize: 2},
	}
	// June window: the table still appears, free, with an empty but
	// non-nil reservation list and no next reservation.
	views := TablesForPeriod(tables, reservations, day(2024, time.June, 12, 0, 0), period.Month, "")
	if len(views) != 1 {
		t.Fatalf("len(views) = %d, want 1", len(views))
	}
	v := views[0]
	if v.Status != model.StatusFree {
		t.Errorf("status = %q, want free", v.Status)
	}
	if v.Reservations == nil || len(v.Reservations) != 0 {
		t.Errorf("reservations = %#v, want empty non-nil slice", v.Reservations)
	}
	if v.NextReservation != nil {
		t.Errorf("next reservation = %v, want nil", v.NextReservation)
	}
}

func TestTablesForPeriodSortsAscendingAndStatusTracksReferenceDate(t *testing.T) {
	tables := []model.Table{{ID: "t1", RoomID: "r1"}}
	reservations := []model.Reservation{
		{ID: "late", TableID: "t1", Date: day(2024, time.June, 14, 20, 0), Time: "20:00", PartySize: 2},
		{ID: "early", TableID: "t1", Date: day(2024, time.June, 13, 12, 0), Time: "12:00", PartySize: 2},
	}
	// Reference date June 12th has no booking: the week window carries
	// both reservations but the status stays free.
	views := TablesForPeriod(tables, reservations, day(2024, time.June, 12, 0, 0), period.Week, "")
	v := views[0]
	if v.Status != model.StatusFree {
		t.Errorf("status = %q, want free (nothing booked on the reference date)", v.Status)
	}
	if len(v.Reservations) != 2 || v.Reservations[0].ID != "early" || v.Reservations[1].ID != "late" {
		t.Errorf("reservations not sorted ascending: %+v", v.Reservations)
	}
	if v.NextReservation == nil || !v.NextReservation.Equal(reservations[1].Date) {
		t.Errorf("next reservation = %v, want the earliest in window", v.NextReservation)
	}
}

func TestTablesForPeriodUnknownKindDefaultsToDay(t *testing.T) {
	tables := []model.Table{{ID: "t1", RoomID: "r1"}}
	reservations := []model.Reservation{
		{ID: "a", TableID: "t1", Date: day(2024, time.June, 13, 12, 0), Time: "12:00", PartySize: 2},
	}
	views := TablesForPeriod(tables, reservations, day(2024, time.June, 12, 0, 0), period.Kind("quarter"), "")
	if len(views[0].Reservations) != 0 {
		t.Error("unknown kind must resolve to the day range, excluding the next day's booking")
	}
}
