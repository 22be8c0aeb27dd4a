package export

import (
	"testing"
	"time"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
)

func TestReservationsJSONRoundTrip(t *testing.T) {
	date := time.Date(2024, time.June, 12, 12, 30, 0, 0, time.Local)
	original := []model.Reservation{
		{ID: "a", TableID: "t1", Date: date, Time: "12:30", PartySize: 2, CustomerName: strptr("Dupont")},
		{ID: "b", TableID: "t2", Date: date.AddDate(0, 0, 1), Time: "12:30", PartySize: 4},
	}
	data, err := MarshalJSON(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := ParseReservationsJSON(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("len = %d, want 2", len(back))
	}
	for i := range original {
		if back[i].ID != original[i].ID || !back[i].Date.Equal(original[i].Date) ||
			back[i].PartySize != original[i].PartySize {
			t.Errorf("row %d mismatch: %+v vs %+v", i, back[i], original[i])
		}
	}
	if back[1].CustomerName != nil {
		t.Error("absent customer name must stay absent")
	}
}

func TestParseReservationsJSONCoercesDateStrings(t *testing.T) {
	// Dates arrive as ISO-like strings in exported files and must come
	// back as structured timestamps.
	data := []byte(`[{"id":"a","table_id":"t1","date":"2024-06-12T12:30:00+02:00","time":"12:30","party_size":2}]`)
	back, err := ParseReservationsJSON(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if back[0].Date.IsZero() || back[0].Date.Hour() != 12 || back[0].Date.Minute() != 30 {
		t.Errorf("date not coerced: %v", back[0].Date)
	}
}

func TestParseJSONRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{`{`, `{"not":"an array"}`, `[{"date": 12}]`} {
		if _, err := ParseReservationsJSON([]byte(raw)); err == nil {
			t.Errorf("input %q must be rejected", raw)
		}
	}
	if _, err := ParseTablesJSON([]byte(`[{"id":"t1","number":1,"shape":"oval","seats":4,"room_id":"r1"}]`)); err == nil {
		t.Error("unknown shape must be rejected")
	}
}
