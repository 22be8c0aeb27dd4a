package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
	"github.com/iliyamo/restaurant-floor-management/internal/period"
)

func strptr(s string) *string { return &s }

func resAt(id, tableID string, date time.Time, hhmm string, party int, name string) model.Reservation {
	r := model.Reservation{ID: id, TableID: tableID, Date: date, Time: hhmm, PartySize: party}
	if name != "" {
		r.CustomerName = strptr(name)
	}
	return r
}

func day(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestSlotOfBoundaries(t *testing.T) {
	tests := []struct {
		hhmm string
		slot Slot
		ok   bool
	}{
		{"06:00", SlotMorning, true},
		{"05:59", "", false},
		{"11:00", SlotMorning, true}, // 11:00 sharp is still morning
		{"11:01", SlotMidday, true},  // one minute later flips to midday
		{"14:59", SlotMidday, true},
		{"15:00", "", false}, // 15:00 belongs to no slot
		{"17:59", "", false},
		{"18:00", SlotEvening, true},
		{"23:30", SlotEvening, true},
		{"23:31", "", false},
		{"", "", false},
		{"25:00", "", false},
		{"bogus", "", false},
	}
	for _, tt := range tests {
		slot, ok := SlotOf(tt.hhmm)
		if slot != tt.slot || ok != tt.ok {
			t.Errorf("SlotOf(%q) = (%q, %v), want (%q, %v)", tt.hhmm, slot, ok, tt.slot, tt.ok)
		}
	}
}

func TestFilterReservations(t *testing.T) {
	tables := []model.Table{
		{ID: "t1", RoomID: "r1"},
		{ID: "t2", RoomID: "r2"},
	}
	all := []model.Reservation{
		resAt("a", "t1", day(2024, time.June, 10, 12, 30), "12:30", 2, "Dupont"),
		resAt("b", "t2", day(2024, time.June, 11, 20, 0), "20:00", 4, "Martin"),
		resAt("c", "t1", day(2024, time.June, 20, 9, 0), "09:00", 3, ""),
		resAt("d", "t2", day(2024, time.July, 1, 12, 0), "12:00", 5, "dupontel"),
	}
	june := period.Range{Start: day(2024, time.June, 1, 0, 0), End: day(2024, time.June, 30, 23, 59)}

	ids := func(rs []model.Reservation) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"range only", Filter{Range: june}, []string{"a", "b", "c"}},
		{"room filter", Filter{Range: june, RoomIDs: []string{"r1"}}, []string{"a", "c"}},
		{"table filter", Filter{Range: june, TableIDs: []string{"t2"}}, []string{"b"}},
		{"slot filter evening", Filter{Range: june, Slots: []Slot{SlotEvening}}, []string{"b"}},
		{"slot filter morning+midday", Filter{Range: june, Slots: []Slot{SlotMorning, SlotMidday}}, []string{"a", "c"}},
		{"customer substring, case-insensitive", Filter{Range: june, Customer: "dupont"}, []string{"a"}},
		{"customer filter excludes unnamed", Filter{Range: june, Customer: "x"}, []string{}},
		{"all criteria AND together", Filter{Range: june, RoomIDs: []string{"r1"}, Slots: []Slot{SlotMidday}}, []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterReservations(all, tables, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildSeriesZeroFillsGaps(t *testing.T) {
	// Three-day range with activity on day 1 and day 3 only: the series
	// must still hold exactly three points, day 2 with zero counts.
	rng := period.Range{Start: day(2024, time.June, 10, 0, 0), End: day(2024, time.June, 12, 23, 59)}
	filtered := []model.Reservation{
		resAt("a", "t1", day(2024, time.June, 10, 12, 0), "12:00", 2, ""),
		resAt("b", "t1", day(2024, time.June, 12, 19, 0), "19:00", 4, ""),
		resAt("c", "t1", day(2024, time.June, 12, 20, 0), "20:00", 3, ""),
	}
	points := BuildSeries(filtered, rng, Daily)
	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	if points[0].Reservations != 1 || points[0].Guests != 2 {
		t.Errorf("day 1 = %+v, want 1 reservation, 2 guests", points[0])
	}
	if points[1].Reservations != 0 || points[1].Guests != 0 {
		t.Errorf("day 2 = %+v, want zero activity", points[1])
	}
	if points[2].Reservations != 2 || points[2].Guests != 7 {
		t.Errorf("day 3 = %+v, want 2 reservations, 7 guests", points[2])
	}
}

func TestBuildSeriesMonthly(t *testing.T) {
	// A year resolves to twelve monthly buckets regardless of activity.
	rng := period.Resolve(period.Year, day(2024, time.May, 10, 0, 0))
	filtered := []model.Reservation{
		resAt("a", "t1", day(2024, time.March, 5, 12, 0), "12:00", 2, ""),
		resAt("b", "t1", day(2024, time.March, 25, 12, 0), "12:00", 6, ""),
	}
	points := BuildSeries(filtered, rng, Monthly)
	if len(points) != 12 {
		t.Fatalf("len(points) = %d, want 12", len(points))
	}
	if points[2].Reservations != 2 || points[2].Guests != 8 {
		t.Errorf("march = %+v, want 2 reservations, 8 guests", points[2])
	}
	for i, p := range points {
		if i != 2 && p.Reservations != 0 {
			t.Errorf("month %d has %d reservations, want 0", i, p.Reservations)
		}
	}
}

func TestBuildSeriesIsIdempotent(t *testing.T) {
	rng := period.Range{Start: day(2024, time.June, 1, 0, 0), End: day(2024, time.June, 30, 23, 59)}
	filtered := []model.Reservation{
		resAt("a", "t1", day(2024, time.June, 10, 12, 0), "12:00", 2, ""),
	}
	first := BuildSeries(filtered, rng, Daily)
	second := BuildSeries(filtered, rng, Daily)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical series")
	}
}

func TestBuildHeatmapEmitsFullGrid(t *testing.T) {
	rng := period.Range{Start: day(2024, time.June, 10, 0, 0), End: day(2024, time.June, 11, 23, 59)}
	filtered := []model.Reservation{
		resAt("a", "t1", day(2024, time.June, 10, 12, 30), "12:30", 2, ""), // midday
		resAt("b", "t1", day(2024, time.June, 10, 19, 0), "19:00", 4, ""),  // evening
		resAt("c", "t1", day(2024, time.June, 11, 15, 0), "15:00", 3, ""),  // no slot, counted nowhere
	}
	cells := BuildHeatmap(filtered, rng, Daily)
	if want := 2 * len(Slots); len(cells) != want {
		t.Fatalf("len(cells) = %d, want %d", len(cells), want)
	}
	counts := make(map[string]int)
	total := 0
	for _, cell := range cells {
		counts[cell.Date.Format("2006-01-02")+"|"+string(cell.Slot)] = cell.Count
		total += cell.Count
	}
	if counts["2024-06-10|midday"] != 1 || counts["2024-06-10|evening"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if total != 2 {
		t.Errorf("total count = %d, want 2 (the 15:00 booking matches no slot)", total)
	}
}

func TestSummarize(t *testing.T) {
	filtered := []model.Reservation{
		resAt("a", "t1", day(2024, time.June, 10, 12, 0), "12:00", 2, ""),
		resAt("b", "t1", day(2024, time.June, 10, 19, 0), "19:00", 4, ""),
		resAt("c", "t2", day(2024, time.June, 12, 20, 0), "20:00", 3, ""),
	}
	got := Summarize(filtered)
	want := Summary{Reservations: 3, Guests: 9, ActiveDays: 2}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", empty)
	}
}

func TestGranularityFor(t *testing.T) {
	for kind, want := range map[period.Kind]Granularity{
		period.Day:       Daily,
		period.Week:      Daily,
		period.Month:     Daily,
		period.Custom:    Daily,
		period.Year:      Monthly,
		period.Rolling12: Monthly,
	} {
		if got := GranularityFor(kind); got != want {
			t.Errorf("GranularityFor(%s) = %s, want %s", kind, got, want)
		}
	}
}
