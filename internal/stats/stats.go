// Package stats filters reservations and aggregates them into chart
// series, a time-of-day heatmap and summary figures.  All functions are
// pure and deterministic; the handler layer resolves the date range and
// passes the current collections in.
package stats

import (
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
	"github.com/iliyamo/restaurant-floor-management/internal/period"
)

// Slot names one of the three reporting times of day.
type Slot string

const (
	SlotMorning Slot = "morning" // 06:00 through 11:00 inclusive
	SlotMidday  Slot = "midday"  // 11:01 through 14:59
	SlotEvening Slot = "evening" // 18:00 through 23:30 inclusive
)

// Slots lists the three slots in display order.
var Slots = []Slot{SlotMorning, SlotMidday, SlotEvening}

// ParseSlot maps a query value to a Slot.  The boolean is false for
// unknown values and for "all", which callers treat as "no slot
// filtering".
func ParseSlot(s string) (Slot, bool) {
	switch Slot(s) {
	case SlotMorning, SlotMidday, SlotEvening:
		return Slot(s), true
	}
	return "", false
}

// SlotOf classifies an "HH:MM" time string into a slot.  Times outside
// all three windows (for example 15:00 or 23:31) belong to no slot and
// return false, as do strings that do not parse.
func SlotOf(hhmm string) (Slot, bool) {
	h, m, ok := splitTime(hhmm)
	if !ok {
		return "", false
	}
	min := h*60 + m
	switch {
	case min >= 6*60 && min <= 11*60:
		return SlotMorning, true
	case min > 11*60 && min < 15*60:
		return SlotMidday, true
	case min >= 18*60 && min <= 23*60+30:
		return SlotEvening, true
	}
	return "", false
}

func splitTime(hhmm string) (h, m int, ok bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// Filter holds the reservation selection criteria.  Empty slices and
// strings disable their criterion; all active criteria must match.
type Filter struct {
	Range    period.Range
	RoomIDs  []string // keep reservations whose table sits in one of these rooms
	TableIDs []string // keep reservations on one of these tables
	Slots    []Slot   // keep reservations inside one of these time slots
	Customer string   // case-insensitive substring of the customer name
}

// FilterReservations applies f to the reservation collection.  The
// table collection is needed to resolve a reservation's room through
// its table.
func FilterReservations(reservations []model.Reservation, tables []model.Table, f Filter) []model.Reservation {
	roomOf := make(map[string]string, len(tables))
	for _, t := range tables {
		roomOf[t.ID] = t.RoomID
	}
	rooms := toSet(f.RoomIDs)
	tableIDs := toSet(f.TableIDs)
	customer := strings.ToLower(f.Customer)

	out := make([]model.Reservation, 0)
	for _, r := range reservations {
		if !f.Range.Contains(r.Date) {
			continue
		}
		if len(rooms) > 0 && !rooms[roomOf[r.TableID]] {
			continue
		}
		if len(tableIDs) > 0 && !tableIDs[r.TableID] {
			continue
		}
		if len(f.Slots) > 0 && !inSlots(r.Time, f.Slots) {
			continue
		}
		if customer != "" {
			if r.CustomerName == nil || !strings.Contains(strings.ToLower(*r.CustomerName), customer) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func toSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func inSlots(hhmm string, slots []Slot) bool {
	got, ok := SlotOf(hhmm)
	if !ok {
		return false
	}
	for _, s := range slots {
		if s == got {
			return true
		}
	}
	return false
}

// Granularity selects the bucket size of series and heatmaps.
type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
)

// GranularityFor returns the bucket size conventionally paired with a
// period kind: monthly for year-scale periods, daily otherwise.
func GranularityFor(kind period.Kind) Granularity {
	switch kind {
	case period.Year, period.Rolling12:
		return Monthly
	default:
		return Daily
	}
}

// SeriesPoint is one bucket of the activity chart.
type SeriesPoint struct {
	Date         time.Time `json:"date"`
	Reservations int       `json:"reservations"`
	Guests       int       `json:"guests"`
}

// BuildSeries produces one point per calendar day (or month) spanning
// the whole range, zero-activity buckets included, so charts render a
// continuous axis without gaps.  Each point sums the reservation count
// and guest total of the matching reservations.
func BuildSeries(filtered []model.Reservation, rng period.Range, g Granularity) []SeriesPoint {
	buckets := bucketDates(rng, g)
	index := make(map[string]int, len(buckets))
	out := make([]SeriesPoint, len(buckets))
	for i, d := range buckets {
		out[i] = SeriesPoint{Date: d}
		index[bucketKey(d, g)] = i
	}
	for _, r := range filtered {
		if i, ok := index[bucketKey(r.Date, g)]; ok {
			out[i].Reservations++
			out[i].Guests += r.PartySize
		}
	}
	return out
}

// HeatCell is one cell of the slot-by-date heatmap grid.
type HeatCell struct {
	Date  time.Time `json:"date"`
	Slot  Slot      `json:"slot"`
	Count int       `json:"count"`
}

// BuildHeatmap emits the full cross product of date buckets and the
// three slots, counting reservations whose time falls in each slot.
// Zero-count cells are kept so the display grid has no holes.
// Reservations outside every slot contribute to no cell.
func BuildHeatmap(filtered []model.Reservation, rng period.Range, g Granularity) []HeatCell {
	buckets := bucketDates(rng, g)
	index := make(map[string]int, len(buckets)*len(Slots))
	out := make([]HeatCell, 0, len(buckets)*len(Slots))
	for _, d := range buckets {
		for _, s := range Slots {
			index[bucketKey(d, g)+"|"+string(s)] = len(out)
			out = append(out, HeatCell{Date: d, Slot: s})
		}
	}
	for _, r := range filtered {
		slot, ok := SlotOf(r.Time)
		if !ok {
			continue
		}
		if i, ok := index[bucketKey(r.Date, g)+"|"+string(slot)]; ok {
			out[i].Count++
		}
	}
	return out
}

// Summary aggregates headline figures over a filtered set.
type Summary struct {
	Reservations int `json:"reservations"` // number of reservations kept by the filter
	Guests       int `json:"guests"`       // sum of party sizes
	ActiveDays   int `json:"active_days"`  // distinct calendar days with at least one reservation
}

// Summarize computes the Summary of a filtered reservation set.
func Summarize(filtered []model.Reservation) Summary {
	days := make(map[string]bool)
	sum := Summary{Reservations: len(filtered)}
	for _, r := range filtered {
		sum.Guests += r.PartySize
		days[r.Date.Format("2006-01-02")] = true
	}
	sum.ActiveDays = len(days)
	return sum
}

// bucketDates lists the first instant of every bucket covering rng.
func bucketDates(rng period.Range, g Granularity) []time.Time {
	var out []time.Time
	if g == Monthly {
		cursor := time.Date(rng.Start.Year(), rng.Start.Month(), 1, 0, 0, 0, 0, rng.Start.Location())
		for !cursor.After(rng.End) {
			out = append(out, cursor)
			cursor = cursor.AddDate(0, 1, 0)
		}
		return out
	}
	cursor := period.StartOfDay(rng.Start)
	for !cursor.After(rng.End) {
		out = append(out, cursor)
		cursor = cursor.AddDate(0, 0, 1)
	}
	return out
}

func bucketKey(t time.Time, g Granularity) string {
	if g == Monthly {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}
