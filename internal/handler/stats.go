package handler // statistics handlers: summary, chart series and heatmap

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-floor-management/internal/period"
	"github.com/iliyamo/restaurant-floor-management/internal/stats"
)

// statsQuery resolves the shared query parameters of the statistics
// endpoints into a date range, a bucket granularity and a reservation
// filter.  Parameters: period (day/week/month/year/12months/custom),
// date (anchor, default today), start/end (custom bounds), rooms and
// tables (comma-separated ids), slots (comma-separated morning/midday/
// evening, or "all" for no slot filtering) and customer (name
// substring).
func statsQuery(c echo.Context) (period.Range, stats.Granularity, stats.Filter, bool) {
	anchor, ok := dateParam(c, "date")
	if !ok {
		return period.Range{}, "", stats.Filter{}, false
	}
	kind := period.ParseKind(c.QueryParam("period"))

	var custom *period.Range
	if kind == period.Custom {
		start, okS := dateParam(c, "start")
		end, okE := dateParam(c, "end")
		if !okS || !okE || c.QueryParam("start") == "" || c.QueryParam("end") == "" {
			// Both bounds are required for a custom interval.
			return period.Range{}, "", stats.Filter{}, false
		}
		custom = &period.Range{Start: start, End: end}
	}
	rng := period.ResolveAt(kind, anchor, time.Now(), custom)

	filter := stats.Filter{
		Range:    rng,
		RoomIDs:  splitParam(c.QueryParam("rooms")),
		TableIDs: splitParam(c.QueryParam("tables")),
		Customer: strings.TrimSpace(c.QueryParam("customer")),
	}
	for _, raw := range splitParam(c.QueryParam("slots")) {
		if raw == "all" {
			// "all" short-circuits to no filtering by time.
			filter.Slots = nil
			break
		}
		if slot, ok := stats.ParseSlot(raw); ok {
			filter.Slots = append(filter.Slots, slot)
		}
	}
	return rng, stats.GranularityFor(kind), filter, true
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StatsSummary handles GET /v1/stats/summary and returns headline
// figures for the filtered reservation set.
func (h *FloorHandler) StatsSummary(c echo.Context) error {
	_, _, filter, ok := statsQuery(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errJSON("invalid date range"))
	}
	filtered := stats.FilterReservations(h.Store.Reservations(), h.Store.Tables(), filter)
	return c.JSON(http.StatusOK, stats.Summarize(filtered))
}

// StatsSeries handles GET /v1/stats/series and returns the zero-filled
// activity chart: one point per day or month across the whole range.
func (h *FloorHandler) StatsSeries(c echo.Context) error {
	rng, granularity, filter, ok := statsQuery(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errJSON("invalid date range"))
	}
	filtered := stats.FilterReservations(h.Store.Reservations(), h.Store.Tables(), filter)
	points := stats.BuildSeries(filtered, rng, granularity)
	return c.JSON(http.StatusOK, map[string]any{"items": points})
}

// StatsHeatmap handles GET /v1/stats/heatmap and returns the full
// bucket-by-slot grid, zero cells included.
func (h *FloorHandler) StatsHeatmap(c echo.Context) error {
	rng, granularity, filter, ok := statsQuery(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errJSON("invalid date range"))
	}
	filtered := stats.FilterReservations(h.Store.Reservations(), h.Store.Tables(), filter)
	cells := stats.BuildHeatmap(filtered, rng, granularity)
	return c.JSON(http.StatusOK, map[string]any{"items": cells})
}
