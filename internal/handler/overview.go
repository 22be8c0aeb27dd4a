package handler // overview handlers: per-date table status and the period floor view

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-floor-management/internal/availability"
	"github.com/iliyamo/restaurant-floor-management/internal/period"
)

// FloorOverview handles GET /v1/floor/overview?date=&period=&room_id=.
// It returns every table (optionally one room) annotated with its
// reservations inside the requested period, the status for the
// reference date and the next upcoming reservation of the window.
func (h *FloorHandler) FloorOverview(c echo.Context) error {
	ref, ok := dateParam(c, "date")
	if !ok {
		return c.JSON(http.StatusBadRequest, errJSON("invalid date"))
	}
	kind := period.ParseKind(c.QueryParam("period"))
	views := availability.TablesForPeriod(
		h.Store.Tables(),
		h.Store.Reservations(),
		ref, kind,
		c.QueryParam("room_id"),
	)
	return c.JSON(http.StatusOK, map[string]any{"items": views})
}

// TableStatus handles GET /v1/tables/:id/status?date= and returns the
// free/reserved status of one table for one calendar day.
func (h *FloorHandler) TableStatus(c echo.Context) error {
	id := c.Param("id")
	found := false
	for _, t := range h.Store.Tables() {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return c.JSON(http.StatusNotFound, errJSON("table not found"))
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return c.JSON(http.StatusBadRequest, errJSON("invalid date"))
	}
	status := availability.Status(h.Store.Reservations(), id, date)
	return c.JSON(http.StatusOK, map[string]any{
		"table_id": id,
		"date":     date.Format(dateParamLayout),
		"status":   status,
	})
}
