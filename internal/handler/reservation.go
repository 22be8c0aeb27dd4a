package handler // reservation handlers: create, list, patch and delete bookings

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
)

// ListReservations handles GET /v1/reservations and returns every
// reservation in insertion order.  The optional table_id query
// parameter narrows the result to one table.
func (h *FloorHandler) ListReservations(c echo.Context) error {
	tableID := c.QueryParam("table_id")
	reservations := h.Store.Reservations()
	if tableID != "" {
		filtered := make([]model.Reservation, 0, len(reservations))
		for _, r := range reservations {
			if r.TableID == tableID {
				filtered = append(filtered, r)
			}
		}
		reservations = filtered
	}
	return c.JSON(http.StatusOK, map[string]any{"items": reservations})
}

// CreateReservation handles POST /v1/reservations.  The timestamp is
// authoritative; the HH:MM string is derived from it by the store, so
// callers cannot introduce a disagreement between the two.  Double
// booking is deliberately permitted and no foreign-key check is made on
// the table id.
func (h *FloorHandler) CreateReservation(c echo.Context) error {
	var body struct {
		TableID      string    `json:"table_id"`
		Date         time.Time `json:"date"`
		PartySize    int       `json:"party_size"`
		CustomerName *string   `json:"customer_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid request body"))
	}
	if body.TableID == "" {
		return c.JSON(http.StatusBadRequest, errJSON("table_id is required"))
	}
	if body.Date.IsZero() {
		return c.JSON(http.StatusBadRequest, errJSON("date is required"))
	}
	if body.PartySize <= 0 {
		return c.JSON(http.StatusBadRequest, errJSON("party_size must be positive"))
	}
	reservation := h.Store.AddReservation(model.Reservation{
		TableID:      body.TableID,
		Date:         body.Date,
		PartySize:    body.PartySize,
		CustomerName: body.CustomerName,
	})
	h.publishActivity("created", reservation)
	return c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation handles PATCH /v1/reservations/:id with a typed
// partial update.
func (h *FloorHandler) UpdateReservation(c echo.Context) error {
	var patch model.ReservationPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid request body"))
	}
	if patch.PartySize != nil && *patch.PartySize <= 0 {
		return c.JSON(http.StatusBadRequest, errJSON("party_size must be positive"))
	}
	updated, ok := h.Store.UpdateReservation(c.Param("id"), patch)
	if !ok {
		return c.JSON(http.StatusNotFound, errJSON("reservation not found"))
	}
	h.publishActivity("updated", updated)
	return c.JSON(http.StatusOK, updated)
}

// DeleteReservation handles DELETE /v1/reservations/:id; unknown ids
// are a no-op.
func (h *FloorHandler) DeleteReservation(c echo.Context) error {
	id := c.Param("id")
	for _, r := range h.Store.Reservations() {
		if r.ID == id {
			h.publishActivity("deleted", r)
			break
		}
	}
	h.Store.DeleteReservation(id)
	return c.NoContent(http.StatusNoContent)
}
