package handler // table handlers: create, list, patch and delete tables

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
)

// ListTables handles GET /v1/tables.  The optional room_id query
// parameter narrows the result to one room.
func (h *FloorHandler) ListTables(c echo.Context) error {
	roomID := c.QueryParam("room_id")
	tables := h.Store.Tables()
	if roomID != "" {
		filtered := make([]model.Table, 0, len(tables))
		for _, t := range tables {
			if t.RoomID == roomID {
				filtered = append(filtered, t)
			}
		}
		tables = filtered
	}
	return c.JSON(http.StatusOK, map[string]any{"items": tables})
}

// CreateTable handles POST /v1/tables.  The table number may be
// omitted, in which case the lowest unused number within the target
// room is assigned, matching the floor editor's behavior.
func (h *FloorHandler) CreateTable(c echo.Context) error {
	var body struct {
		Number   int              `json:"number"`
		Shape    model.TableShape `json:"shape"`
		Seats    int              `json:"seats"`
		RoomID   string           `json:"room_id"`
		Color    *string          `json:"color"`
		Position *model.Position  `json:"position"`
		Rotation *int             `json:"rotation"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid request body"))
	}
	if !body.Shape.Valid() {
		return c.JSON(http.StatusBadRequest, errJSON("unknown shape"))
	}
	if body.Seats <= 0 {
		return c.JSON(http.StatusBadRequest, errJSON("seats must be positive"))
	}
	roomExists := false
	for _, room := range h.Store.Rooms() {
		if room.ID == body.RoomID {
			roomExists = true
			break
		}
	}
	if !roomExists {
		return c.JSON(http.StatusBadRequest, errJSON("unknown room"))
	}
	number := body.Number
	if number <= 0 {
		number = h.Store.NextTableNumber(body.RoomID)
	}
	table := h.Store.AddTable(model.Table{
		Number:   number,
		Shape:    body.Shape,
		Seats:    body.Seats,
		RoomID:   body.RoomID,
		Color:    body.Color,
		Position: body.Position,
		Rotation: body.Rotation,
	})
	return c.JSON(http.StatusCreated, table)
}

// UpdateTable handles PATCH /v1/tables/:id with a typed partial update:
// only the fields present in the body are merged into the stored table.
func (h *FloorHandler) UpdateTable(c echo.Context) error {
	var patch model.TablePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid request body"))
	}
	if patch.Shape != nil && !patch.Shape.Valid() {
		return c.JSON(http.StatusBadRequest, errJSON("unknown shape"))
	}
	if patch.Seats != nil && *patch.Seats <= 0 {
		return c.JSON(http.StatusBadRequest, errJSON("seats must be positive"))
	}
	updated, ok := h.Store.UpdateTable(c.Param("id"), patch)
	if !ok {
		return c.JSON(http.StatusNotFound, errJSON("table not found"))
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTable handles DELETE /v1/tables/:id.  The table's reservations
// go with it; unknown ids are a no-op.
func (h *FloorHandler) DeleteTable(c echo.Context) error {
	h.Store.DeleteTable(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
