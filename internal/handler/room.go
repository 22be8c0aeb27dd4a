package handler // room handlers: create, list and delete dining rooms

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ListRooms handles GET /v1/rooms and returns every room in insertion order.
func (h *FloorHandler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"items": h.Store.Rooms()})
}

// CreateRoom handles POST /v1/rooms and creates a new dining room.
func (h *FloorHandler) CreateRoom(c echo.Context) error {
	var body struct {
		Name string `json:"name"` // Name is the only field of a room
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid request body"))
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, errJSON("name is required"))
	}
	room := h.Store.AddRoom(name)
	return c.JSON(http.StatusCreated, room)
}

// DeleteRoom handles DELETE /v1/rooms/:id.  Deleting a room cascades
// into its tables and their reservations; deleting an unknown id is a
// no-op by store contract, so the endpoint always answers 204.
func (h *FloorHandler) DeleteRoom(c echo.Context) error {
	h.Store.DeleteRoom(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
