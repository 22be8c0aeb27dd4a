package handler // handler defines the HTTP handlers of the floor-management API

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
	"github.com/iliyamo/restaurant-floor-management/internal/queue"
	queue_publisher "github.com/iliyamo/restaurant-floor-management/internal/service"
	"github.com/iliyamo/restaurant-floor-management/internal/store"
)

// dateParamLayout is the YYYY-MM-DD layout of date query parameters.
const dateParamLayout = "2006-01-02"

// FloorHandler bundles the data store behind every endpoint of the API.
// Availability and statistics queries read the collections through it;
// mutations go through its CRUD operations.
type FloorHandler struct {
	Store *store.Store // Store owns the in-memory collections and their persistence
}

// NewFloorHandler constructs a FloorHandler and panics if the store is
// nil, mirroring the constructor contract of the rest of the codebase.
func NewFloorHandler(s *store.Store) *FloorHandler {
	if s == nil {
		panic("nil store passed to NewFloorHandler")
	}
	return &FloorHandler{Store: s}
}

// errJSON is the uniform error body of the API.
func errJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// dateParam reads a YYYY-MM-DD query parameter, defaulting to today
// when absent.  The boolean is false when the value does not parse.
func dateParam(c echo.Context, name string) (time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Now(), true
	}
	t, err := time.ParseInLocation(dateParamLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// publishActivity emits a reservation event to the broker in the
// background.  Delivery is best-effort: the publisher logs failures and
// the mutation's response never waits on the broker.
func (h *FloorHandler) publishActivity(action string, r model.Reservation) {
	ev := queue.ReservationEvent{
		Action:        action,
		ReservationID: r.ID,
		TableID:       r.TableID,
		Date:          r.Date.Format(dateParamLayout),
		Time:          r.Time,
		PartySize:     r.PartySize,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if r.CustomerName != nil {
		ev.CustomerName = *r.CustomerName
	}
	for _, t := range h.Store.Tables() {
		if t.ID == r.TableID {
			ev.TableNumber = t.Number
			for _, room := range h.Store.Rooms() {
				if room.ID == t.RoomID {
					ev.RoomName = room.Name
					break
				}
			}
			break
		}
	}
	go func() {
		_ = queue_publisher.PublishReservationActivity(context.Background(), ev)
	}()
}
