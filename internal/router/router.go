package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/restaurant-floor-management/internal/handler" // import the handlers that implement the endpoints
)

// RegisterRoutes wires every endpoint of the floor-management API onto
// the provided Echo instance.  The read-only overview and statistics
// endpoints additionally pass through the Redis response cache; pass an
// identity middleware to disable caching.
func RegisterRoutes(e *echo.Echo, h *handler.FloorHandler, cache echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring systems.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	// Room configuration.
	v1.GET("/rooms", h.ListRooms)
	v1.POST("/rooms", h.CreateRoom)
	v1.DELETE("/rooms/:id", h.DeleteRoom)

	// Table configuration and placement.
	v1.GET("/tables", h.ListTables)
	v1.POST("/tables", h.CreateTable)
	v1.PATCH("/tables/:id", h.UpdateTable)
	v1.DELETE("/tables/:id", h.DeleteTable)
	// Per-date status of a single table.
	v1.GET("/tables/:id/status", h.TableStatus, cache)

	// Reservations.
	v1.GET("/reservations", h.ListReservations)
	v1.POST("/reservations", h.CreateReservation)
	v1.PATCH("/reservations/:id", h.UpdateReservation)
	v1.DELETE("/reservations/:id", h.DeleteReservation)

	// Floor view: tables annotated with reservations over a period.
	v1.GET("/floor/overview", h.FloorOverview, cache)

	// Statistics: cached because each response recomputes projections
	// over the whole reservation set; every mutation bumps the data
	// version and thereby invalidates these entries.
	v1.GET("/stats/summary", h.StatsSummary, cache)
	v1.GET("/stats/series", h.StatsSeries, cache)
	v1.GET("/stats/heatmap", h.StatsHeatmap, cache)

	// Import, export and demo reset.
	v1.GET("/export/:entity", h.Export)
	v1.POST("/import/:entity", h.Import)
	v1.POST("/reset", h.Reset)
}
