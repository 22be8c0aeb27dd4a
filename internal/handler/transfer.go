package handler // import/export and reset handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-floor-management/internal/export"
)

// Export handles GET /v1/export/:entity?format=json|csv for the three
// collections.  JSON is the default.  The response carries a download
// filename so browsers save it directly.
func (h *FloorHandler) Export(c echo.Context) error {
	entity := c.Param("entity")
	format := c.QueryParam("format")
	if format == "" {
		format = "json"
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		switch entity {
		case "rooms":
			data, err = export.MarshalJSON(h.Store.Rooms())
		case "tables":
			data, err = export.MarshalJSON(h.Store.Tables())
		case "reservations":
			data, err = export.MarshalJSON(h.Store.Reservations())
		default:
			return c.JSON(http.StatusNotFound, errJSON("unknown entity"))
		}
	case "csv":
		switch entity {
		case "rooms":
			data, err = export.MarshalRoomsCSV(h.Store.Rooms())
		case "tables":
			data, err = export.MarshalTablesCSV(h.Store.Tables())
		case "reservations":
			data, err = export.MarshalReservationsCSV(h.Store.Reservations())
		default:
			return c.JSON(http.StatusNotFound, errJSON("unknown entity"))
		}
	default:
		return c.JSON(http.StatusBadRequest, errJSON("unknown format"))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errJSON("export failed"))
	}

	contentType := "application/json"
	if format == "csv" {
		contentType = "text/csv; charset=utf-8"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%s.%s`, entity, format))
	return c.Blob(http.StatusOK, contentType, data)
}

// Import handles POST /v1/import/:entity.  The body is a JSON array or
// a CSV file, selected by the Content-Type header (anything containing
// "csv" is treated as CSV).  A malformed body is rejected with 400 and
// leaves the collection untouched; a parsed one replaces it entirely.
func (h *FloorHandler) Import(c echo.Context) error {
	entity := c.Param("entity")
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("could not read body"))
	}
	isCSV := strings.Contains(c.Request().Header.Get(echo.HeaderContentType), "csv")

	count := 0
	switch entity {
	case "rooms":
		if isCSV {
			parsed, err := export.ParseRoomsCSV(body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
			}
			h.Store.ImportRooms(parsed)
			count = len(parsed)
		} else {
			parsed, err := export.ParseRoomsJSON(body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
			}
			h.Store.ImportRooms(parsed)
			count = len(parsed)
		}
	case "tables":
		if isCSV {
			parsed, err := export.ParseTablesCSV(body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
			}
			h.Store.ImportTables(parsed)
			count = len(parsed)
		} else {
			parsed, err := export.ParseTablesJSON(body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
			}
			h.Store.ImportTables(parsed)
			count = len(parsed)
		}
	case "reservations":
		if isCSV {
			parsed, err := export.ParseReservationsCSV(body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
			}
			h.Store.ImportReservations(parsed)
			count = len(parsed)
		} else {
			parsed, err := export.ParseReservationsJSON(body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errJSON(err.Error()))
			}
			h.Store.ImportReservations(parsed)
			count = len(parsed)
		}
	default:
		return c.JSON(http.StatusNotFound, errJSON("unknown entity"))
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": count})
}

// Reset handles POST /v1/reset: the demo dataset replaces all three
// collections and the persisted snapshots are cleared.
func (h *FloorHandler) Reset(c echo.Context) error {
	h.Store.ResetAll()
	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}
