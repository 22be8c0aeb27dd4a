package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
)

// CSV files are UTF-8 with a byte order mark, RFC 4180 quoted, CRLF
// terminated, with a fixed column order per entity and dates written as
// DD/MM/YYYY.  Table positions flatten into pos_x/pos_y columns, and
// absent optional fields round-trip as empty cells, never as zeroes.

// DateLayout is the DD/MM/YYYY date format of the CSV variant.
const DateLayout = "02/01/2006"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	roomHeader        = []string{"id", "name"}
	tableHeader       = []string{"id", "number", "shape", "seats", "room_id", "color", "pos_x", "pos_y", "rotation"}
	reservationHeader = []string{"id", "table_id", "date", "time", "party_size", "customer_name"}
)

func newWriter(buf *bytes.Buffer) *csv.Writer {
	buf.Write(utf8BOM)
	w := csv.NewWriter(buf)
	w.UseCRLF = true
	return w
}

// readRows strips the BOM, parses the whole file and checks the header
// row.  The remaining records are returned in file order.
func readRows(data []byte, header []string) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(header)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	for i, name := range header {
		if rows[0][i] != name {
			return nil, fmt.Errorf("unexpected header %q, want %q", rows[0][i], name)
		}
	}
	return rows[1:], nil
}

// MarshalRoomsCSV renders the room collection.
func MarshalRoomsCSV(rooms []model.Room) ([]byte, error) {
	var buf bytes.Buffer
	w := newWriter(&buf)
	if err := w.Write(roomHeader); err != nil {
		return nil, err
	}
	for _, r := range rooms {
		if err := w.Write([]string{r.ID, r.Name}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ParseRoomsCSV rebuilds the room collection from a CSV file.
func ParseRoomsCSV(data []byte) ([]model.Room, error) {
	rows, err := readRows(data, roomHeader)
	if err != nil {
		return nil, fmt.Errorf("parse rooms csv: %w", err)
	}
	out := make([]model.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Room{ID: row[0], Name: row[1]})
	}
	return out, nil
}

// MarshalTablesCSV renders the table collection.  Optional fields write
// as empty cells; positions flatten into two coordinate columns.
func MarshalTablesCSV(tables []model.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := newWriter(&buf)
	if err := w.Write(tableHeader); err != nil {
		return nil, err
	}
	for _, t := range tables {
		var color, posX, posY, rotation string
		if t.Color != nil {
			color = *t.Color
		}
		if t.Position != nil {
			posX = strconv.FormatFloat(t.Position.X, 'f', -1, 64)
			posY = strconv.FormatFloat(t.Position.Y, 'f', -1, 64)
		}
		if t.Rotation != nil {
			rotation = strconv.Itoa(*t.Rotation)
		}
		row := []string{
			t.ID,
			strconv.Itoa(t.Number),
			string(t.Shape),
			strconv.Itoa(t.Seats),
			t.RoomID,
			color, posX, posY, rotation,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ParseTablesCSV rebuilds the table collection.  An empty rotation cell
// yields a table with Rotation == nil, not zero; a position needs both
// coordinate cells.
func ParseTablesCSV(data []byte) ([]model.Table, error) {
	rows, err := readRows(data, tableHeader)
	if err != nil {
		return nil, fmt.Errorf("parse tables csv: %w", err)
	}
	out := make([]model.Table, 0, len(rows))
	for i, row := range rows {
		number, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("parse tables csv: row %d: number: %w", i+1, err)
		}
		shape := model.TableShape(row[2])
		if !shape.Valid() {
			return nil, fmt.Errorf("parse tables csv: row %d: unknown shape %q", i+1, row[2])
		}
		seats, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("parse tables csv: row %d: seats: %w", i+1, err)
		}
		t := model.Table{ID: row[0], Number: number, Shape: shape, Seats: seats, RoomID: row[4]}
		if row[5] != "" {
			color := row[5]
			t.Color = &color
		}
		if row[6] != "" && row[7] != "" {
			x, errX := strconv.ParseFloat(row[6], 64)
			y, errY := strconv.ParseFloat(row[7], 64)
			if errX != nil || errY != nil {
				return nil, fmt.Errorf("parse tables csv: row %d: bad position %q,%q", i+1, row[6], row[7])
			}
			t.Position = &model.Position{X: x, Y: y}
		}
		if row[8] != "" {
			rot, err := strconv.Atoi(row[8])
			if err != nil {
				return nil, fmt.Errorf("parse tables csv: row %d: rotation: %w", i+1, err)
			}
			t.Rotation = &rot
		}
		out = append(out, t)
	}
	return out, nil
}

// MarshalReservationsCSV renders the reservation collection with the
// calendar day and the time of day in separate columns.
func MarshalReservationsCSV(reservations []model.Reservation) ([]byte, error) {
	var buf bytes.Buffer
	w := newWriter(&buf)
	if err := w.Write(reservationHeader); err != nil {
		return nil, err
	}
	for _, r := range reservations {
		var name string
		if r.CustomerName != nil {
			name = *r.CustomerName
		}
		row := []string{
			r.ID,
			r.TableID,
			r.Date.Format(DateLayout),
			r.Date.Format(model.TimeLayout),
			strconv.Itoa(r.PartySize),
			name,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ParseReservationsCSV rebuilds the reservation collection, recombining
// the DD/MM/YYYY date column with the HH:MM time column into one
// structured timestamp.  An empty time cell books the day at midnight.
func ParseReservationsCSV(data []byte) ([]model.Reservation, error) {
	rows, err := readRows(data, reservationHeader)
	if err != nil {
		return nil, fmt.Errorf("parse reservations csv: %w", err)
	}
	out := make([]model.Reservation, 0, len(rows))
	for i, row := range rows {
		day, err := time.ParseInLocation(DateLayout, row[2], time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse reservations csv: row %d: date: %w", i+1, err)
		}
		hhmm := row[3]
		if hhmm == "" {
			hhmm = "00:00"
		}
		at, err := time.Parse(model.TimeLayout, hhmm)
		if err != nil {
			return nil, fmt.Errorf("parse reservations csv: row %d: time: %w", i+1, err)
		}
		party, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("parse reservations csv: row %d: party size: %w", i+1, err)
		}
		r := model.Reservation{
			ID:        row[0],
			TableID:   row[1],
			Date:      time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, time.Local),
			Time:      hhmm,
			PartySize: party,
		}
		if row[5] != "" {
			name := row[5]
			r.CustomerName = &name
		}
		out = append(out, r)
	}
	return out, nil
}
