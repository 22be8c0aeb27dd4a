package store

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
)

// This file carries the built-in demo dataset used on first start and
// after a reset: four rooms, twelve placed tables and a spread of
// pseudo-random reservations over the last year and a half.  The
// generator is seeded so consecutive resets produce the same data.

func demoRooms() []model.Room {
	return []model.Room{
		{ID: "room1", Name: "Dining Room 1"},
		{ID: "room2", Name: "Dining Room 2"},
		{ID: "terrace1", Name: "Terrace 1"},
		{ID: "upstairs-a", Name: "Upstairs Room A"},
	}
}

func demoTables() []model.Table {
	pos := func(x, y float64) *model.Position { return &model.Position{X: x, Y: y} }
	zero := 0
	return []model.Table{
		// Dining Room 1
		{ID: "t1", Number: 1, Shape: model.ShapeRound, Seats: 6, RoomID: "room1", Position: pos(80, 100)},
		{ID: "t2", Number: 2, Shape: model.ShapeSquare, Seats: 4, RoomID: "room1", Position: pos(130, 150)},
		// Dining Room 2
		{ID: "t3", Number: 3, Shape: model.ShapeRound, Seats: 4, RoomID: "room2", Position: pos(220, 100)},
		{ID: "t4", Number: 4, Shape: model.ShapeRectangular, Seats: 8, RoomID: "room2", Position: pos(300, 180), Rotation: &zero},
		{ID: "t5", Number: 5, Shape: model.ShapeSquare, Seats: 2, RoomID: "room2", Position: pos(340, 210)},
		{ID: "t6", Number: 6, Shape: model.ShapeSquare, Seats: 2, RoomID: "room2", Position: pos(180, 180)},
		// Terrace 1
		{ID: "t7", Number: 7, Shape: model.ShapeRound, Seats: 5, RoomID: "terrace1", Position: pos(80, 350)},
		{ID: "t8", Number: 8, Shape: model.ShapeSquare, Seats: 4, RoomID: "terrace1", Position: pos(120, 380)},
		{ID: "t9", Number: 9, Shape: model.ShapeRectangular, Seats: 6, RoomID: "terrace1", Position: pos(200, 390), Rotation: &zero},
		{ID: "t10", Number: 10, Shape: model.ShapeSquare, Seats: 2, RoomID: "terrace1", Position: pos(280, 350)},
		{ID: "t11", Number: 11, Shape: model.ShapeRound, Seats: 3, RoomID: "terrace1", Position: pos(320, 370)},
		{ID: "t12", Number: 12, Shape: model.ShapeSquare, Seats: 2, RoomID: "terrace1", Position: pos(360, 390)},
	}
}

// demoReservations spreads n bookings over the window from the first of
// January of last year through one month from now, picking tables,
// times and customer names from small fixed pools.
func demoReservations(tables []model.Table) []model.Reservation {
	if len(tables) == 0 {
		return nil
	}
	names := []string{
		"Mr. Dupond", "Patrick", "Julie", "Fatima", "Guillaume",
		"Alice", "Sophie", "Karim", "Laure", "Xavier",
	}
	hours := []string{
		"08:00", "09:30", "12:00", "12:30", "13:00",
		"18:30", "19:30", "20:00", "21:00", "22:15",
	}
	// Anchor on the calendar day so consecutive resets generate the
	// exact same dataset.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, today.Location())
	end := today.AddDate(0, 1, 0)
	span := end.Unix() - start.Unix()

	rng := rand.New(rand.NewSource(42))
	out := make([]model.Reservation, 0, 100)
	for i := 0; i < 100; i++ {
		day := time.Unix(start.Unix()+rng.Int63n(span), 0).In(now.Location())
		hhmm := hours[rng.Intn(len(hours))]
		at, _ := time.Parse(model.TimeLayout, hhmm)
		date := time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())

		table := tables[rng.Intn(len(tables))]
		guests := 2 + rng.Intn(maxInt(1, table.Seats-1))
		name := fmt.Sprintf("%s #%d", names[i%len(names)], i+1)

		out = append(out, model.Reservation{
			ID:           strconv.Itoa(1000 + i),
			TableID:      table.ID,
			Date:         date,
			Time:         hhmm,
			PartySize:    guests,
			CustomerName: &name,
		})
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
