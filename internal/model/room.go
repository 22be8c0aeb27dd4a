package model

// Room represents a named dining area of the restaurant, such as a
// main hall or a terrace.  A room contains zero or more tables which
// reference it by id.  Deleting a room removes every table assigned to
// it together with the reservations of those tables.
//
// Fields:
//  ID   – unique identifier of the room.
//  Name – human-friendly name shown to the operator.
type Room struct {
	ID   string `json:"id"`   // unique room identifier
	Name string `json:"name"` // display name of the room
}
