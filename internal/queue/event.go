// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// ReservationEvent is published after a reservation mutation succeeds.
// It carries enough denormalized context (table number, room name) for
// downstream consumers to log or notify without querying the store.
type ReservationEvent struct {
	Action        string `json:"action"` // "created", "updated" or "deleted"
	ReservationID string `json:"reservation_id"`
	TableID       string `json:"table_id"`
	TableNumber   int    `json:"table_number"`
	RoomName      string `json:"room_name"`
	Date          string `json:"date"` // calendar day, YYYY-MM-DD
	Time          string `json:"time"` // time of day, HH:MM
	PartySize     int    `json:"party_size"`
	CustomerName  string `json:"customer_name,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}
