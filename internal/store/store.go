// Package store holds the in-memory collections of rooms, tables and
// reservations together with their CRUD operations.  It replaces the
// SQL repository layer of a classic service: state lives in process
// memory and every mutation is followed by a best-effort JSON snapshot
// of the three collections into Redis under three fixed keys.  A
// failure to persist is logged and never surfaces to the caller.
//
// The store is constructed explicitly and passed to its consumers;
// there are no package-level singletons.  Update and delete operations
// on unknown ids are silent no-ops by contract.
package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-floor-management/internal/model"
)

// Fixed keys of the persisted snapshots and of the cache version
// counter inside the flat key-value store.
const (
	RoomsKey        = "floor:rooms"
	TablesKey       = "floor:tables"
	ReservationsKey = "floor:reservations"
	VersionKey      = "floor:version"
)

// persistTimeout bounds each snapshot write.
const persistTimeout = 2 * time.Second

// Store is the stateful heart of the application.  All access goes
// through its methods; the mutex makes each operation atomic with
// respect to concurrent HTTP handlers.
type Store struct {
	mu           sync.RWMutex
	rooms        []model.Room
	tables       []model.Table
	reservations []model.Reservation
	rdb          *redis.Client // nil disables persistence
}

// New builds a Store backed by the given Redis client.  Each collection
// is loaded from its snapshot key; a missing or unparseable snapshot
// falls back to the built-in demo dataset for that collection, so a
// damaged blob is never fatal.  A nil client yields a memory-only store
// seeded with the demo dataset.
func New(rdb *redis.Client) *Store {
	s := &Store{rdb: rdb}
	s.rooms = loadSlice(rdb, RoomsKey, demoRooms())
	demoT := demoTables()
	s.tables = loadSlice(rdb, TablesKey, demoT)
	s.reservations = loadSlice(rdb, ReservationsKey, demoReservations(demoT))
	for i := range s.reservations {
		normalizeReservation(&s.reservations[i])
	}
	return s
}

// loadSlice reads one snapshot key and unmarshals it, returning the
// fallback when the key is absent or the payload does not parse.
func loadSlice[T any](rdb *redis.Client, key string, fallback []T) []T {
	if rdb == nil {
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("store: load %s failed: %v", key, err)
		}
		return fallback
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("store: snapshot %s unparseable, using defaults: %v", key, err)
		return fallback
	}
	return out
}

// newID returns a fresh practically-unique identifier.
func newID() string { return uuid.NewString() }

// normalizeReservation re-derives the display time from the timestamp
// whenever the "HH:MM" string is empty or disagrees with it.  The
// timestamp is the authoritative representation.
func normalizeReservation(r *model.Reservation) {
	want := r.Date.Format(model.TimeLayout)
	if r.Time != want {
		r.Time = want
	}
}

// Rooms returns a copy of the room collection in insertion order.
func (s *Store) Rooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Tables returns a copy of the table collection in insertion order.
func (s *Store) Tables() []model.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

// Reservations returns a copy of the reservation collection in
// insertion order.
func (s *Store) Reservations() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// AddRoom appends a new room with a generated id.
func (s *Store) AddRoom(name string) model.Room {
	s.mu.Lock()
	room := model.Room{ID: newID(), Name: name}
	s.rooms = append(s.rooms, room)
	s.mu.Unlock()
	s.persist()
	return room
}

// DeleteRoom removes the room and cascades into table deletion, which
// in turn removes the reservations of each table.  Routing the cascade
// through the same cleanup as DeleteTable guarantees that deleting a
// room can never strand a reservation pointing at a deleted table.
// Unknown ids are a no-op.
func (s *Store) DeleteRoom(id string) {
	s.mu.Lock()
	found := false
	rooms := s.rooms[:0]
	for _, r := range s.rooms {
		if r.ID == id {
			found = true
			continue
		}
		rooms = append(rooms, r)
	}
	s.rooms = rooms
	if found {
		for _, t := range append([]model.Table(nil), s.tables...) {
			if t.RoomID == id {
				s.deleteTableLocked(t.ID)
			}
		}
	}
	s.mu.Unlock()
	if found {
		s.persist()
	}
}

// AddTable appends a new table with a generated id.  The caller
// provides every other field; any id on the argument is ignored.
func (s *Store) AddTable(t model.Table) model.Table {
	s.mu.Lock()
	t.ID = newID()
	s.tables = append(s.tables, t)
	s.mu.Unlock()
	s.persist()
	return t
}

// NextTableNumber returns the lowest positive table number not yet used
// inside the given room.  The creation flow uses it when the operator
// leaves the number blank.
func (s *Store) NextTableNumber(roomID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	used := make(map[int]bool)
	for _, t := range s.tables {
		if t.RoomID == roomID {
			used[t.Number] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return n
}

// UpdateTable merges the non-nil patch fields into the table with the
// given id.  It returns the updated table and true, or a zero table and
// false when the id is unknown (a silent no-op, never an error).
func (s *Store) UpdateTable(id string, patch model.TablePatch) (model.Table, bool) {
	s.mu.Lock()
	var updated model.Table
	found := false
	for i := range s.tables {
		if s.tables[i].ID == id {
			patch.Apply(&s.tables[i])
			updated = s.tables[i]
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.persist()
	}
	return updated, found
}

// DeleteTable removes the table and every reservation referencing it.
// Unknown ids are a no-op.
func (s *Store) DeleteTable(id string) {
	s.mu.Lock()
	found := s.deleteTableLocked(id)
	s.mu.Unlock()
	if found {
		s.persist()
	}
}

// deleteTableLocked performs the table and reservation removal under an
// already held write lock.  DeleteRoom reuses it for its cascade.
func (s *Store) deleteTableLocked(id string) bool {
	found := false
	tables := s.tables[:0]
	for _, t := range s.tables {
		if t.ID == id {
			found = true
			continue
		}
		tables = append(tables, t)
	}
	s.tables = tables
	if !found {
		return false
	}
	reservations := s.reservations[:0]
	for _, r := range s.reservations {
		if r.TableID == id {
			continue
		}
		reservations = append(reservations, r)
	}
	s.reservations = reservations
	return true
}

// AddReservation appends a new reservation with a generated id.  The
// time string is normalized from the timestamp.  No foreign-key check
// is performed; referential integrity is maintained by the delete
// cascades, and double-booking is deliberately permitted.
func (s *Store) AddReservation(r model.Reservation) model.Reservation {
	s.mu.Lock()
	r.ID = newID()
	normalizeReservation(&r)
	s.reservations = append(s.reservations, r)
	s.mu.Unlock()
	s.persist()
	return r
}

// UpdateReservation merges the non-nil patch fields into the
// reservation with the given id.  When the patch moves the timestamp
// the time string follows it.  Unknown ids return false without error.
func (s *Store) UpdateReservation(id string, patch model.ReservationPatch) (model.Reservation, bool) {
	s.mu.Lock()
	var updated model.Reservation
	found := false
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			patch.Apply(&s.reservations[i])
			if patch.Date != nil {
				normalizeReservation(&s.reservations[i])
			}
			updated = s.reservations[i]
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.persist()
	}
	return updated, found
}

// DeleteReservation removes the reservation by id; unknown ids are a
// no-op.
func (s *Store) DeleteReservation(id string) {
	s.mu.Lock()
	found := false
	reservations := s.reservations[:0]
	for _, r := range s.reservations {
		if r.ID == id {
			found = true
			continue
		}
		reservations = append(reservations, r)
	}
	s.reservations = reservations
	s.mu.Unlock()
	if found {
		s.persist()
	}
}

// ImportRooms replaces the entire room collection.
func (s *Store) ImportRooms(rooms []model.Room) {
	s.mu.Lock()
	s.rooms = append([]model.Room(nil), rooms...)
	s.mu.Unlock()
	s.persist()
}

// ImportTables replaces the entire table collection.
func (s *Store) ImportTables(tables []model.Table) {
	s.mu.Lock()
	s.tables = append([]model.Table(nil), tables...)
	s.mu.Unlock()
	s.persist()
}

// ImportReservations replaces the entire reservation collection.
// Incoming records have already had their dates coerced from their
// serialized form by the codec; the store still normalizes the time
// string so downstream comparisons stay well-defined.
func (s *Store) ImportReservations(reservations []model.Reservation) {
	s.mu.Lock()
	s.reservations = append([]model.Reservation(nil), reservations...)
	for i := range s.reservations {
		normalizeReservation(&s.reservations[i])
	}
	s.mu.Unlock()
	s.persist()
}

// ResetAll replaces all three collections with the demo dataset and
// clears the persisted snapshots.
func (s *Store) ResetAll() {
	s.mu.Lock()
	s.rooms = demoRooms()
	s.tables = demoTables()
	s.reservations = demoReservations(s.tables)
	s.mu.Unlock()
	if s.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.rdb.Del(ctx, RoomsKey, TablesKey, ReservationsKey).Err(); err != nil {
			log.Printf("store: clear snapshots failed: %v", err)
		}
	}
	s.persist()
}

// persist writes the three collections to their snapshot keys and bumps
// the version counter consumed by the response cache.  Persistence is a
// fire-and-forget side effect of mutation: errors are logged, never
// returned.
func (s *Store) persist() {
	if s.rdb == nil {
		return
	}
	// Marshal under the read lock so a concurrent mutation cannot tear
	// the snapshot, then write outside of it.
	s.mu.RLock()
	payload := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		RoomsKey:        s.rooms,
		TablesKey:       s.tables,
		ReservationsKey: s.reservations,
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			log.Printf("store: marshal %s failed: %v", key, err)
			continue
		}
		payload[key] = raw
	}
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	for key, raw := range payload {
		if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
			log.Printf("store: persist %s failed: %v", key, err)
		}
	}
	if err := s.rdb.Incr(ctx, VersionKey).Err(); err != nil {
		log.Printf("store: bump version failed: %v", err)
	}
}
