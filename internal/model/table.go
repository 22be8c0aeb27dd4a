package model

// TableShape enumerates the supported table shapes.  The set is closed:
// consumers switch exhaustively over these values so that adding a new
// shape is a compile-time visible change.
type TableShape string

const (
	ShapeRound       TableShape = "round"       // circular table
	ShapeSquare      TableShape = "square"      // square table
	ShapeRectangular TableShape = "rectangular" // rectangular table, may carry a rotation
)

// Valid reports whether s is one of the known shapes.
func (s TableShape) Valid() bool {
	switch s {
	case ShapeRound, ShapeSquare, ShapeRectangular:
		return true
	}
	return false
}

// Position is a table's placement on the floor plan in plan coordinates.
// A table without a position is "unplaced" and lives in the staging list
// of the floor editor rather than on the plan itself.
type Position struct {
	X float64 `json:"x"` // horizontal plan coordinate
	Y float64 `json:"y"` // vertical plan coordinate
}

// Table describes a seating unit inside a room.
//
// Fields:
//  ID       – unique identifier of the table.
//  Number   – display label; the creation flow assigns the lowest unused
//             number within the room, but numbers are not required to be
//             globally unique.
//  Shape    – one of the TableShape constants.
//  Seats    – seating capacity, always positive.
//  RoomID   – id of the room containing this table.
//  Color    – optional display colour (nil when unset).
//  Position – optional placement on the floor plan (nil when unplaced).
//  Rotation – optional rotation in degrees; only meaningful for
//             rectangular tables.  nil means "never set", which is
//             distinct from an explicit 0.
type Table struct {
	ID       string     `json:"id"`
	Number   int        `json:"number"`
	Shape    TableShape `json:"shape"`
	Seats    int        `json:"seats"`
	RoomID   string     `json:"room_id"`
	Color    *string    `json:"color,omitempty"`
	Position *Position  `json:"position,omitempty"`
	Rotation *int       `json:"rotation,omitempty"`
}

// TablePatch is a partial update for a table.  Every field is optional;
// only non-nil fields are merged into the stored table.  This replaces
// the duck-typed object spread of loosely typed codebases with an
// explicit, typed field list.
type TablePatch struct {
	Number   *int        `json:"number,omitempty"`
	Shape    *TableShape `json:"shape,omitempty"`
	Seats    *int        `json:"seats,omitempty"`
	RoomID   *string     `json:"room_id,omitempty"`
	Color    *string     `json:"color,omitempty"`
	Position *Position   `json:"position,omitempty"`
	Rotation *int        `json:"rotation,omitempty"`
}

// Apply merges the non-nil patch fields into t.
func (p TablePatch) Apply(t *Table) {
	if p.Number != nil {
		t.Number = *p.Number
	}
	if p.Shape != nil {
		t.Shape = *p.Shape
	}
	if p.Seats != nil {
		t.Seats = *p.Seats
	}
	if p.RoomID != nil {
		t.RoomID = *p.RoomID
	}
	if p.Color != nil {
		t.Color = p.Color
	}
	if p.Position != nil {
		t.Position = p.Position
	}
	if p.Rotation != nil {
		t.Rotation = p.Rotation
	}
}
