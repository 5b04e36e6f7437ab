package mapstate

import (
	"github.com/deanfra/erebos-level-generator/pkg/roomtemplate"
	"github.com/deanfra/erebos-level-generator/pkg/tilegrid"
)

// DoorConnection records that a door of a placed room has been wired to
// a neighbouring node in the placement graph.
type DoorConnection struct {
	Dir           tilegrid.Direction
	Pos           roomtemplate.XY
	NeighbourNode int
	// Outgoing is true when this room is the edge's source (A->B),
	// false when it is the target.
	Outgoing bool
}

// PlacedRoom is a room template instantiated at a fixed position on the
// map. Tiles is a per-instance copy of Template.Tiles: committing a
// door connection rewrites one cell of it to DoorConnected without
// touching the shared template.
type PlacedRoom struct {
	NodeID   int
	Template *roomtemplate.RoomTemplate
	Origin   roomtemplate.XY
	Tiles    []tilegrid.Tile
	Doors    []DoorConnection
}
