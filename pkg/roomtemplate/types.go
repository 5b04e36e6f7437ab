package roomtemplate

import "github.com/deanfra/erebos-level-generator/pkg/tilegrid"

// XY is a door or offset coordinate. Door positions are 1-based (x runs
// 1..W, y runs 1..H, matching the scan order the tiles were authored
// in); offsets are plain signed deltas.
type XY struct {
	X, Y int
}

// RoomType classifies the role a room plays in the placement graph.
type RoomType int

const (
	Normal RoomType = iota
	Start
	Boss
)

func (rt RoomType) String() string {
	switch rt {
	case Start:
		return "start"
	case Boss:
		return "boss"
	default:
		return "normal"
	}
}

// Combination records one way a template B can be aligned door-to-door
// against a template A: B's origin is obtained by subtracting Offset
// from A's live origin. Offset already has the one-cell outward nudge
// through the connecting door baked in, so the crawler applies it with
// no further adjustment.
type Combination struct {
	Offset   XY
	DoorADir tilegrid.Direction
	DoorAXY  XY
	DoorBDir tilegrid.Direction
	DoorBXY  XY
}

// RoomTemplate is one fixed room shape in the catalogue: a rectangular
// tile buffer plus the doors it exposes on each side and, once a
// Library has finished precomputing, every way it can be docked against
// every other template (including itself).
type RoomTemplate struct {
	ID       int
	Name     string
	W, H     int
	Tiles    []tilegrid.Tile
	MinDoors int
	RoomType RoomType

	// Doors maps each direction to the door positions found while
	// scanning Tiles; most templates have several doors per side.
	Doors map[tilegrid.Direction][]XY

	// Combinations maps another template's ID to every way that
	// template can be docked against this one. Populated by
	// computeCombinations (run from NewLibrary); every template ID has
	// an entry, nil for pairs with no valid dock.
	Combinations map[int][]Combination
}

// DoorCount returns the total number of candidate doors on the
// template, across all four directions.
func (t *RoomTemplate) DoorCount() int {
	n := 0
	for _, xys := range t.Doors {
		n += len(xys)
	}
	return n
}

// tileAt returns the tile at the 0-based local coordinate (x,y).
func (t *RoomTemplate) tileAt(x, y int) tilegrid.Tile {
	return t.Tiles[y*t.W+x]
}
