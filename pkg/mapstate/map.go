package mapstate

import (
	"fmt"

	"github.com/deanfra/erebos-level-generator/pkg/roomtemplate"
	"github.com/deanfra/erebos-level-generator/pkg/tilegrid"
)

// Map is the flat tile grid a crawl writes into, plus the rooms
// committed so far, keyed by the placement graph's node ID.
type Map struct {
	W, H  int
	Tiles []tilegrid.Tile
	Rooms map[int]*PlacedRoom
}

// NewMap allocates a w x h grid of Empty tiles.
func NewMap(w, h int) *Map {
	return &Map{
		W:     w,
		H:     h,
		Tiles: make([]tilegrid.Tile, w*h),
		Rooms: make(map[int]*PlacedRoom),
	}
}

// CanPlace reports whether tpl can be stamped onto the map with its
// top-left corner at origin, entering through doorDir. A placement is
// rejected if any non-empty template tile falls outside the grid, lands
// on an already-occupied cell, or crosses the map boundary in a way
// that isn't tolerated: no in-range cell of the room's W x H box may
// lie on the map edge that doorDir opens onto, and no interior floor
// tile may touch any map edge at all. Walls and doors may touch the
// other edges.
func (m *Map) CanPlace(origin roomtemplate.XY, tpl *roomtemplate.RoomTemplate, doorDir tilegrid.Direction) bool {
	for ly := 0; ly < tpl.H; ly++ {
		for lx := 0; lx < tpl.W; lx++ {
			x, y := origin.X+lx, origin.Y+ly
			idx := tilegrid.Idx(x, y, m.W)
			tile := tpl.Tiles[ly*tpl.W+lx]

			inRange := idx >= 0 && tilegrid.InBounds(idx, len(m.Tiles))
			if !inRange && tile == tilegrid.Empty {
				continue
			}
			overlaps := inRange && tile != tilegrid.Empty && m.Tiles[idx] != tilegrid.Empty
			crosses := inRange && crossesSideOfMap(idx, tile, doorDir, m.W, len(m.Tiles))

			if !inRange || overlaps || crosses {
				return false
			}
		}
	}
	return true
}

// crossesSideOfMap reports whether placing tile at idx would cross the
// map boundary in a way that matters: either idx lies on the edge that
// doorDir opens onto (whatever the tile is), or the tile is interior
// floor sitting on any edge.
func crossesSideOfMap(idx int, tile tilegrid.Tile, doorDir tilegrid.Direction, w, length int) bool {
	var sides []tilegrid.Direction
	if tilegrid.CrossesEast(idx, w) {
		sides = append(sides, tilegrid.East)
	} else if tilegrid.CrossesWest(idx, w) {
		sides = append(sides, tilegrid.West)
	}
	if tilegrid.CrossesNorth(idx, w) {
		sides = append(sides, tilegrid.North)
	}
	if tilegrid.CrossesSouth(idx, length, w) {
		sides = append(sides, tilegrid.South)
	}
	if len(sides) == 0 {
		return false
	}
	for _, s := range sides {
		if s == doorDir {
			return true
		}
	}
	return tile == tilegrid.Floor
}

// Commit stamps tpl's tiles onto the map at origin and records it as
// the room for nodeID. If nodeID already has a room (the crawler
// re-commits both rooms of an edge after wiring their doors), the existing
// instance's Tiles are repainted as-is so earlier ConnectDoor markers
// survive; overlap conflicts are only stamped (Conflict) the first time
// a room lands on the map, not on updates.
func (m *Map) Commit(nodeID int, origin roomtemplate.XY, tpl *roomtemplate.RoomTemplate) *PlacedRoom {
	room, exists := m.Rooms[nodeID]
	isNew := !exists
	if isNew {
		room = &PlacedRoom{
			NodeID:   nodeID,
			Template: tpl,
			Origin:   origin,
			Tiles:    append([]tilegrid.Tile(nil), tpl.Tiles...),
		}
		m.Rooms[nodeID] = room
	}

	for ly := 0; ly < tpl.H; ly++ {
		for lx := 0; lx < tpl.W; lx++ {
			x, y := origin.X+lx, origin.Y+ly
			idx := tilegrid.Idx(x, y, m.W)
			if idx < 0 || !tilegrid.InBounds(idx, len(m.Tiles)) {
				continue
			}
			tile := room.Tiles[ly*tpl.W+lx]
			if tile == tilegrid.Empty {
				continue
			}
			if isNew && m.Tiles[idx] == tilegrid.Floor {
				m.Tiles[idx] = tilegrid.Conflict
			} else {
				m.Tiles[idx] = tile
			}
		}
	}
	return room
}

// ConnectDoor marks the door at local position pos (1-based, as
// recorded on the template) as connected to neighbourNode, and rewrites
// that cell of the room's own tile copy to DoorConnected. The new
// marker only reaches the map's shared tile buffer on the room's next
// Commit.
func (m *Map) ConnectDoor(nodeID int, dir tilegrid.Direction, pos roomtemplate.XY, neighbourNode int, outgoing bool) error {
	room, ok := m.Rooms[nodeID]
	if !ok {
		return fmt.Errorf("mapstate: ConnectDoor: node %d has no placed room", nodeID)
	}
	localIdx := (pos.Y-1)*room.Template.W + (pos.X - 1)
	if localIdx < 0 || localIdx >= len(room.Tiles) {
		return fmt.Errorf("mapstate: ConnectDoor: door position %+v out of range for template %q", pos, room.Template.Name)
	}
	room.Tiles[localIdx] = tilegrid.DoorConnected
	room.Doors = append(room.Doors, DoorConnection{
		Dir:           dir,
		Pos:           pos,
		NeighbourNode: neighbourNode,
		Outgoing:      outgoing,
	})
	return nil
}
