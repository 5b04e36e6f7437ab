package roomtemplate

import "github.com/deanfra/erebos-level-generator/pkg/tilegrid"

// Template ID assignment is fixed by insertion order: whichever order
// newTemplates returns them in is the order the library assigns 0..15,
// and that order is part of this package's observable behaviour (tests
// address templates by name, but NewLibrary().Templates() iterates in
// this order).
func newTemplates() []*RoomTemplate {
	return []*RoomTemplate{
		smallSquare(),
		rectangle(),
		bigSquare(),
		bentL(),
		bentR(),
		cross(),
		jar(),
		longShape(),
		tall(),
		wide(),
		startRoom(),
		bossRoom(),
		lTopLeft(),
		lTopRight(),
		lBottomLeft(),
		lBottomRight(),
	}
}

func build(name string, w int, raw []int, minDoors int, rt RoomType) *RoomTemplate {
	tiles := make([]tilegrid.Tile, len(raw))
	for i, v := range raw {
		tiles[i] = tilegrid.Tile(v)
	}
	t := &RoomTemplate{
		Name:     name,
		W:        w,
		H:        len(raw) / w,
		Tiles:    tiles,
		MinDoors: minDoors,
		RoomType: rt,
	}
	t.Doors = scanDoors(t.Tiles, t.W)
	return t
}

// scanDoors walks tiles left-to-right, top-to-bottom assigning each
// cell a 1-based (x,y) position, and records every door tile's
// position under its direction.
func scanDoors(tiles []tilegrid.Tile, w int) map[tilegrid.Direction][]XY {
	doors := make(map[tilegrid.Direction][]XY)
	x, y := 1, 1
	for _, t := range tiles {
		switch t {
		case tilegrid.DoorNorth, tilegrid.DoorEast, tilegrid.DoorSouth, tilegrid.DoorWest:
			d := tilegrid.Direction(t)
			doors[d] = append(doors[d], XY{X: x, Y: y})
		}
		if x == w {
			x = 1
			y++
		} else {
			x++
		}
	}
	return doors
}

func smallSquare() *RoomTemplate {
	return build("small_square", 5, []int{
		1, 2, 2, 2, 1,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		1, 4, 4, 4, 1,
	}, 0, Normal)
}

func rectangle() *RoomTemplate {
	return build("rectangle", 6, []int{
		1, 2, 2, 2, 2, 1,
		5, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 3,
		1, 4, 4, 4, 4, 1,
	}, 0, Normal)
}

func bigSquare() *RoomTemplate {
	return build("big_square", 5, []int{
		1, 2, 2, 2, 1,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		1, 4, 4, 4, 1,
	}, 0, Normal)
}

func bentL() *RoomTemplate {
	return build("bent_l", 6, []int{
		1, 2, 2, 2, 1, 0,
		5, 8, 8, 8, 3, 0,
		5, 8, 8, 8, 3, 0,
		1, 1, 8, 8, 1, 1,
		0, 5, 8, 8, 8, 3,
		0, 5, 8, 8, 8, 3,
		0, 1, 4, 4, 4, 1,
	}, 0, Normal)
}

func bentR() *RoomTemplate {
	return build("bent_r", 6, []int{
		0, 1, 2, 2, 2, 1,
		0, 5, 8, 8, 8, 3,
		0, 5, 8, 8, 8, 3,
		1, 1, 8, 8, 1, 1,
		5, 8, 8, 8, 3, 0,
		5, 8, 8, 8, 3, 0,
		1, 4, 4, 4, 1, 0,
	}, 0, Normal)
}

func lTopLeft() *RoomTemplate {
	return build("l_top_left", 7, []int{
		1, 2, 2, 2, 2, 2, 1,
		5, 8, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 8, 3,
		1, 4, 4, 1, 8, 8, 3,
		0, 0, 0, 5, 8, 8, 3,
		0, 0, 0, 5, 8, 8, 3,
		0, 0, 0, 1, 4, 4, 1,
	}, 0, Normal)
}

func lTopRight() *RoomTemplate {
	return build("l_top_right", 7, []int{
		1, 2, 2, 2, 2, 2, 1,
		5, 8, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 8, 3,
		5, 8, 8, 1, 4, 4, 1,
		5, 8, 8, 3, 0, 0, 0,
		5, 8, 8, 3, 0, 0, 0,
		1, 4, 4, 1, 0, 0, 0,
	}, 0, Normal)
}

func lBottomRight() *RoomTemplate {
	return build("l_bottom_right", 7, []int{
		1, 2, 2, 1, 0, 0, 0,
		5, 8, 8, 3, 0, 0, 0,
		5, 8, 8, 3, 0, 0, 0,
		5, 8, 8, 1, 2, 2, 1,
		5, 8, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 8, 3,
		1, 4, 4, 4, 4, 4, 1,
	}, 0, Normal)
}

func lBottomLeft() *RoomTemplate {
	return build("l_bottom_left", 7, []int{
		0, 0, 0, 1, 2, 2, 1,
		0, 0, 0, 5, 8, 8, 3,
		0, 0, 0, 5, 8, 8, 3,
		1, 2, 2, 1, 8, 8, 3,
		5, 8, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 8, 3,
		1, 4, 4, 4, 4, 4, 1,
	}, 0, Normal)
}

func longShape() *RoomTemplate {
	return build("long_shape", 9, []int{
		1, 2, 2, 2, 2, 2, 2, 2, 1,
		5, 8, 8, 8, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 8, 8, 8, 3,
		1, 4, 4, 4, 4, 4, 4, 4, 1,
	}, 0, Normal)
}

func cross() *RoomTemplate {
	return build("cross", 5, []int{
		0, 1, 2, 1, 0,
		1, 1, 8, 1, 1,
		5, 8, 8, 8, 3,
		1, 1, 8, 1, 1,
		0, 1, 4, 1, 0,
	}, 3, Normal)
}

func tall() *RoomTemplate {
	return build("tall", 5, []int{
		1, 2, 2, 2, 1,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		5, 8, 8, 8, 3,
		1, 4, 4, 4, 1,
	}, 0, Normal)
}

func wide() *RoomTemplate {
	return build("wide", 11, []int{
		1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1,
		5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 3,
		5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 3,
		1, 4, 4, 4, 4, 4, 4, 4, 4, 4, 1,
	}, 0, Normal)
}

func jar() *RoomTemplate {
	return build("jar", 7, []int{
		0, 1, 1, 2, 1, 1, 0,
		0, 1, 8, 8, 8, 1, 0,
		0, 1, 8, 8, 8, 1, 0,
		0, 1, 8, 8, 8, 1, 0,
		1, 1, 8, 8, 8, 1, 1,
		5, 8, 8, 8, 8, 8, 3,
		1, 1, 8, 8, 8, 1, 1,
		0, 1, 8, 8, 8, 1, 0,
		0, 1, 8, 8, 8, 1, 0,
		0, 1, 8, 8, 8, 1, 0,
		0, 1, 1, 4, 1, 1, 0,
	}, 3, Normal)
}

func startRoom() *RoomTemplate {
	return build("start_room", 9, []int{
		0, 1, 2, 1, 2, 1, 2, 1, 0,
		0, 5, 8, 8, 8, 8, 8, 3, 0,
		1, 1, 1, 8, 8, 8, 1, 1, 1,
		5, 8, 8, 8, 8, 8, 8, 8, 3,
		1, 1, 4, 1, 1, 1, 4, 1, 1,
	}, 0, Start)
}

func bossRoom() *RoomTemplate {
	return build("boss_room", 9, []int{
		0, 1, 2, 1, 2, 1, 2, 1, 0,
		1, 1, 8, 1, 8, 1, 8, 1, 1,
		5, 8, 8, 8, 8, 8, 8, 8, 3,
		1, 1, 8, 8, 8, 8, 8, 1, 1,
		5, 8, 8, 8, 8, 8, 8, 8, 3,
		1, 4, 4, 1, 1, 1, 4, 4, 1,
	}, 0, Boss)
}
