package roomtemplate

import "github.com/deanfra/erebos-level-generator/pkg/tilegrid"

// directionOrder fixes the iteration order over a template's door
// directions so that, for a given (A,B) pair, Combinations are always
// discovered and appended in the same order.
var directionOrder = []tilegrid.Direction{tilegrid.North, tilegrid.East, tilegrid.South, tilegrid.West}

// computeCombinations fills in every template's Combinations map by
// exhaustively trying every ordered pair (A,B), including A == B, door
// by door. For a given pair the two footprints are painted onto a
// shared oversized scratch canvas with their matching doors coincident;
// the pairing is accepted unless some non-zero B tile then lands on an
// A floor tile.
func computeCombinations(templates []*RoomTemplate) {
	for _, a := range templates {
		a.Combinations = make(map[int][]Combination, len(templates))
		for _, b := range templates {
			a.Combinations[b.ID] = nil
		}
	}

	for _, a := range templates {
		for _, b := range templates {
			for _, d := range directionOrder {
				for _, xyA := range a.Doors[d] {
					reciprocal := d.Reciprocal()
					for _, xyB := range b.Doors[reciprocal] {
						if c, ok := tryDock(a, b, d, xyA, reciprocal, xyB); ok {
							a.Combinations[b.ID] = append(a.Combinations[b.ID], c)
						}
					}
				}
			}
		}
	}
}

// tryDock attempts to align template b's door (direction dirB, position
// xyB) against template a's door (direction dirA, position xyA) on a
// scratch canvas sized to comfortably hold both footprints regardless
// of where they land.
func tryDock(a, b *RoomTemplate, dirA tilegrid.Direction, xyA XY, dirB tilegrid.Direction, xyB XY) (Combination, bool) {
	canvasW := a.W + 2*b.W + 1
	canvasH := a.H + 2*b.H + 1

	aOrigin := XY{X: canvasW/2 - a.W/2, Y: canvasH/2 - a.H/2}
	canvas := make([]tilegrid.Tile, canvasW*canvasH)
	paintAt(canvas, canvasW, a.Tiles, a.W, a.H, aOrigin)

	doorACanvas := XY{X: aOrigin.X + xyA.X, Y: aOrigin.Y + xyA.Y}
	bOrigin := XY{X: doorACanvas.X - xyB.X, Y: doorACanvas.Y - xyB.Y}

	if !fits(canvas, canvasW, canvasH, b, bOrigin) {
		return Combination{}, false
	}

	relative := XY{X: aOrigin.X - bOrigin.X, Y: aOrigin.Y - bOrigin.Y}
	dx, dy := dirB.Offset()
	baked := XY{X: relative.X + dx, Y: relative.Y + dy}

	return Combination{
		Offset:   baked,
		DoorADir: dirA,
		DoorAXY:  xyA,
		DoorBDir: dirB,
		DoorBXY:  xyB,
	}, true
}

// paintAt stamps src (w x h, row-major) onto dst (dstW wide) with its
// top-left corner at origin. The scratch canvas is always sized large
// enough that this never goes out of bounds.
func paintAt(dst []tilegrid.Tile, dstW int, src []tilegrid.Tile, w, h int, origin XY) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			idx := (origin.Y+ly)*dstW + (origin.X + lx)
			dst[idx] = src[ly*w+lx]
		}
	}
}

// fits reports whether b can be painted at origin on canvas without any
// non-zero b tile landing on a floor (8) tile already on the canvas.
func fits(canvas []tilegrid.Tile, canvasW, canvasH int, b *RoomTemplate, origin XY) bool {
	for ly := 0; ly < b.H; ly++ {
		for lx := 0; lx < b.W; lx++ {
			cx, cy := origin.X+lx, origin.Y+ly
			if cx < 0 || cx >= canvasW || cy < 0 || cy >= canvasH {
				return false
			}
			tile := b.Tiles[ly*b.W+lx]
			if tile != tilegrid.Empty && canvas[cy*canvasW+cx] == tilegrid.Floor {
				return false
			}
		}
	}
	return true
}
