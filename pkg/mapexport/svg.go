package mapexport

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/deanfra/erebos-level-generator/pkg/mapstate"
	"github.com/deanfra/erebos-level-generator/pkg/roomtemplate"
	"github.com/deanfra/erebos-level-generator/pkg/tilegrid"
)

// SVGOptions configures the tile-grid visualization.
type SVGOptions struct {
	CellSize    int    // Pixel size of one tile cell (default: 16)
	ShowGrid    bool   // Draw a faint line between cells
	ShowLabels  bool   // Label each room with its node ID
	ColorByType bool   // Color rooms by RoomType (Start/Normal/Boss)
	Title       string // Optional title drawn above the grid
	Margin      int    // Canvas margin in pixels (default: 30)
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:    16,
		ShowGrid:    true,
		ShowLabels:  true,
		ColorByType: true,
		Title:       "Level Map",
		Margin:      30,
	}
}

// ExportSVG renders m's tile buffer as an SVG image, optionally with
// placed rooms outlined in a RoomType color (ColorByType) and labeled
// by node ID (ShowLabels).
func ExportSVG(m *mapstate.Map, opts SVGOptions) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("mapexport: map cannot be nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 16
	}
	if opts.Margin <= 0 {
		opts.Margin = 30
	}

	headerHeight := 0
	if opts.Title != "" {
		headerHeight = 40
	}

	width := m.W*opts.CellSize + 2*opts.Margin
	height := m.H*opts.CellSize + 2*opts.Margin + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, 24, opts.Title, "fill:#eee;font-size:18px;text-anchor:middle")
	}

	gridTop := opts.Margin + headerHeight
	drawTiles(canvas, m, opts, gridTop)
	if opts.ColorByType {
		drawRoomOutlines(canvas, m, opts, gridTop)
	}
	if opts.ShowLabels {
		drawRoomLabels(canvas, m, opts, gridTop)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders m and writes it to filepath with 0644
// permissions.
func SaveSVGToFile(m *mapstate.Map, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(m, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

func drawTiles(canvas *svg.SVG, m *mapstate.Map, opts SVGOptions, top int) {
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			tile := m.Tiles[tilegrid.Idx(x, y, m.W)]
			if tile == tilegrid.Empty {
				continue
			}
			style := tileStyle(tile)
			px := opts.Margin + x*opts.CellSize
			py := top + y*opts.CellSize
			if opts.ShowGrid {
				style += ";stroke:#0d0d17;stroke-width:1"
			}
			canvas.Rect(px, py, opts.CellSize, opts.CellSize, style)
		}
	}
}

func tileStyle(tile tilegrid.Tile) string {
	switch tile {
	case tilegrid.Wall:
		return "fill:#4a5568"
	case tilegrid.Floor:
		return "fill:#2d3748"
	case tilegrid.DoorConnected:
		return "fill:#48bb78"
	case tilegrid.Conflict:
		return "fill:#f56565"
	case tilegrid.DoorNorth, tilegrid.DoorEast, tilegrid.DoorSouth, tilegrid.DoorWest:
		return "fill:#ed8936"
	default:
		return "fill:#718096"
	}
}

func drawRoomOutlines(canvas *svg.SVG, m *mapstate.Map, opts SVGOptions, top int) {
	for _, room := range m.Rooms {
		color := roomColor(room)
		px := opts.Margin + room.Origin.X*opts.CellSize
		py := top + room.Origin.Y*opts.CellSize
		canvas.Rect(
			px, py,
			room.Template.W*opts.CellSize, room.Template.H*opts.CellSize,
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", color),
		)
	}
}

func drawRoomLabels(canvas *svg.SVG, m *mapstate.Map, opts SVGOptions, top int) {
	for nodeID, room := range m.Rooms {
		cx := opts.Margin + (room.Origin.X+room.Template.W/2)*opts.CellSize
		cy := top + (room.Origin.Y+room.Template.H/2)*opts.CellSize
		canvas.Text(cx, cy, fmt.Sprintf("%d", nodeID), "fill:#eee;font-size:12px;text-anchor:middle")
	}
}

func roomColor(room *mapstate.PlacedRoom) string {
	switch room.Template.RoomType {
	case roomtemplate.Start:
		return "#4299e1"
	case roomtemplate.Boss:
		return "#f56565"
	default:
		return "#a0aec0"
	}
}
