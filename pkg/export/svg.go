package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/opd-ai/dlrg/pkg/dungeon"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// SVGOptions configures the rasterized map preview.
type SVGOptions struct {
	TileSize  int    // Pixels per tile (default: 8)
	ShowGrid  bool   // Overlay tile gridlines
	ShowStats bool   // Draw a stats header above the map
	Title     string // Optional title
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		TileSize:  8,
		ShowGrid:  false,
		ShowStats: true,
		Title:     "Dungeon",
	}
}

// tileColor buckets a tile code into a preview color, closed-variant style:
// structural categories first, then the handful of decorative/hazard codes
// worth calling out, default to floor gray for everything walkable.
func tileColor(code tilecode.Code, flags tilecode.Flag) string {
	switch {
	case code == tilecode.StairsDown:
		return "#f59e0b"
	case code == tilecode.StairsUp:
		return "#fbbf24"
	case tilecode.IsDoorCode(code):
		if flags&tilecode.DoorClosed != 0 {
			return "#92400e"
		}
		return "#d97706"
	case flags&tilecode.Chasm != 0:
		return "#111827"
	case flags&tilecode.WebFloor != 0:
		return "#a3a3a3"
	case flags&tilecode.Secret != 0:
		return "#6d28d9"
	case tilecode.IsWallLike(code), code == tilecode.Corner, code == tilecode.CenterPost, code == tilecode.WallEndH:
		return "#4a5568"
	case code == tilecode.Void, code == tilecode.Unset:
		return "#1a1a2e"
	case tilecode.IsWalkable(code):
		return "#cbd5e0"
	default:
		return "#2d3748"
	}
}

// ExportSVG rasterizes the generated dungeon's terrain grid into an SVG
// image: one rectangle per tile, colored by structural category, with an
// optional stats header.
func ExportSVG(d *dungeon.Dungeon, opts SVGOptions) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("export: dungeon cannot be nil")
	}
	if opts.TileSize <= 0 {
		opts.TileSize = 8
	}

	size := d.Grid.Size
	headerHeight := 0
	if opts.Title != "" || opts.ShowStats {
		headerHeight = 40
	}
	width := size * opts.TileSize
	height := size*opts.TileSize + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			color := tileColor(d.Grid.Code(x, y), d.Grid.FlagsAt(x, y))
			px := x * opts.TileSize
			py := headerHeight + y*opts.TileSize
			canvas.Rect(px, py, opts.TileSize, opts.TileSize, fmt.Sprintf("fill:%s", color))
		}
	}

	if opts.ShowGrid {
		drawGridLines(canvas, size, opts.TileSize, headerHeight)
	}

	if headerHeight > 0 {
		drawSVGHeader(canvas, d, width, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawGridLines(canvas *svg.SVG, size, tileSize, headerHeight int) {
	for i := 0; i <= size; i++ {
		x := i * tileSize
		canvas.Line(x, headerHeight, x, headerHeight+size*tileSize, "stroke:#000;stroke-width:1;opacity:0.15")
		y := headerHeight + i*tileSize
		canvas.Line(0, y, size*tileSize, y, "stroke:#000;stroke-width:1;opacity:0.15")
	}
}

func drawSVGHeader(canvas *svg.SVG, d *dungeon.Dungeon, width int, opts SVGOptions) {
	if opts.Title != "" {
		canvas.Text(width/2, 18, opts.Title,
			"text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}
	if opts.ShowStats {
		stats := fmt.Sprintf("Level %d | Seed %d | Rooms %d", d.Level, d.Seed, len(d.Grid.Rooms))
		canvas.Text(width/2, 34, stats,
			"text-anchor:middle;font-size:11px;fill:#a0aec0;font-family:monospace")
	}
}

// SaveSVGToFile renders a preview and saves it to filepath.
func SaveSVGToFile(d *dungeon.Dungeon, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(d, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
