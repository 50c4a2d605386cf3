package grid

import (
	"fmt"

	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// ChamberKind classifies a coarse cell.
type ChamberKind int

const (
	ChamberEmpty ChamberKind = iota
	ChamberRoom
	ChamberCorridorH
	ChamberCorridorV
	ChamberBoss
)

// Point is a 2D tile coordinate.
type Point struct{ X, Y int }

// Room is a discovered connected component of walkable tiles.
type Room struct {
	ID        int
	Tiles     []Point
	HasStairs bool
	IsMiniset bool
	Dark      bool
}

// Grid holds every per-tile parallel array for one dungeon floor plus the
// coarse chamber grid used by the chamber layout stage.
type Grid struct {
	Size int // DungeonSize

	TileCode     []tilecode.Code
	Flags        []tilecode.Flag
	RoomID       []int16
	Darkness     []byte
	AsciiTerrain []byte
	AsciiMobj    []byte
	Visibility   []bool

	Cells     int // coarse cells per side
	CellSize  int
	Chambers  []ChamberKind

	Rooms      []*Room
	DownStairs Point
	UpStairs   Point

	// Pillars holds the center-post/pillar tile positions stamped by
	// chamber carving. Marching tiles reclassifies every carved tile by
	// neighborhood and would overwrite them, so they're recorded here and
	// restamped after marching rather than written directly during carving.
	Pillars []Point
}

// New allocates a Grid of size x size tiles and cells x cells coarse
// chamber cells, with every tile initialized to Unset/zero-value, matching
// Clear() in the original: tile code 0, no flags, room id -1, darkness and
// ASCII layers blank.
func New(size, cells, cellSize int) *Grid {
	n := size * size
	g := &Grid{
		Size:         size,
		TileCode:     make([]tilecode.Code, n),
		Flags:        make([]tilecode.Flag, n),
		RoomID:       make([]int16, n),
		Darkness:     make([]byte, n),
		AsciiTerrain: make([]byte, n),
		AsciiMobj:    make([]byte, n),
		Visibility:   make([]bool, n),
		Cells:        cells,
		CellSize:     cellSize,
		Chambers:     make([]ChamberKind, cells*cells),
		DownStairs:   Point{-1, -1},
		UpStairs:     Point{-1, -1},
	}
	for i := range g.RoomID {
		g.RoomID[i] = -1
	}
	for i := range g.Darkness {
		g.Darkness[i] = ' '
	}
	return g
}

// InBounds reports whether (x, y) is a valid tile coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

func (g *Grid) idx(x, y int) int { return y*g.Size + x }

// Code returns the tile code at (x, y), or Unset if out of bounds.
func (g *Grid) Code(x, y int) tilecode.Code {
	if !g.InBounds(x, y) {
		return tilecode.Unset
	}
	return g.TileCode[g.idx(x, y)]
}

// SetCode sets the tile code at (x, y). Out-of-bounds writes are silently
// ignored, matching DrawRoom's bounds-check-and-skip behavior.
func (g *Grid) SetCode(x, y int, c tilecode.Code) {
	if !g.InBounds(x, y) {
		return
	}
	g.TileCode[g.idx(x, y)] = c
}

// FlagsAt returns the flag bitset at (x, y).
func (g *Grid) FlagsAt(x, y int) tilecode.Flag {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.Flags[g.idx(x, y)]
}

// AddFlags ORs flags into the tile's bitset.
func (g *Grid) AddFlags(x, y int, f tilecode.Flag) {
	if !g.InBounds(x, y) {
		return
	}
	g.Flags[g.idx(x, y)] |= f
}

// SetFlags overwrites the tile's flag bitset entirely.
func (g *Grid) SetFlags(x, y int, f tilecode.Flag) {
	if !g.InBounds(x, y) {
		return
	}
	g.Flags[g.idx(x, y)] = f
}

// ClearFlagBit clears a single flag bit at (x, y).
func (g *Grid) ClearFlagBit(x, y int, f tilecode.Flag) {
	if !g.InBounds(x, y) {
		return
	}
	g.Flags[g.idx(x, y)] &^= f
}

// RoomAt returns the room id at (x, y), or -1 if none/out of bounds.
func (g *Grid) RoomAt(x, y int) int {
	if !g.InBounds(x, y) {
		return -1
	}
	return int(g.RoomID[g.idx(x, y)])
}

// SetRoomAt assigns a room id at (x, y).
func (g *Grid) SetRoomAt(x, y, room int) {
	if !g.InBounds(x, y) {
		return
	}
	g.RoomID[g.idx(x, y)] = int16(room)
}

// IsDark reports whether (x, y) is marked dark.
func (g *Grid) IsDark(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Darkness[g.idx(x, y)] == '*'
}

// SetDark marks (x, y) dark or lit.
func (g *Grid) SetDark(x, y int, dark bool) {
	if !g.InBounds(x, y) {
		return
	}
	if dark {
		g.Darkness[g.idx(x, y)] = '*'
	} else {
		g.Darkness[g.idx(x, y)] = ' '
	}
}

// Chamber returns the coarse-cell classification at (cx, cy).
func (g *Grid) Chamber(cx, cy int) ChamberKind {
	if cx < 0 || cx >= g.Cells || cy < 0 || cy >= g.Cells {
		return ChamberEmpty
	}
	return g.Chambers[cy*g.Cells+cx]
}

// SetChamber sets the coarse-cell classification at (cx, cy).
func (g *Grid) SetChamber(cx, cy int, k ChamberKind) {
	if cx < 0 || cx >= g.Cells || cy < 0 || cy >= g.Cells {
		return
	}
	g.Chambers[cy*g.Cells+cx] = k
}

// CellOrigin returns the tile-space origin of coarse cell (cx, cy).
func (g *Grid) CellOrigin(cx, cy int) Point {
	return Point{cx * g.CellSize, cy * g.CellSize}
}

// ProjectASCII regenerates AsciiTerrain and AsciiMobj from TileCode,
// routing monster/object codes onto the mobj layer, and sets DoorClosed on
// the two closed-door terrain codes — the full-assignment semantics of the
// original (flags[x][y] = DLRG_DOOR_CLOSED), not an OR.
func (g *Grid) ProjectASCII() {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			i := g.idx(x, y)
			code := g.TileCode[i]
			ch := tilecode.ASCII(code)
			if tilecode.IsMonsterObject(code) {
				g.AsciiTerrain[i] = ' '
				g.AsciiMobj[i] = ch
			} else {
				g.AsciiTerrain[i] = ch
				g.AsciiMobj[i] = ' '
			}
			if tilecode.IsDoorCode(code) {
				g.Flags[i] = tilecode.DoorClosed
			}
		}
	}
}

// WorldToTile converts a world xz position to a tile coordinate, per the
// mapping tile = floor((world - origin - (-5,0,-5)) / 10).
func WorldToTile(worldX, worldZ, originX, originZ float64) Point {
	tx := int(floorDiv(worldX-originX+5, 10))
	ty := int(floorDiv(worldZ-originZ+5, 10))
	return Point{tx, ty}
}

// TileToWorld converts a tile coordinate to its world xz position.
func TileToWorld(t Point, originX, originZ float64) (worldX, worldZ float64) {
	return originX + float64(t.X)*10, originZ + float64(t.Y)*10
}

func floorDiv(a, b float64) float64 {
	q := a / b
	if q < 0 {
		qi := int(q)
		if float64(qi) != q {
			qi--
		}
		return float64(qi)
	}
	return float64(int(q))
}

// String renders a compact debug summary.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid[%dx%d, cells=%dx%d, rooms=%d]", g.Size, g.Size, g.Cells, g.Cells, len(g.Rooms))
}
