package themes

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// bounds returns the tile-space bounding box of a room's member tiles.
func bounds(room *grid.Room) (minX, minY, maxX, maxY int) {
	if len(room.Tiles) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = room.Tiles[0].X, room.Tiles[0].Y
	maxX, maxY = minX, minY
	for _, p := range room.Tiles[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

// isCorridorShaped reports whether a room's bounding box is long and
// narrow: one axis short (<=3 tiles), the other long (>=6 tiles).
func isCorridorShaped(room *grid.Room) bool {
	minX, minY, maxX, maxY := bounds(room)
	w, h := maxX-minX+1, maxY-minY+1
	return (w <= 3 && h >= 6) || (h <= 3 && w >= 6)
}

// isChamberShaped reports whether a room is a carved chamber block: its
// tiles carry the Chamber flag and its bounding box is roughly 10x10.
func isChamberShaped(g *grid.Grid, room *grid.Room) bool {
	if len(room.Tiles) == 0 {
		return false
	}
	p := room.Tiles[0]
	if g.FlagsAt(p.X, p.Y)&tilecode.Chamber == 0 {
		return false
	}
	minX, minY, maxX, maxY := bounds(room)
	w, h := maxX-minX+1, maxY-minY+1
	return w >= 8 && w <= 14 && h >= 8 && h <= 14
}

// isNextToDoor reports whether any of (x,y)'s 8 neighbors is a door code.
func isNextToDoor(g *grid.Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if tilecode.IsDoorCode(g.Code(x+dx, y+dy)) {
				return true
			}
		}
	}
	return false
}

// wallAdjacentTile returns a room tile that is next to a wall and not
// next to a door, or ok=false if none qualifies.
func wallAdjacentTile(g *grid.Grid, room *grid.Room, src *rng.Source) (grid.Point, bool) {
	candidates := make([]grid.Point, 0, len(room.Tiles))
	for _, p := range room.Tiles {
		if g.IsNextToWall(p.X, p.Y) && !isNextToDoor(g, p.X, p.Y) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return grid.Point{}, false
	}
	return candidates[src.Random(0, len(candidates))], true
}

// interiorTile returns a room tile that is not next to a wall (i.e. away
// from the room's perimeter), or ok=false if none qualifies.
func interiorTile(g *grid.Grid, room *grid.Room, src *rng.Source) (grid.Point, bool) {
	candidates := make([]grid.Point, 0, len(room.Tiles))
	for _, p := range room.Tiles {
		if !g.IsNextToWall(p.X, p.Y) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return grid.Point{}, false
	}
	return candidates[src.Random(0, len(candidates))], true
}

// roomCenter returns the center of the room's bounding box, rounded toward
// zero.
func roomCenter(room *grid.Room) grid.Point {
	minX, minY, maxX, maxY := bounds(room)
	return grid.Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}
