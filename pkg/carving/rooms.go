package carving

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

const maxRoomAttempts = 20

// CarveChambers walks every coarse cell and, for room/boss cells, carves
// the anchor chamber block plus its recursive room splits; for corridor
// cells, carves a connecting floor strip toward the neighboring cell.
func CarveChambers(g *grid.Grid, level int, src *rng.Source) {
	for cy := 0; cy < g.Cells; cy++ {
		for cx := 0; cx < g.Cells; cx++ {
			switch g.Chamber(cx, cy) {
			case grid.ChamberRoom, grid.ChamberBoss:
				carveChamberBlock(g, cx, cy, level, src)
			case grid.ChamberCorridorH, grid.ChamberCorridorV:
				carveCorridorCell(g, cx, cy)
			}
		}
	}
}

// carveChamberBlock carves the 10x10 (or 10x14 for boss) anchor block with
// CHAMBER|NO_CEILING flags and a central pillar, then recurses room
// splitting outward from it. The pillar's tile codes aren't written here:
// MakeMarchingTiles reclassifies every carved tile by neighborhood right
// after carving and would stomp them, so their positions are only
// recorded on g.Pillars and stamped later by ApplyPillars.
func carveChamberBlock(g *grid.Grid, cx, cy, level int, src *rng.Source) {
	origin := g.CellOrigin(cx, cy)
	w, h := 10, 10
	if g.Chamber(cx, cy) == grid.ChamberBoss {
		w, h = 10, 14
	}

	ox := origin.X + (g.CellSize-w)/2
	oy := origin.Y + (g.CellSize-h)/2

	drawRoom(g, ox, oy, w, h, tilecode.Chamber|tilecode.NoCeiling)

	centerX, centerY := ox+w/2, oy+h/2
	g.Pillars = append(g.Pillars, grid.Point{X: centerX, Y: centerY}, grid.Point{X: centerX - 1, Y: centerY})

	secret := level >= 4 && src.Chance(1, 30)
	RoomGen(g, ox, oy, w, h, src.Intn(2), level, secret, src)
}

// ApplyPillars stamps the center-post/pillar codes recorded during chamber
// carving. Must run after MakeMarchingTiles so the pillar tiles survive the
// neighborhood reclassification pass instead of being carved over.
func ApplyPillars(g *grid.Grid) {
	for i, p := range g.Pillars {
		if i%2 == 0 {
			g.SetCode(p.X, p.Y, tilecode.CenterPost)
		} else {
			g.SetCode(p.X, p.Y, tilecode.Pillar)
		}
	}
}

func drawRoom(g *grid.Grid, x, y, w, h int, flags tilecode.Flag) {
	for i := x; i < x+w; i++ {
		for j := y; j < y+h; j++ {
			if !g.InBounds(i, j) {
				continue
			}
			g.SetCode(i, j, tilecode.VWall) // raw-carved marker, reclassified by marching tiles
			if flags != 0 {
				g.AddFlags(i, j, flags)
			}
		}
	}
}

// RoomGen recursively places a child room on each side of the parent room
// along an alternating split axis, rejecting out-of-bounds or overlapping
// placements via checkRoom, for up to maxRoomAttempts tries. Each call
// flips axis with 25% probability. At level >= 4, secret inherits downward
// or is independently rolled at 1/30 on entry.
func RoomGen(g *grid.Grid, x, y, w, h, axis, level int, secret bool, src *rng.Source) {
	secretFlag := tilecode.Flag(0)
	if level >= 4 {
		if secret || src.Chance(1, 30) {
			secretFlag = tilecode.Secret
		}
	}

	for side := 0; side < 2; side++ {
		for attempt := 0; attempt < maxRoomAttempts; attempt++ {
			childW := src.RandomEven(2, 9)
			childH := src.RandomEven(2, 9)

			var cx, cy int
			if axis == 0 { // horizontal split: children before/after along x
				cy = y
				if side == 0 {
					cx = x - childW
				} else {
					cx = x + w
				}
			} else { // vertical split: children before/after along y
				cx = x
				if side == 0 {
					cy = y - childH
				} else {
					cy = y + h
				}
			}

			if !checkRoom(g, cx, cy, childW, childH) {
				continue
			}

			drawRoom(g, cx, cy, childW, childH, secretFlag)

			nextAxis := axis
			if src.Chance(1, 4) {
				nextAxis = 1 - axis
			}
			RoomGen(g, cx, cy, childW, childH, nextAxis, level, secretFlag != 0, src)
			break
		}
	}
}

// checkRoom rejects placements that run off the grid or overlap an already
// carved tile.
func checkRoom(g *grid.Grid, x, y, w, h int) bool {
	if x < 1 || y < 1 || x+w >= g.Size-1 || y+h >= g.Size-1 {
		return false
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if g.Code(i, j) != tilecode.Unset {
				return false
			}
		}
	}
	return true
}

// carveCorridorCell carves a straight floor strip across a corridor cell,
// connecting it to its neighbors along its classified axis.
func carveCorridorCell(g *grid.Grid, cx, cy int) {
	origin := g.CellOrigin(cx, cy)
	half := g.CellSize / 2
	width := 2

	if g.Chamber(cx, cy) == grid.ChamberCorridorH {
		y := origin.Y + half
		for x := origin.X; x < origin.X+g.CellSize; x++ {
			for dy := 0; dy < width; dy++ {
				g.SetCode(x, y+dy, tilecode.VWall)
			}
		}
	} else {
		x := origin.X + half
		for y := origin.Y; y < origin.Y+g.CellSize; y++ {
			for dx := 0; dx < width; dx++ {
				g.SetCode(x+dx, y, tilecode.VWall)
			}
		}
	}
}
