package carving

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/rng"
)

// maxAdjacent returns the occupied-neighbor ceiling used to bias the
// chamber walk away from overly dense clusters.
func maxAdjacent(cells int) int {
	if cells <= 3 {
		return 5
	}
	return 3
}

// GenerateChambers performs the biased random walk over the coarse grid,
// marking cells as occupied (ChamberRoom, pending reclassification), then
// post-classifies straight runs as corridors. Level 6 marks its boss
// chamber column before classification, per spec.
func GenerateChambers(g *grid.Grid, level int, src *rng.Source) {
	cells := g.Cells
	occupied := make([]bool, cells*cells)
	idx := func(x, y int) int { return y*cells + x }
	inBounds := func(x, y int) bool { return x >= 0 && x < cells && y >= 0 && y < cells }

	start := src.Random(0, cells*cells)
	sx, sy := start%cells, start/cells
	occupied[idx(sx, sy)] = true
	visited := []grid.Point{{X: sx, Y: sy}}

	n := src.Random((cells*cells)/6, (cells*cells)/3+1)
	cx, cy := sx, sy
	limit := maxAdjacent(cells)

	type step struct{ dx, dy int }
	dirs := []step{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for i := 0; i < n; i++ {
		var candidates []step
		for _, d := range dirs {
			nx, ny := cx+d.dx, cy+d.dy
			if !inBounds(nx, ny) || occupied[idx(nx, ny)] {
				continue
			}
			if countOccupiedNeighbors(occupied, cells, nx, ny) > limit {
				continue
			}
			candidates = append(candidates, d)
		}

		if len(candidates) == 0 {
			pick := visited[src.Random(0, len(visited))]
			cx, cy = pick.X, pick.Y
			continue
		}

		d := candidates[src.Random(0, len(candidates))]
		cx, cy = cx+d.dx, cy+d.dy
		occupied[idx(cx, cy)] = true
		visited = append(visited, grid.Point{X: cx, Y: cy})
	}

	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			if occupied[idx(x, y)] {
				g.SetChamber(x, y, grid.ChamberRoom)
			}
		}
	}

	if level == 6 {
		for y := 1; y <= 3; y++ {
			if y < cells && 2 < cells {
				g.SetChamber(2, y, grid.ChamberBoss)
			}
		}
	}

	classifyCorridors(g, occupied, cells)
}

func countOccupiedNeighbors(occupied []bool, cells, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= cells || ny < 0 || ny >= cells {
				continue
			}
			if occupied[ny*cells+nx] {
				count++
			}
		}
	}
	return count
}

// classifyCorridors reclassifies occupied cells whose left/right (or
// top/bottom) neighbors are occupied and whose perpendicular neighbors are
// clear, as horizontal (or vertical) corridors. Boss chamber cells are
// left untouched.
func classifyCorridors(g *grid.Grid, occupied []bool, cells int) {
	set := func(x, y int) bool {
		if x < 0 || x >= cells || y < 0 || y >= cells {
			return false
		}
		return occupied[y*cells+x]
	}

	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			if !occupied[y*cells+x] {
				continue
			}
			if g.Chamber(x, y) == grid.ChamberBoss {
				continue
			}
			isH := set(x-1, y) && set(x+1, y) && !set(x, y-1) && !set(x, y+1)
			isV := set(x, y-1) && set(x, y+1) && !set(x-1, y) && !set(x+1, y)
			switch {
			case isH:
				g.SetChamber(x, y, grid.ChamberCorridorH)
			case isV:
				g.SetChamber(x, y, grid.ChamberCorridorV)
			default:
				g.SetChamber(x, y, grid.ChamberRoom)
			}
		}
	}
}
