package carving

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// MakeMarchingTiles reclassifies every tile from the raw carve (Unset /
// VWall marker) into its final structural code based on its 8-neighborhood:
// an all-carved neighborhood becomes floor, a single orthogonal uncarved
// neighbor becomes a wall on that side, and anything else becomes a corner
// seed. Never-carved tiles become void. Must run exactly once, before wall
// extension (which repurposes codes 1/2/3 for decorated walls and doors).
func MakeMarchingTiles(g *grid.Grid) {
	carved := make([]bool, g.Size*g.Size)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.Code(x, y) != tilecode.Unset {
				carved[y*g.Size+x] = true
			}
		}
	}
	isCarved := func(x, y int) bool {
		if !g.InBounds(x, y) {
			return false
		}
		return carved[y*g.Size+x]
	}

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if !isCarved(x, y) {
				g.SetCode(x, y, tilecode.Void)
				continue
			}

			top := isCarved(x, y-1)
			bottom := isCarved(x, y+1)
			left := isCarved(x-1, y)
			right := isCarved(x+1, y)
			all := top && bottom && left && right &&
				isCarved(x-1, y-1) && isCarved(x+1, y-1) &&
				isCarved(x-1, y+1) && isCarved(x+1, y+1)

			switch {
			case all:
				g.SetCode(x, y, tilecode.Floor)
			case !top && bottom && left && right:
				g.SetCode(x, y, tilecode.HWall)
			case top && !bottom && left && right:
				g.SetCode(x, y, tilecode.HWall)
			case top && bottom && !left && right:
				g.SetCode(x, y, tilecode.VWall)
			case top && bottom && left && !right:
				g.SetCode(x, y, tilecode.VWall)
			default:
				g.SetCode(x, y, tilecode.Corner)
			}
		}
	}
}
