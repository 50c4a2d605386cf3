package pathing

import (
	"math"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// NextMove answers GetNextMove: given a source and destination tile, it
// returns the tile one step along the precomputed path from src toward
// dst. When the direct lookup is self (already at dst) or unreachable, it
// mirrors the original's fallback: scan the 8 neighbors of dst, and among
// those whose path[neighbor][src] is a defined, non-self direction code,
// take the one closest to dst; step src by that direction code's offset.
func (f *Field) NextMove(src, dst grid.Point) grid.Point {
	code := f.Dir(dst.X, dst.Y, src.X, src.Y)
	if code == tilecode.Self || code == tilecode.Unreachable {
		code = f.fallbackCode(src, dst, code)
	}
	o := tilecode.DirOffsets[code]
	return grid.Point{X: src.X + o.DX, Y: src.Y + o.DY}
}

// fallbackCode scans the 8 neighbors of dst and returns the direction code
// path[neighbor][src] for whichever neighbor minimizes Euclidean distance
// to dst among those with a defined, non-self code. If none qualify, it
// returns the original (self/unreachable) code unchanged.
func (f *Field) fallbackCode(src, dst grid.Point, code int) int {
	bestDist := math.Inf(1)
	best := code

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := dst.X+dx, dst.Y+dy
			if !f.inBounds(nx, ny) {
				continue
			}
			newCode := f.Dir(nx, ny, src.X, src.Y)
			if newCode == tilecode.Unreachable || newCode == tilecode.Self {
				continue
			}

			d := math.Hypot(float64(nx-dst.X), float64(ny-dst.Y))
			if d < bestDist {
				bestDist = d
				best = newCode
			}
		}
	}
	return best
}
