package grid

import "github.com/opd-ai/dlrg/pkg/tilecode"

// IsGoodPlaceLocation scans a square of radius max(minStaircase, minMonster)
// around center and reports whether the location is clear for placement. It
// fails if a staircase tile lies within minStaircase tiles of center in the
// same room (the staircase exclusion is room-local, not global), or a
// monster tile lies within minMonster tiles. Distances are Chebyshev, per
// the dart-scan square.
func (g *Grid) IsGoodPlaceLocation(center Point, minStaircase, minMonster int) bool {
	radius := minStaircase
	if minMonster > radius {
		radius = minMonster
	}
	centerRoom := g.RoomAt(center.X, center.Y)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := center.X+dx, center.Y+dy
			if !g.InBounds(x, y) {
				continue
			}
			dist := dx
			if dist < 0 {
				dist = -dist
			}
			ady := dy
			if ady < 0 {
				ady = -ady
			}
			if ady > dist {
				dist = ady
			}

			code := g.Code(x, y)
			if dist <= minStaircase && (code == tilecode.StairsUp || code == tilecode.StairsDown) && g.RoomAt(x, y) == centerRoom {
				return false
			}
			if dist <= minMonster && tilecode.IsPlacementMonster(code) {
				return false
			}
		}
	}
	return true
}

// IsNextToWall reports whether any of the 8 neighbors of (x, y) carries a
// wall-like code, per the original's IsTileNextToWall.
func (g *Grid) IsNextToWall(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if tilecode.IsWallLike(g.Code(x+dx, y+dy)) {
				return true
			}
		}
	}
	return false
}
