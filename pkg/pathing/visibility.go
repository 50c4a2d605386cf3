package pathing

import (
	"math"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// visibilityRayCount is the number of Bresenham rays cast in the uniform
// angular fan, per spec.
const visibilityRayCount = 90

// visibilityRadius is the fan's reach in tiles.
const visibilityRadius = 10

// Visibility tracks the player's last-known tile so CalculateVisibility
// can skip recomputation when the player hasn't left it.
type Visibility struct {
	lastTile grid.Point
	have     bool
}

// NewVisibility returns a tracker with no last-known tile, so the first
// Calculate call always recomputes the mask.
func NewVisibility() *Visibility {
	return &Visibility{}
}

// Invalidate forces the next Calculate call to recompute the mask even if
// the player's tile hasn't moved. Callers must invoke this after any
// mutation that can change what's transparent from the player's position,
// such as opening or closing a door.
func (v *Visibility) Invalidate() {
	v.have = false
}

// Calculate recomputes g.Visibility as a 90-ray Bresenham fan of radius
// visibilityRadius centered on player, unless player is the same tile as
// the last call. Each ray walks outward marking transparent tiles visible
// and stops — without marking it — at the first opaque tile. The player's
// own tile is always marked visible.
func (v *Visibility) Calculate(g *grid.Grid, player grid.Point) {
	if v.have && v.lastTile == player {
		return
	}
	v.lastTile = player
	v.have = true

	for i := range g.Visibility {
		g.Visibility[i] = false
	}
	if g.InBounds(player.X, player.Y) {
		g.Visibility[player.Y*g.Size+player.X] = true
	}

	for i := 0; i < visibilityRayCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(visibilityRayCount)
		endX := player.X + int(math.Round(float64(visibilityRadius)*math.Cos(angle)))
		endY := player.Y + int(math.Round(float64(visibilityRadius)*math.Sin(angle)))
		castRay(g, player, grid.Point{X: endX, Y: endY})
	}
}

// castRay walks the Bresenham line from src to dst, marking every
// transparent tile visible and halting at (without marking) the first
// opaque tile.
func castRay(g *grid.Grid, src, dst grid.Point) {
	first := true
	stop := false
	g.DrawLine(src.X, src.Y, dst.X, dst.Y, func(x, y int) {
		if stop {
			return
		}
		if first {
			// player's own tile is handled by Calculate; skip re-testing
			// it for opacity so standing tiles never self-occlude.
			first = false
			return
		}
		if !g.InBounds(x, y) {
			stop = true
			return
		}
		code := g.Code(x, y)
		if !tilecode.IsTransparent(code, g.FlagsAt(x, y)) {
			stop = true
			return
		}
		g.Visibility[y*g.Size+x] = true
	})
}
