package content

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/level"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// maxMonsterDarts bounds the outer dart-throwing loop for monster group
// placement.
const maxMonsterDarts = 5000

// maxObjectDarts bounds the dart-throwing loop for single-tile objects.
const maxObjectDarts = 100

// maxGroupOffsetAttempts bounds the small random-offset search each group
// member makes looking for a qualifying floor tile near the group's dart.
const maxGroupOffsetAttempts = 100

// groupSpread is the half-width of the square a group member's offset is
// drawn from around the dart.
const groupSpread = 3

// PlaceMonsters throws up to maxMonsterDarts darts; each one that lands on
// a qualifying location (is_good_place with the staircase/monster minimums
// from spec.md §4.10) seeds a monster group. Stops once params.NumMonsters
// tiles have been placed, or the dart budget is exhausted. Returns the
// total monster tile count placed.
func PlaceMonsters(g *grid.Grid, params level.Params, lvl int, src *rng.Source) int {
	placed := 0
	for dart := 0; dart < maxMonsterDarts && placed < params.NumMonsters; dart++ {
		x := src.Random(0, g.Size)
		y := src.Random(0, g.Size)
		center := grid.Point{X: x, Y: y}

		if !tilecode.IsWalkable(g.Code(x, y)) {
			continue
		}
		if !g.IsGoodPlaceLocation(center, 10, 10) {
			continue
		}

		groupSize := params.MinGroupSize
		if params.MaxGroupSize > params.MinGroupSize {
			groupSize = src.Random(params.MinGroupSize, params.MaxGroupSize+1)
		}
		placed += PlaceMonsterGroupAt(g, params.Monsters, lvl, center, groupSize, src)
	}
	return placed
}

// PlaceMonsterGroupAt places up to groupSize monsters by small random
// offsets from center, each landing on a floor tile that satisfies
// is_good_place(·, 10, 0). Exported so theme rooms (library, chest) can
// seed their own monster groups with the same placement rule. A
// spiderling (code 62) placed against a wall at level > 2 becomes a
// trapping spiderling (code 90).
func PlaceMonsterGroupAt(g *grid.Grid, monsters []int, lvl int, center grid.Point, groupSize int, src *rng.Source) int {
	if len(monsters) == 0 {
		return 0
	}
	placedCount := 0
	for i := 0; i < groupSize; i++ {
		for attempt := 0; attempt < maxGroupOffsetAttempts; attempt++ {
			dx := src.Random(-groupSpread, groupSpread+1)
			dy := src.Random(-groupSpread, groupSpread+1)
			x, y := center.X+dx, center.Y+dy
			if !g.InBounds(x, y) {
				continue
			}
			if g.Code(x, y) != tilecode.Floor {
				continue
			}
			if !g.IsGoodPlaceLocation(grid.Point{X: x, Y: y}, 10, 0) {
				continue
			}

			code := tilecode.Code(monsters[src.Random(0, len(monsters))])
			if code == tilecode.Spiderling && lvl > 2 && g.IsNextToWall(x, y) {
				code = tilecode.TrappingSpiderling
			}
			g.SetCode(x, y, code)
			placedCount++
			break
		}
	}
	return placedCount
}

// PlaceObjects throws up to maxObjectDarts darts onto floor tiles, writing
// one of params.Objects at each hit. Object code 78 is special-cased to
// set the WebFloor flag on the tile instead of overwriting its terrain
// code. Stops once params.NumObjects tiles have been placed. Returns the
// total object count placed.
func PlaceObjects(g *grid.Grid, params level.Params, src *rng.Source) int {
	if len(params.Objects) == 0 {
		return 0
	}
	placed := 0
	for dart := 0; dart < maxObjectDarts && placed < params.NumObjects; dart++ {
		x := src.Random(0, g.Size)
		y := src.Random(0, g.Size)
		if g.Code(x, y) != tilecode.Floor {
			continue
		}

		code := tilecode.Code(params.Objects[src.Random(0, len(params.Objects))])
		if code == tilecode.WebFloorObj {
			g.AddFlags(x, y, tilecode.WebFloor)
		} else {
			g.SetCode(x, y, code)
		}
		placed++
	}
	return placed
}
