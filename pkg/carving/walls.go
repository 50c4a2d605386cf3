package carving

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// wallVariantsByLevel returns the decorative wall-code weights for a level,
// mirroring the source's current_level_-gated Random(0, k) branch: levels 2
// and 3 add mossy/webbed variants in addition to solid walls.
func wallVariantsByLevel(level int, horizontal bool) ([]tilecode.Code, []float64) {
	solid, moss, web := tilecode.WallSolidV, tilecode.WallMossV, tilecode.WallWebV
	if horizontal {
		solid, moss, web = tilecode.WallSolidH, tilecode.WallMossH, tilecode.WallWebH
	}
	if level >= 2 && level <= 3 {
		return []tilecode.Code{solid, moss, web}, []float64{0.6, 0.25, 0.15}
	}
	return []tilecode.Code{solid}, []float64{1.0}
}

// AddWalls scans for corner seeds left by the marching-tiles pass and
// extends horizontal and vertical wall segments outward from each one,
// assigning decorative codes and inserting doors.
func AddWalls(g *grid.Grid, level int, src *rng.Source) {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.Code(x, y) != tilecode.Corner {
				continue
			}
			extendHorizontalWall(g, x, y, level, src)
			extendVerticalWall(g, x, y, level, src)
		}
	}
}

// hWallOk walks right from (x,y) over floor tiles and returns the run
// length if the run terminates in a wall/corner tile that is not void, or
// 0 if the segment is invalid.
func hWallOk(g *grid.Grid, x, y int) int {
	i := x + 1
	for g.InBounds(i, y) && g.Code(i, y) == tilecode.Floor {
		i++
	}
	if !g.InBounds(i, y) {
		return 0
	}
	c := g.Code(i, y)
	if c == tilecode.Void || c == tilecode.Unset {
		return 0
	}
	return i - x
}

func vWallOk(g *grid.Grid, x, y int) int {
	j := y + 1
	for g.InBounds(x, j) && g.Code(x, j) == tilecode.Floor {
		j++
	}
	if !g.InBounds(x, j) {
		return 0
	}
	c := g.Code(x, j)
	if c == tilecode.Void || c == tilecode.Unset {
		return 0
	}
	return j - y
}

func extendHorizontalWall(g *grid.Grid, x, y, level int, src *rng.Source) {
	run := hWallOk(g, x, y)
	if run <= 1 {
		return
	}
	codes, weights := wallVariantsByLevel(level, true)
	code := codes[src.WeightedChoice(weights)]
	for i := x + 1; i < x+run; i++ {
		g.SetCode(i, y, code)
	}
	placeDoorOnSegment(g, x+1, y, run-1, true, src)
}

func extendVerticalWall(g *grid.Grid, x, y, level int, src *rng.Source) {
	run := vWallOk(g, x, y)
	if run <= 1 {
		return
	}
	codes, weights := wallVariantsByLevel(level, false)
	code := codes[src.WeightedChoice(weights)]
	for j := y + 1; j < y+run; j++ {
		g.SetCode(x, j, code)
	}
	placeDoorOnSegment(g, x, y+1, run-1, false, src)
}

// placeDoorOnSegment picks a random interior position of a just-extended
// wall segment and flags it HDoor/VDoor; with probability 1/6 the position
// becomes a plain pillar instead of a door.
func placeDoorOnSegment(g *grid.Grid, startX, startY, length int, horizontal bool, src *rng.Source) {
	if length <= 0 {
		return
	}
	offset := src.Intn(length)
	x, y := startX, startY
	if horizontal {
		x += offset
	} else {
		y += offset
	}

	if src.Chance(1, 6) {
		g.SetCode(x, y, tilecode.Pillar)
		return
	}

	if horizontal {
		g.AddFlags(x, y, tilecode.HDoor)
	} else {
		g.AddFlags(x, y, tilecode.VDoor)
	}
}

// TileFix harmonizes junction tiles left by wall extension, running a
// small order-dependent rewrite table over each tile and its right-hand
// neighbour along every row; columns are not scanned. Per spec this pass
// runs exactly twice.
func TileFix(g *grid.Grid) {
	tileFixPass(g)
	tileFixPass(g)
}

// tileFixRule is one entry of the rewrite table: if the tile at the
// window's center equals Match and its right neighbor equals Context, the
// center is rewritten to Result. Rules are applied in order and the table
// is scanned left to right, top to bottom, so later rules see earlier
// rewrites within the same pass — the overlap the original leaves
// order-dependent.
type tileFixRule struct {
	Match, Context, Result tilecode.Code
}

var tileFixRules = []tileFixRule{
	{tilecode.HWall, tilecode.Void, tilecode.WallEndH}, // spec's worked example: (2, 22) -> (2, 23)
	{tilecode.VWall, tilecode.Void, tilecode.Corner},
	{tilecode.Corner, tilecode.Void, tilecode.Void},
}

func tileFixPass(g *grid.Grid) {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size-1; x++ {
			center := g.Code(x, y)
			right := g.Code(x+1, y)
			for _, rule := range tileFixRules {
				if center == rule.Match && right == rule.Context {
					g.SetCode(x, y, rule.Result)
					break
				}
			}
		}
	}
}
