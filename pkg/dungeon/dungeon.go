package dungeon

import (
	"fmt"

	"github.com/opd-ai/dlrg/pkg/carving"
	"github.com/opd-ai/dlrg/pkg/content"
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/level"
	"github.com/opd-ai/dlrg/pkg/pathing"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/themes"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// maxGenerationRetries bounds the outer do-while loop spec.md §4.15
// describes as unbounded "by design" but "bounded in practice by
// rejection probabilities": a level whose Params make any retryable
// condition near-certain fails loudly rather than looping forever.
const maxGenerationRetries = 500

// minisetGlobalRetries is the number of times PlaceMiniSet is retried for
// one miniset name before the whole dungeon is re-rolled, per spec.md §4.6.
const minisetGlobalRetries = 10

// Dungeon is one generated floor: the tile grid, its precomputed path
// field, and a visibility tracker bound to the player's last query.
// Post-generation, the only mutations are door state (via SetDoorOpen/
// SetDoorClosed) and the visibility mask.
type Dungeon struct {
	Grid       *grid.Grid
	Field      *pathing.Field
	Visibility *pathing.Visibility
	Level      int
	Seed       int64
	Params     level.Params
}

// Generate builds a complete dungeon for lvl using the named level's
// parameters from cat and the given seed. It retries the entire pipeline,
// starting again from chamber layout, whenever a stage's outcome is
// retryable: area below params.MinArea, a mandatory miniset that could not
// be placed after minisetGlobalRetries tries, or a theme-room target that
// could not be met. No partial result is ever returned.
func Generate(cat *level.Catalog, lvl int, seed int64) (*Dungeon, error) {
	params, ok := cat.Get(lvl)
	if !ok {
		return nil, fmt.Errorf("dungeon: no level %d in catalog", lvl)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("dungeon: invalid level %d params: %w", lvl, err)
	}

	cellSize := params.DungeonSize / params.Cells
	src := rng.New(seed)

	for attempt := 0; attempt < maxGenerationRetries; attempt++ {
		g := grid.New(params.DungeonSize, params.Cells, cellSize)

		carving.GenerateChambers(g, lvl, src)
		carving.CarveChambers(g, lvl, src)

		if countCarvedArea(g) < params.MinArea {
			continue
		}

		carving.MakeMarchingTiles(g)
		carving.ApplyPillars(g)
		carving.AddWalls(g, lvl, src)
		carving.TileFix(g)
		carving.PlaceDoors(g)

		if !placeMandatoryMinisets(g, cat, src) {
			continue
		}
		if !placeLevelMinisets(g, cat, params, src) {
			continue
		}

		carving.FindRooms(g)

		if !themes.ApplyThemeRooms(g, lvl, themeIDs(params.ThemeRooms), params.NumThemeRooms, src) {
			continue
		}

		content.PlaceMonsters(g, params, lvl, src)
		content.PlaceObjects(g, params, src)

		if lvl == 6 {
			applyLevel6BossChamber(g)
		}

		g.ProjectASCII()

		return &Dungeon{
			Grid:       g,
			Field:      pathing.Build(g),
			Visibility: pathing.NewVisibility(),
			Level:      lvl,
			Seed:       seed,
			Params:     params,
		}, nil
	}

	return nil, fmt.Errorf("dungeon: exceeded %d generation retries for level %d", maxGenerationRetries, lvl)
}

// countCarvedArea counts tiles carved by chamber/room carving but not yet
// reclassified by marching tiles, i.e. raw VWall markers — the area figure
// spec.md §4.3's "area floor" checks against params.MinArea.
func countCarvedArea(g *grid.Grid) int {
	n := 0
	for _, c := range g.TileCode {
		if c == tilecode.VWall {
			n++
		}
	}
	return n
}

// placeMandatoryMinisets stamps STAIRS_UP and STAIRS_DOWN, each retried up
// to minisetGlobalRetries times before being treated as a whole-dungeon
// failure, per spec.md §4.6.
func placeMandatoryMinisets(g *grid.Grid, cat *level.Catalog, src *rng.Source) bool {
	for _, name := range []string{"STAIRS_DOWN", "STAIRS_UP"} {
		if !placeMinisetWithRetries(g, cat, name, src) {
			return false
		}
	}
	return true
}

// placeLevelMinisets stamps every level-keyed miniset name from
// params.Minisets, beyond the two mandatory stair minisets.
func placeLevelMinisets(g *grid.Grid, cat *level.Catalog, params level.Params, src *rng.Source) bool {
	for _, name := range params.Minisets {
		if name == "STAIRS_DOWN" || name == "STAIRS_UP" {
			continue // already stamped by placeMandatoryMinisets
		}
		if !placeMinisetWithRetries(g, cat, name, src) {
			return false
		}
	}
	return true
}

func placeMinisetWithRetries(g *grid.Grid, cat *level.Catalog, name string, src *rng.Source) bool {
	m, ok := cat.Miniset(name)
	if !ok {
		return false
	}
	for i := 0; i < minisetGlobalRetries; i++ {
		if carving.PlaceMiniSet(g, m, src) {
			return true
		}
	}
	return false
}

// themeIDs converts a level's theme-room name list to the themes package's
// closed ID type.
func themeIDs(names []string) []themes.ID {
	ids := make([]themes.ID, len(names))
	for i, n := range names {
		ids[i] = themes.ID(n)
	}
	return ids
}

// applyLevel6BossChamber paints the boss chamber's statue-column pattern
// and protected floor over the ChamberBoss cell marked by
// carving.GenerateChambers, and fixes the Spider Queen at her canonical
// position, per original_source's level-6 "Spider queen chamber" case
// (dungeon.cpp's chambers_[x][y] == 4 switch arm).
func applyLevel6BossChamber(g *grid.Grid) {
	for cy := 0; cy < g.Cells; cy++ {
		for cx := 0; cx < g.Cells; cx++ {
			if g.Chamber(cx, cy) != grid.ChamberBoss {
				continue
			}
			origin := g.CellOrigin(cx, cy)
			for dy_ := 1; dy_ <= 13; dy_ += 2 {
				g.SetCode(origin.X+2, origin.Y+dy_, tilecode.StatueCol)
				g.SetCode(origin.X+7, origin.Y+dy_, tilecode.StatueCol)
			}
			for dx := 0; dx < 10; dx++ {
				for dy := 0; dy < 14; dy++ {
					g.AddFlags(origin.X+dx, origin.Y+dy, tilecode.Protected)
				}
			}
		}
	}
	if g.InBounds(34, 34) {
		g.SetCode(34, 34, tilecode.SpiderQueen)
	}
}
