package carving

import (
	"testing"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/level"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

func floorRoom(g *grid.Grid, x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			g.SetCode(i, j, tilecode.Floor)
		}
	}
}

func TestPlaceMiniSet_StairsDown(t *testing.T) {
	g := grid.New(40, 4, 10)
	floorRoom(g, 5, 5, 20, 20)

	m := &level.Miniset{
		Name:    "STAIRS_DOWN",
		Search:  [][]int{{int(tilecode.Floor)}},
		Replace: [][]int{{int(tilecode.StairsDown)}},
	}

	ok := PlaceMiniSet(g, m, rng.New(3))
	if !ok {
		t.Fatal("PlaceMiniSet failed to place STAIRS_DOWN in an open floor room")
	}
	if g.DownStairs.X < 0 {
		t.Error("PlaceMiniSet did not record DownStairs")
	}
	if g.Code(g.DownStairs.X, g.DownStairs.Y) != tilecode.StairsDown {
		t.Error("recorded DownStairs tile does not carry the StairsDown code")
	}
	if g.FlagsAt(g.DownStairs.X, g.DownStairs.Y)&tilecode.Miniset == 0 {
		t.Error("placed miniset tile missing Miniset flag")
	}
}

func TestPlaceMiniSet_RejectsSecretFlaggedArea(t *testing.T) {
	g := grid.New(40, 4, 10)
	floorRoom(g, 5, 5, 3, 3)
	for j := 5; j < 8; j++ {
		for i := 5; i < 8; i++ {
			g.AddFlags(i, j, tilecode.Secret)
		}
	}

	m := &level.Miniset{
		Name:    "STAIRS_DOWN",
		Search:  [][]int{{int(tilecode.Floor)}},
		Replace: [][]int{{int(tilecode.StairsDown)}},
	}

	if PlaceMiniSet(g, m, rng.New(3)) {
		t.Error("PlaceMiniSet placed over a Secret-flagged area")
	}
}

func TestPlaceMiniSet_NoMatchFails(t *testing.T) {
	g := grid.New(40, 4, 10) // all Unset, never Floor

	m := &level.Miniset{
		Name:    "STAIRS_DOWN",
		Search:  [][]int{{int(tilecode.Floor)}},
		Replace: [][]int{{int(tilecode.StairsDown)}},
	}

	if PlaceMiniSet(g, m, rng.New(3)) {
		t.Error("PlaceMiniSet succeeded with no matching tile anywhere")
	}
}
