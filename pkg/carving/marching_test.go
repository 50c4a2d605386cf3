package carving

import (
	"testing"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

func TestMakeMarchingTiles_InteriorBecomesFloor(t *testing.T) {
	g := grid.New(20, 2, 10)
	for y := 2; y < 10; y++ {
		for x := 2; x < 10; x++ {
			g.SetCode(x, y, tilecode.VWall)
		}
	}
	MakeMarchingTiles(g)

	if g.Code(5, 5) != tilecode.Floor {
		t.Errorf("interior tile = %d, want Floor", g.Code(5, 5))
	}
}

func TestMakeMarchingTiles_NeverCarvedBecomesVoid(t *testing.T) {
	g := grid.New(20, 2, 10)
	MakeMarchingTiles(g)

	if g.Code(0, 0) != tilecode.Void {
		t.Errorf("untouched tile = %d, want Void", g.Code(0, 0))
	}
}

func TestMakeMarchingTiles_EdgeBecomesWallOrCorner(t *testing.T) {
	g := grid.New(20, 2, 10)
	for y := 2; y < 10; y++ {
		for x := 2; x < 10; x++ {
			g.SetCode(x, y, tilecode.VWall)
		}
	}
	MakeMarchingTiles(g)

	if top := g.Code(5, 2); top != tilecode.HWall {
		t.Errorf("top edge tile = %d, want HWall", top)
	}
}
