package carving

import (
	"testing"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

func TestPlaceDoors_RewritesHDoorFlag(t *testing.T) {
	g := grid.New(10, 1, 10)
	g.SetCode(4, 4, tilecode.HWall)
	g.AddFlags(4, 4, tilecode.HDoor)

	PlaceDoors(g)

	if g.Code(4, 4) != tilecode.HDoorClosed {
		t.Errorf("code = %d, want HDoorClosed", g.Code(4, 4))
	}
	if g.FlagsAt(4, 4) != tilecode.Protected {
		t.Errorf("flags = %d, want Protected only", g.FlagsAt(4, 4))
	}
}

func TestPlaceDoors_RewritesVDoorFlag(t *testing.T) {
	g := grid.New(10, 1, 10)
	g.SetCode(4, 4, tilecode.VWall)
	g.AddFlags(4, 4, tilecode.VDoor)

	PlaceDoors(g)

	if g.Code(4, 4) != tilecode.VDoorClosed {
		t.Errorf("code = %d, want VDoorClosed", g.Code(4, 4))
	}
}

func TestPlaceDoors_SkipsProtectedTile(t *testing.T) {
	g := grid.New(10, 1, 10)
	g.SetCode(4, 4, tilecode.HWall)
	g.SetFlags(4, 4, tilecode.Protected)

	PlaceDoors(g)

	if g.Code(4, 4) != tilecode.HWall {
		t.Errorf("PlaceDoors rewrote a Protected tile: code = %d", g.Code(4, 4))
	}
}
