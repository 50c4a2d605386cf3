package pathing

import (
	"testing"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

func openRoomVis(size int) *grid.Grid {
	g := grid.New(size, 1, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.SetCode(x, y, tilecode.Floor)
		}
	}
	return g
}

func TestVisibility_PlayerTileAlwaysVisible(t *testing.T) {
	g := openRoomVis(21)
	v := NewVisibility()
	player := grid.Point{X: 10, Y: 10}

	v.Calculate(g, player)

	if !g.Visibility[player.Y*g.Size+player.X] {
		t.Fatalf("player tile not marked visible")
	}
}

func TestVisibility_NoOpaqueTileMarkedVisible(t *testing.T) {
	g := openRoomVis(21)
	// Ring of walls blocks rays.
	for x := 5; x <= 15; x++ {
		g.SetCode(x, 5, tilecode.VWall)
		g.SetCode(x, 15, tilecode.VWall)
	}
	for y := 5; y <= 15; y++ {
		g.SetCode(5, y, tilecode.VWall)
		g.SetCode(15, y, tilecode.VWall)
	}

	v := NewVisibility()
	player := grid.Point{X: 10, Y: 10}
	v.Calculate(g, player)

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if !g.Visibility[y*g.Size+x] {
				continue
			}
			if !tilecode.IsTransparent(g.Code(x, y), g.FlagsAt(x, y)) {
				t.Fatalf("opaque tile (%d,%d) code=%d marked visible", x, y, g.Code(x, y))
			}
		}
	}
}

func TestVisibility_SkipsRecomputeOnSameTile(t *testing.T) {
	g := openRoomVis(21)
	v := NewVisibility()
	player := grid.Point{X: 10, Y: 10}

	v.Calculate(g, player)
	g.Visibility[0] = true // sentinel a real recompute would clear
	v.Calculate(g, player)

	if !g.Visibility[0] {
		t.Fatalf("Calculate recomputed on an unchanged player tile")
	}
}

func TestVisibility_DoorTogglingChangesVisibilityBeyondIt(t *testing.T) {
	g := openRoomVis(11)
	// Vertical wall at x=6 with a door at (6,5).
	for y := 0; y < 11; y++ {
		g.SetCode(6, y, tilecode.VWall)
	}
	g.SetCode(6, 5, tilecode.HDoorClosed)
	g.AddFlags(6, 5, tilecode.DoorClosed)

	player := grid.Point{X: 4, Y: 5}
	beyond := grid.Point{X: 8, Y: 5}

	v := NewVisibility()
	v.Calculate(g, player)
	if g.Visibility[beyond.Y*g.Size+beyond.X] {
		t.Fatalf("tile beyond closed door unexpectedly visible")
	}

	g.ClearFlagBit(6, 5, tilecode.DoorClosed)
	v.Invalidate() // player hasn't moved; door toggle must force a recompute
	v.Calculate(g, player)
	if !g.Visibility[beyond.Y*g.Size+beyond.X] {
		t.Fatalf("tile beyond open door expected visible")
	}
}

func TestVisibility_InvalidateForcesRecomputeOnSameTile(t *testing.T) {
	g := openRoomVis(21)
	v := NewVisibility()
	player := grid.Point{X: 10, Y: 10}

	v.Calculate(g, player)
	g.Visibility[0] = true // sentinel a real recompute would clear
	v.Invalidate()
	v.Calculate(g, player)

	if g.Visibility[0] {
		t.Fatalf("Calculate skipped recompute after Invalidate on an unchanged player tile")
	}
}
