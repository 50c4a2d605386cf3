package carving

import (
	"testing"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

func TestCarveChambers_CarvesRoomCell(t *testing.T) {
	g := grid.New(80, 8, 10)
	g.SetChamber(3, 3, grid.ChamberRoom)
	CarveChambers(g, 1, rng.New(3))

	var carved int
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.Code(x, y) != tilecode.Unset {
				carved++
			}
		}
	}
	if carved == 0 {
		t.Fatal("CarveChambers left the room cell entirely unset")
	}
}

func TestCheckRoom_RejectsOverlap(t *testing.T) {
	g := grid.New(40, 4, 10)
	drawRoom(g, 5, 5, 4, 4, 0)

	if checkRoom(g, 6, 6, 2, 2) {
		t.Error("checkRoom accepted a placement overlapping carved tiles")
	}
	if !checkRoom(g, 20, 20, 4, 4) {
		t.Error("checkRoom rejected a clear placement")
	}
}

func TestCheckRoom_RejectsOutOfBounds(t *testing.T) {
	g := grid.New(40, 4, 10)
	if checkRoom(g, 0, 0, 5, 5) {
		t.Error("checkRoom accepted a placement touching the grid edge")
	}
	if checkRoom(g, 35, 35, 10, 10) {
		t.Error("checkRoom accepted a placement running off the grid")
	}
}

func TestRoomGen_Deterministic(t *testing.T) {
	g1 := grid.New(80, 8, 10)
	RoomGen(g1, 30, 30, 10, 10, 0, 1, false, rng.New(99))

	g2 := grid.New(80, 8, 10)
	RoomGen(g2, 30, 30, 10, 10, 0, 1, false, rng.New(99))

	for i := range g1.TileCode {
		if g1.TileCode[i] != g2.TileCode[i] {
			t.Fatalf("RoomGen diverged at tile %d for identical seed", i)
		}
	}
}
