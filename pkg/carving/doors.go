package carving

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// PlaceDoors rewrites every tile flagged HDoor/VDoor into its concrete
// door code, then stamps the tile's flags to Protected only — a full
// overwrite, not an OR, matching the original's final `flags[x][y] =
// DLRG_PROTECTED`. Tiles already Protected are left untouched.
func PlaceDoors(g *grid.Grid) {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			f := g.FlagsAt(x, y)
			if f&tilecode.Protected != 0 {
				continue
			}
			switch {
			case f&tilecode.HDoor != 0:
				g.SetCode(x, y, tilecode.HDoorClosed)
				g.SetFlags(x, y, tilecode.Protected)
			case f&tilecode.VDoor != 0:
				g.SetCode(x, y, tilecode.VDoorClosed)
				g.SetFlags(x, y, tilecode.Protected)
			}
		}
	}
}
