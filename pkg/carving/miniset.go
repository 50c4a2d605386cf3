package carving

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/level"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// minisetScanAttempts bounds the random scan PlaceMiniSet performs looking
// for a matching, unobstructed footprint before reporting failure.
const minisetScanAttempts = 500

// rejectMask is the flag set that disqualifies a covered cell outright:
// any of the low 8 bits (door/chamber/protected state) or Secret.
const rejectMask = tilecode.Flag(0xFF) | tilecode.Secret

// PlaceMiniSet runs a bounded random scan for a position where m.Search
// matches tile_code pointwise (0 = wildcard) and no covered cell carries a
// rejectMask bit, then requires the footprint's center to satisfy
// is_good_place(center, 20, 0) before stamping m.Replace into the grid.
// Every touched cell is flagged Miniset. Reports whether placement
// succeeded.
func PlaceMiniSet(g *grid.Grid, m *level.Miniset, src *rng.Source) bool {
	w, h := m.Width(), m.Height()
	if w == 0 || h == 0 || w >= g.Size-2 || h >= g.Size-2 {
		return false
	}

	for attempt := 0; attempt < minisetScanAttempts; attempt++ {
		ox := src.Random(1, g.Size-1-w)
		oy := src.Random(1, g.Size-1-h)

		if !minisetMatches(g, m, ox, oy) {
			continue
		}

		center := grid.Point{X: ox + w/2, Y: oy + h/2}
		if !g.IsGoodPlaceLocation(center, 20, 0) {
			continue
		}

		applyMiniSet(g, m, ox, oy)
		return true
	}
	return false
}

func minisetMatches(g *grid.Grid, m *level.Miniset, ox, oy int) bool {
	for dx := 0; dx < m.Width(); dx++ {
		for dy := 0; dy < m.Height(); dy++ {
			x, y := ox+dx, oy+dy
			if g.FlagsAt(x, y)&rejectMask != 0 {
				return false
			}
			if want := m.Search[dx][dy]; want != 0 && int(g.Code(x, y)) != want {
				return false
			}
		}
	}
	return true
}

func applyMiniSet(g *grid.Grid, m *level.Miniset, ox, oy int) {
	for dx := 0; dx < m.Width(); dx++ {
		for dy := 0; dy < m.Height(); dy++ {
			x, y := ox+dx, oy+dy
			rep := m.Replace[dx][dy]
			if rep == 0 {
				g.AddFlags(x, y, tilecode.Miniset)
				continue
			}
			code := tilecode.Code(rep)
			g.SetCode(x, y, code)
			g.AddFlags(x, y, tilecode.Miniset)
			switch code {
			case tilecode.StairsDown:
				g.DownStairs = grid.Point{X: x, Y: y}
			case tilecode.StairsUp:
				g.UpStairs = grid.Point{X: x, Y: y}
			}
		}
	}
}
