package themes

import (
	"github.com/opd-ai/dlrg/pkg/content"
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/rng"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// libraryGroupMonsters is the fallback monster roster a themed library
// room seeds its guard group from when the level's own roster is unknown
// to the theme (themes apply before content placement and don't carry
// level params, so they draw from this small fixed set).
var libraryGroupMonsters = []int{int(tilecode.Spiderling)}

// libraryTheme places one bookshelf against a wall away from any door,
// two pedestals in the room's interior, and one monster group.
type libraryTheme struct{}

func (libraryTheme) ID() ID { return Library }

func (libraryTheme) Qualifies(_ *grid.Grid, room *grid.Room) bool {
	n := len(room.Tiles)
	return n >= 14 && n <= 30
}

func (libraryTheme) Apply(g *grid.Grid, room *grid.Room, lvl int, src *rng.Source) bool {
	shelf, ok := wallAdjacentTile(g, room, src)
	if !ok {
		return false
	}
	g.SetCode(shelf.X, shelf.Y, tilecode.Bookshelf)

	placed := 0
	for attempt := 0; attempt < 10 && placed < 2; attempt++ {
		p, ok := interiorTile(g, room, src)
		if !ok {
			break
		}
		if p == shelf || g.Code(p.X, p.Y) != tilecode.Floor {
			continue
		}
		g.SetCode(p.X, p.Y, tilecode.Pedestal)
		placed++
	}

	center := roomCenter(room)
	content.PlaceMonsterGroupAt(g, libraryGroupMonsters, lvl, center, 2, src)
	return true
}

// chestTheme places one chest not near a door, plus one monster group.
type chestTheme struct{}

func (chestTheme) ID() ID { return Chest }

func (chestTheme) Qualifies(_ *grid.Grid, room *grid.Room) bool {
	n := len(room.Tiles)
	return n >= 8 && n <= 20
}

func (chestTheme) Apply(g *grid.Grid, room *grid.Room, lvl int, src *rng.Source) bool {
	if !placeChest(g, room, src) {
		return false
	}
	content.PlaceMonsterGroupAt(g, libraryGroupMonsters, lvl, roomCenter(room), 2, src)
	return true
}

// placeChest stamps a chest onto a room tile that is not next to a door,
// preferring a floor tile.
func placeChest(g *grid.Grid, room *grid.Room, src *rng.Source) bool {
	candidates := make([]grid.Point, 0, len(room.Tiles))
	for _, p := range room.Tiles {
		if g.Code(p.X, p.Y) == tilecode.Floor && !isNextToDoor(g, p.X, p.Y) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	p := candidates[src.Random(0, len(candidates))]
	g.SetCode(p.X, p.Y, tilecode.Chest)
	return true
}

// darkTheme sets every tile in the room dark and adds a chest.
type darkTheme struct{}

func (darkTheme) ID() ID { return Dark }

func (darkTheme) Qualifies(_ *grid.Grid, room *grid.Room) bool {
	n := len(room.Tiles)
	return n >= 14 && n <= 30
}

func (darkTheme) Apply(g *grid.Grid, room *grid.Room, _ int, src *rng.Source) bool {
	for _, p := range room.Tiles {
		g.SetDark(p.X, p.Y, true)
	}
	placeChest(g, room, src)
	return true
}

// webFloorTheme sets the WebFloor flag on every tile in the room and adds
// a chest.
type webFloorTheme struct{}

func (webFloorTheme) ID() ID { return WebFloor }

func (webFloorTheme) Qualifies(_ *grid.Grid, room *grid.Room) bool {
	n := len(room.Tiles)
	return n >= 14 && n <= 30
}

func (webFloorTheme) Apply(g *grid.Grid, room *grid.Room, _ int, src *rng.Source) bool {
	for _, p := range room.Tiles {
		g.AddFlags(p.X, p.Y, tilecode.WebFloor)
	}
	placeChest(g, room, src)
	return true
}

// chasmTheme converts a corridor-shaped room's body to chasm, flanked by
// hanging-floor tiles at either end.
type chasmTheme struct{}

func (chasmTheme) ID() ID { return Chasm }

func (chasmTheme) Qualifies(_ *grid.Grid, room *grid.Room) bool {
	return isCorridorShaped(room)
}

func (chasmTheme) Apply(g *grid.Grid, room *grid.Room, _ int, _ *rng.Source) bool {
	minX, minY, maxX, maxY := bounds(room)
	horizontal := (maxX - minX) >= (maxY - minY)

	for _, p := range room.Tiles {
		var edge bool
		if horizontal {
			edge = p.X == minX || p.X == maxX
		} else {
			edge = p.Y == minY || p.Y == maxY
		}
		if edge {
			g.SetCode(p.X, p.Y, tilecode.HangingCode)
		} else {
			g.SetCode(p.X, p.Y, tilecode.ChasmCode)
		}
		g.AddFlags(p.X, p.Y, tilecode.Chasm)
	}
	return true
}

// spinnerTheme carves an 8x8 chasm around a central spinner tile inside a
// 10x10 chamber.
type spinnerTheme struct{}

func (spinnerTheme) ID() ID { return Spinner }

func (spinnerTheme) Qualifies(g *grid.Grid, room *grid.Room) bool {
	return isChamberShaped(g, room)
}

func (spinnerTheme) Apply(g *grid.Grid, room *grid.Room, _ int, _ *rng.Source) bool {
	minX, minY, _, _ := bounds(room)
	cx, cy := minX+5, minY+5

	for dy := -4; dy <= 3; dy++ {
		for dx := -4; dx <= 3; dx++ {
			x, y := cx+dx, cy+dy
			if !g.InBounds(x, y) {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			g.SetCode(x, y, tilecode.ChasmCode)
			g.AddFlags(x, y, tilecode.Chasm)
		}
	}
	g.SetCode(cx, cy, tilecode.SpinnerCode)
	return true
}

// rotatingPlatformsTheme lays a chasm-and-plank pattern down a
// corridor-shaped room, with platform-endpoint codes at its four corners.
type rotatingPlatformsTheme struct{}

func (rotatingPlatformsTheme) ID() ID { return RotatingPlatforms }

func (rotatingPlatformsTheme) Qualifies(_ *grid.Grid, room *grid.Room) bool {
	return isCorridorShaped(room)
}

func (rotatingPlatformsTheme) Apply(g *grid.Grid, room *grid.Room, _ int, _ *rng.Source) bool {
	minX, minY, maxX, maxY := bounds(room)
	horizontal := (maxX - minX) >= (maxY - minY)

	for i, p := range room.Tiles {
		switch {
		case p == (grid.Point{X: minX, Y: minY}):
			g.SetCode(p.X, p.Y, tilecode.PlatformEndpoints[0])
		case p == (grid.Point{X: maxX, Y: minY}):
			g.SetCode(p.X, p.Y, tilecode.PlatformEndpoints[1])
		case p == (grid.Point{X: minX, Y: maxY}):
			g.SetCode(p.X, p.Y, tilecode.PlatformEndpoints[2])
		case p == (grid.Point{X: maxX, Y: maxY}):
			g.SetCode(p.X, p.Y, tilecode.PlatformEndpoints[3])
		default:
			plank := tilecode.PlankH
			if !horizontal {
				plank = tilecode.PlankV
			}
			if i%2 == 0 {
				g.SetCode(p.X, p.Y, tilecode.ChasmCode)
				g.AddFlags(p.X, p.Y, tilecode.Chasm)
			} else {
				g.SetCode(p.X, p.Y, plank)
			}
		}
	}
	return true
}
