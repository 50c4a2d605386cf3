package themes

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/rng"
)

// ID names one of the seven closed theme-room variants.
type ID string

const (
	Library           ID = "library"
	Chest             ID = "chest"
	Dark              ID = "dark"
	WebFloor          ID = "web_floor"
	Chasm             ID = "chasm"
	Spinner           ID = "spinner"
	RotatingPlatforms ID = "rotating_platforms"
)

// Theme is one closed theme-room variant: it decides whether a discovered
// room qualifies for its size/shape gate, then mutates the grid to apply
// its effect.
type Theme interface {
	ID() ID
	Qualifies(g *grid.Grid, room *grid.Room) bool
	Apply(g *grid.Grid, room *grid.Room, lvl int, src *rng.Source) bool
}

// all is the exhaustive registry the dispatcher scans. There is
// intentionally no generic map-based lookup path: adding an eighth theme
// means extending this literal and the switch in Get.
var all = []Theme{
	libraryTheme{},
	chestTheme{},
	darkTheme{},
	webFloorTheme{},
	chasmTheme{},
	spinnerTheme{},
	rotatingPlatformsTheme{},
}

// Get resolves a theme by name. The switch is exhaustive over the closed
// ID set; an unrecognized name reports ok=false rather than panicking,
// since theme names ultimately come from level YAML data.
func Get(id ID) (Theme, bool) {
	switch id {
	case Library:
		return libraryTheme{}, true
	case Chest:
		return chestTheme{}, true
	case Dark:
		return darkTheme{}, true
	case WebFloor:
		return webFloorTheme{}, true
	case Chasm:
		return chasmTheme{}, true
	case Spinner:
		return spinnerTheme{}, true
	case RotatingPlatforms:
		return rotatingPlatformsTheme{}, true
	default:
		return nil, false
	}
}

// Names lists every closed theme ID, for validation and test enumeration.
func Names() []ID {
	names := make([]ID, len(all))
	for i, th := range all {
		names[i] = th.ID()
	}
	return names
}

// maxThemeRoomAttempts bounds ApplyThemeRooms' search for qualifying rooms.
const maxThemeRoomAttempts = 100

// ApplyThemeRooms attempts to stamp target theme rooms chosen from names,
// scanning g.Rooms for an unclaimed room (no stairs, not a miniset, not
// already themed) that qualifies for a randomly chosen theme from names.
// Reports success iff at least target rooms were themed within
// maxThemeRoomAttempts tries.
func ApplyThemeRooms(g *grid.Grid, lvl int, names []ID, target int, src *rng.Source) bool {
	if target <= 0 {
		return true
	}
	if len(names) == 0 {
		return false
	}

	claimed := make(map[int]bool, len(g.Rooms))
	placed := 0

	for attempt := 0; attempt < maxThemeRoomAttempts && placed < target; attempt++ {
		name := names[src.Random(0, len(names))]
		th, ok := Get(name)
		if !ok {
			continue
		}

		room := pickCandidateRoom(g, claimed, th, src)
		if room == nil {
			continue
		}

		if th.Apply(g, room, lvl, src) {
			claimed[room.ID] = true
			placed++
		}
	}

	return placed >= target
}

// pickCandidateRoom scans for a discovered room with no stairs, not a
// miniset, not yet themed, that Qualifies for th.
func pickCandidateRoom(g *grid.Grid, claimed map[int]bool, th Theme, src *rng.Source) *grid.Room {
	if len(g.Rooms) == 0 {
		return nil
	}
	start := src.Random(0, len(g.Rooms))
	for i := 0; i < len(g.Rooms); i++ {
		room := g.Rooms[(start+i)%len(g.Rooms)]
		if room.HasStairs || room.IsMiniset || claimed[room.ID] {
			continue
		}
		if th.Qualifies(g, room) {
			return room
		}
	}
	return nil
}
