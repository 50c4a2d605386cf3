package validation

import (
	"fmt"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// checkStairs verifies that an up and a down staircase position were
// recorded and that the tiles at those positions carry the matching stair
// codes. It does not count stair tiles elsewhere on the grid.
func checkStairs(g *grid.Grid, r *Report) {
	if g.DownStairs.X < 0 || g.DownStairs.Y < 0 {
		r.addError("stairs", "no down staircase recorded")
	} else if g.Code(g.DownStairs.X, g.DownStairs.Y) != tilecode.StairsDown {
		r.addError("stairs", fmt.Sprintf("tile at recorded down-stairs position %v is not StairsDown", g.DownStairs))
	} else {
		r.addPass("stairs", "down staircase present and consistent")
	}

	if g.UpStairs.X < 0 || g.UpStairs.Y < 0 {
		r.addError("stairs", "no up staircase recorded")
	} else if g.Code(g.UpStairs.X, g.UpStairs.Y) != tilecode.StairsUp {
		r.addError("stairs", fmt.Sprintf("tile at recorded up-stairs position %v is not StairsUp", g.UpStairs))
	} else {
		r.addPass("stairs", "up staircase present and consistent")
	}
}

// checkRoomPartition verifies every discovered room's tiles are walkable
// and that RoomID agrees with Rooms[i].Tiles in both directions: a tile
// claimed by a room must point back to it, and no walkable tile should be
// left outside every room (room discovery is a flood fill over walkable
// tiles, so it should partition them completely).
func checkRoomPartition(g *grid.Grid, r *Report) {
	claimed := 0
	for i, room := range g.Rooms {
		for _, t := range room.Tiles {
			if !tilecode.IsWalkable(g.Code(t.X, t.Y)) {
				r.addError("room-partition", fmt.Sprintf("room %d claims non-walkable tile %v", i, t))
				return
			}
			if g.RoomAt(t.X, t.Y) != room.ID {
				r.addError("room-partition", fmt.Sprintf("tile %v claimed by room %d but RoomID says %d", t, room.ID, g.RoomAt(t.X, t.Y)))
				return
			}
			claimed++
		}
	}

	walkable := 0
	unclaimed := 0
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if !tilecode.IsWalkable(g.Code(x, y)) {
				continue
			}
			walkable++
			if g.RoomAt(x, y) < 0 {
				unclaimed++
			}
		}
	}

	if unclaimed > 0 {
		r.addWarning("room-partition", fmt.Sprintf("%d of %d walkable tiles belong to no discovered room", unclaimed, walkable))
	} else {
		r.addPass("room-partition", fmt.Sprintf("%d walkable tiles fully partitioned across %d rooms", walkable, len(g.Rooms)))
	}
}

// checkDoorConsistency verifies every door-coded tile projects to a door
// character: 'd' for the horizontal door, 'D' for the vertical one. The
// projection is the same whether the door is open or closed.
func checkDoorConsistency(g *grid.Grid, r *Report) {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			code := g.Code(x, y)
			if !tilecode.IsDoorCode(code) {
				continue
			}
			ch := tilecode.ASCII(code)
			if ch != 'd' && ch != 'D' {
				r.addError("door-consistency", fmt.Sprintf("door at (%d,%d) projects to %q, want 'd' or 'D'", x, y, ch))
				return
			}
		}
	}
	r.addPass("door-consistency", "every door tile projects to a door character")
}

// pathField is the minimal interface checkPathField needs, satisfied by
// *pathing.Field; declared here so this package does not import pathing
// just to read it back.
type pathField interface {
	Dir(dx, dy, sx, sy int) int
	Dist(dx, dy, sx, sy int) float32
}

// checkPathField verifies the self-loop case (each of up to 200 walkable
// tiles is its own destination at distance 0, direction Self) and checks
// reachability from the first tile of every discovered room to the down
// staircase, warning (not
// failing) on any room the field could not reach within its search bound
// -- spec.md's radius cutoff means some distant rooms are expected to read
// back unreachable even in a healthy dungeon.
func checkPathField(g *grid.Grid, f pathField, r *Report) {
	selfOK := true
	checked := 0
	for y := 0; y < g.Size && checked < 200; y++ {
		for x := 0; x < g.Size && checked < 200; x++ {
			if !tilecode.IsWalkable(g.Code(x, y)) {
				continue
			}
			checked++
			if f.Dir(x, y, x, y) != tilecode.Self || f.Dist(x, y, x, y) != 0 {
				selfOK = false
			}
		}
	}
	if selfOK {
		r.addPass("path-self-loop", fmt.Sprintf("%d sampled walkable tiles resolve to themselves at distance 0", checked))
	} else {
		r.addError("path-self-loop", "a walkable tile's own-tile direction is not Self or its distance is not 0")
	}

	if g.DownStairs.X < 0 {
		return
	}
	unreachable := 0
	for _, room := range g.Rooms {
		if len(room.Tiles) == 0 {
			continue
		}
		t := room.Tiles[0]
		if f.Dir(g.DownStairs.X, g.DownStairs.Y, t.X, t.Y) == tilecode.Unreachable {
			unreachable++
		}
	}
	if unreachable > 0 {
		r.addWarning("path-reachability", fmt.Sprintf("%d of %d rooms have no recorded path to the down staircase within the search radius", unreachable, len(g.Rooms)))
	} else {
		r.addPass("path-reachability", fmt.Sprintf("all %d rooms have a path to the down staircase", len(g.Rooms)))
	}
}

// checkSecretAdjacency verifies every tile flagged Secret is adjacent to at
// least one ordinary room tile, since an isolated secret room the player
// could never path next to would be undiscoverable.
func checkSecretAdjacency(g *grid.Grid, r *Report) {
	isolated := 0
	secretTiles := 0
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.FlagsAt(x, y)&tilecode.Secret == 0 {
				continue
			}
			secretTiles++
			if !hasWalkableNeighbor(g, x, y) {
				isolated++
			}
		}
	}
	if secretTiles == 0 {
		r.addPass("secret-adjacency", "no secret tiles generated")
		return
	}
	if isolated > 0 {
		r.addWarning("secret-adjacency", fmt.Sprintf("%d of %d secret tiles have no walkable neighbor", isolated, secretTiles))
	} else {
		r.addPass("secret-adjacency", fmt.Sprintf("all %d secret tiles are reachable from an adjacent walkable tile", secretTiles))
	}
}

func hasWalkableNeighbor(g *grid.Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if tilecode.IsWalkable(g.Code(x+dx, y+dy)) {
				return true
			}
		}
	}
	return false
}
