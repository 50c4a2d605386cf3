package dungeon

import (
	"fmt"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// IsValid reports whether t is a tile coordinate within the grid.
func (d *Dungeon) IsValid(t grid.Point) bool {
	return d.Grid.InBounds(t.X, t.Y)
}

// IsRoomTile reports whether t's tile code is one of the walkable codes.
func (d *Dungeon) IsRoomTile(t grid.Point) bool {
	return tilecode.IsWalkable(d.Grid.Code(t.X, t.Y))
}

// IsClear reports whether t is passable, ignoring door-open state.
func (d *Dungeon) IsClear(t grid.Point) bool {
	return tilecode.IsClear(d.Grid.Code(t.X, t.Y), d.Grid.FlagsAt(t.X, t.Y), false)
}

// IsClearConsideringDoors reports whether t is passable, treating a closed
// door as impassable. This is the two-argument is_clear(tile, next)
// overload from spec.md §4.14, collapsed to a named method since Go has no
// overloading: next is only meaningful to isClear's diagonal-through-door
// rule, which pkg/pathing already applies internally during path-field
// construction, so here it answers for the tile itself.
func (d *Dungeon) IsClearConsideringDoors(t grid.Point) bool {
	return tilecode.IsClear(d.Grid.Code(t.X, t.Y), d.Grid.FlagsAt(t.X, t.Y), true)
}

// IsTransparent reports whether t is see-through for visibility.
func (d *Dungeon) IsTransparent(t grid.Point) bool {
	return tilecode.IsTransparent(d.Grid.Code(t.X, t.Y), d.Grid.FlagsAt(t.X, t.Y))
}

// IsTileNextToWall reports whether any of t's 8 neighbors is wall-like.
func (d *Dungeon) IsTileNextToWall(t grid.Point) bool {
	return d.Grid.IsNextToWall(t.X, t.Y)
}

// IsTileNextToDoor reports whether any of t's 8 neighbors is a door code.
func (d *Dungeon) IsTileNextToDoor(t grid.Point) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if tilecode.IsDoorCode(d.Grid.Code(t.X+dx, t.Y+dy)) {
				return true
			}
		}
	}
	return false
}

// IsDark reports whether t is marked dark.
func (d *Dungeon) IsDark(t grid.Point) bool {
	return d.Grid.IsDark(t.X, t.Y)
}

// IsChasm reports whether t carries the Chasm flag.
func (d *Dungeon) IsChasm(t grid.Point) bool {
	return d.Grid.FlagsAt(t.X, t.Y)&tilecode.Chasm != 0
}

// IsWebFloor reports whether t carries the WebFloor flag.
func (d *Dungeon) IsWebFloor(t grid.Point) bool {
	return d.Grid.FlagsAt(t.X, t.Y)&tilecode.WebFloor != 0
}

// IsSecretRoom reports whether t carries the Secret flag.
func (d *Dungeon) IsSecretRoom(t grid.Point) bool {
	return d.Grid.FlagsAt(t.X, t.Y)&tilecode.Secret != 0
}

// GetRoom returns the discovered room containing t, or nil if t is not a
// room tile.
func (d *Dungeon) GetRoom(t grid.Point) *grid.Room {
	id := d.Grid.RoomAt(t.X, t.Y)
	if id < 0 || id >= len(d.Grid.Rooms) {
		return nil
	}
	return d.Grid.Rooms[id]
}

// ErrNotADoor is returned by SetDoorOpen/SetDoorClosed when t is not a
// door tile.
var ErrNotADoor = fmt.Errorf("dungeon: tile is not a door")

// SetDoorOpen marks the door at t open, failing if t is not a door. Opening
// a door can change what's transparent from the player's last-known
// position, so it invalidates the cached visibility mask.
func (d *Dungeon) SetDoorOpen(t grid.Point) error {
	if !tilecode.IsDoorCode(d.Grid.Code(t.X, t.Y)) {
		return ErrNotADoor
	}
	d.Grid.ClearFlagBit(t.X, t.Y, tilecode.DoorClosed)
	d.Visibility.Invalidate()
	return nil
}

// SetDoorClosed marks the door at t closed, failing if t is not a door.
// Like SetDoorOpen, it invalidates the cached visibility mask.
func (d *Dungeon) SetDoorClosed(t grid.Point) error {
	if !tilecode.IsDoorCode(d.Grid.Code(t.X, t.Y)) {
		return ErrNotADoor
	}
	d.Grid.AddFlags(t.X, t.Y, tilecode.DoorClosed)
	d.Visibility.Invalidate()
	return nil
}

// NextMove returns the tile one step along the precomputed path from src
// toward dst.
func (d *Dungeon) NextMove(src, dst grid.Point) grid.Point {
	return d.Field.NextMove(src, dst)
}

// CalculateVisibility recomputes the visibility mask for player, a no-op
// if player is the same tile as the last call.
func (d *Dungeon) CalculateVisibility(player grid.Point) {
	d.Visibility.Calculate(d.Grid, player)
}

// IsTileVisible reports whether t is marked visible by the last
// CalculateVisibility call.
func (d *Dungeon) IsTileVisible(t grid.Point) bool {
	if !d.Grid.InBounds(t.X, t.Y) {
		return false
	}
	return d.Grid.Visibility[t.Y*d.Grid.Size+t.X]
}

// GetTerrainGrid returns the projected terrain ASCII layer.
func (d *Dungeon) GetTerrainGrid() []byte {
	return d.Grid.AsciiTerrain
}

// GetMobjGrid returns the projected monster/object ASCII layer.
func (d *Dungeon) GetMobjGrid() []byte {
	return d.Grid.AsciiMobj
}

// GetDarknessGrid returns the darkness layer ('*' dark, ' ' lit).
func (d *Dungeon) GetDarknessGrid() []byte {
	return d.Grid.Darkness
}

// GetRandomAdjTile returns a random clear tile adjacent to pos, or pos
// itself if none of its 8 neighbors are clear. Mirrors original_source's
// GetRandomAdjTile helper, used by callers that want to spawn something
// near a fixed point (e.g. the stairs) without landing on top of it.
func (d *Dungeon) GetRandomAdjTile(pos grid.Point, randomIndex func(n int) int) grid.Point {
	var candidates []grid.Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			t := grid.Point{X: pos.X + dx, Y: pos.Y + dy}
			if d.IsValid(t) && d.IsClear(t) {
				candidates = append(candidates, t)
			}
		}
	}
	if len(candidates) == 0 {
		return pos
	}
	return candidates[randomIndex(len(candidates))]
}
