package carving

import (
	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// FindRooms flood-fills every walkable tile not yet assigned a room id into
// a connected Room record, indexed from 0 in discovery order. Replaces any
// previously discovered rooms on g.
func FindRooms(g *grid.Grid) {
	g.Rooms = nil
	for i := range g.RoomID {
		g.RoomID[i] = -1
	}

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.RoomAt(x, y) != -1 {
				continue
			}
			if !tilecode.IsWalkable(g.Code(x, y)) {
				continue
			}
			fillRoom(g, x, y, len(g.Rooms))
		}
	}
}

// fillRoom performs a 4-connected BFS from (x0, y0) over walkable tiles,
// recording every member tile plus whether the component contains a
// staircase or intersects a Miniset-flagged tile.
func fillRoom(g *grid.Grid, x0, y0, id int) {
	room := &grid.Room{ID: id}
	queue := []grid.Point{{X: x0, Y: y0}}
	g.SetRoomAt(x0, y0, id)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		room.Tiles = append(room.Tiles, p)

		code := g.Code(p.X, p.Y)
		if code == tilecode.StairsUp || code == tilecode.StairsDown {
			room.HasStairs = true
		}
		if g.FlagsAt(p.X, p.Y)&tilecode.Miniset != 0 {
			room.IsMiniset = true
		}

		for _, d := range [4]grid.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !g.InBounds(nx, ny) || g.RoomAt(nx, ny) != -1 {
				continue
			}
			if !tilecode.IsWalkable(g.Code(nx, ny)) {
				continue
			}
			g.SetRoomAt(nx, ny, id)
			queue = append(queue, grid.Point{X: nx, Y: ny})
		}
	}

	g.Rooms = append(g.Rooms, room)
}
