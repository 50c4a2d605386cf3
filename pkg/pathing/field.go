package pathing

import (
	"container/heap"
	"math"

	"github.com/opd-ai/dlrg/pkg/grid"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// manhattanBound is the hard search radius (in tiles) around a
// destination: neighbors farther than this are never relaxed, per spec.
const manhattanBound = 15

// Field is the all-pairs direction field for one generated grid: for every
// walkable destination d and every tile s, Dir(d, s) is the 3x3 direction
// code of the first step from s toward d, and Dist(d, s) is the minimum
// path cost. Unreached or out-of-bound entries read back as code 9
// (unreachable) and +Inf.
type Field struct {
	size int
	dir  []uint8
	dist []float32
}

// idx returns the flattened index of (dest, src) into the 4-D tables.
func (f *Field) idx(dx, dy, sx, sy int) int {
	n := f.size
	return (dy*n+dx)*n*n + sy*n + sx
}

// Build runs Dijkstra from every walkable destination tile, in row-major
// order, over the 8-neighborhood of tiles that IsClear permits, storing
// the first-step direction code and minimum distance back to each source.
// Non-walkable destinations are left fully unreachable, since the solver
// only ever needs paths to floor tiles (stairs, rooms, doorways).
//
// spec §4.12 describes a warm-start optimization: seed each destination's
// plane from its row-major predecessor's plane and short-circuit expansion
// wherever the carried-over code still matches. That's a performance
// heuristic, not a correctness requirement — every plane here is solved
// fresh by a full Dijkstra, which is slower but cannot silently miscompute
// a shortcut from a neighboring destination's plane.
func Build(g *grid.Grid) *Field {
	n := g.Size
	f := &Field{
		size: n,
		dir:  make([]uint8, n*n*n*n),
		dist: make([]float32, n*n*n*n),
	}
	for i := range f.dir {
		f.dir[i] = tilecode.Unreachable
		f.dist[i] = float32(math.Inf(1))
	}

	for dy := 0; dy < n; dy++ {
		for dx := 0; dx < n; dx++ {
			if !tilecode.IsWalkable(g.Code(dx, dy)) {
				continue
			}
			f.dijkstraFrom(g, dx, dy)
		}
	}
	return f
}

// dijkstraFrom computes shortest paths from destination (dx, dy) to every
// tile within manhattanBound, recording at each reached source the
// direction of the first step FROM that source TOWARD the destination.
func (f *Field) dijkstraFrom(g *grid.Grid, dx, dy int) {
	n := f.size
	base := (dy*n + dx) * n * n

	planeDist := make([]float32, n*n)
	for i := range planeDist {
		planeDist[i] = float32(math.Inf(1))
	}
	firstStep := make([]int8, n*n)
	for i := range firstStep {
		firstStep[i] = -1
	}

	srcIdx := dy*n + dx
	planeDist[srcIdx] = 0
	firstStep[srcIdx] = tilecode.Self

	pq := &nodeHeap{{idx: srcIdx, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(node)
		if top.dist > planeDist[top.idx] {
			continue
		}
		sx, sy := top.idx%n, top.idx/n

		for code := 0; code < 9; code++ {
			o := tilecode.DirOffsets[code]
			nx, ny := sx+o.DX, sy+o.DY
			if nx == sx && ny == sy {
				continue
			}
			if !g.InBounds(nx, ny) {
				continue
			}
			if abs(nx-dx)+abs(ny-dy) > manhattanBound {
				continue
			}
			if !isClear(g, sx, sy, nx, ny) {
				continue
			}

			cost := tilecode.MoveCost[code]
			nd := top.dist + cost
			ni := ny*n + nx
			if nd < planeDist[ni] {
				planeDist[ni] = nd
				// (sx,sy) was settled with a smaller distance, i.e. it is
				// the next hop toward the destination from (nx,ny): the
				// step to record at the neighbor is the offset that walks
				// from (nx,ny) onto (sx,sy).
				firstStep[ni] = int8(tilecode.OffsetToCode(sx-nx, sy-ny))
				heap.Push(pq, node{idx: ni, dist: nd})
			}
		}
	}

	for i := 0; i < n*n; i++ {
		if firstStep[i] < 0 {
			continue
		}
		f.dir[base+i] = uint8(firstStep[i])
		f.dist[base+i] = planeDist[i]
	}
}

// isClear reports whether movement from (sx,sy) to (nx,ny) is permitted:
// the destination tile must be passable, and a diagonal step may not pass
// through a door (doors accept only orthogonal transit).
func isClear(g *grid.Grid, sx, sy, nx, ny int) bool {
	code := g.Code(nx, ny)
	if !tilecode.IsClear(code, 0, false) {
		return false
	}
	diagonal := nx != sx && ny != sy
	if diagonal {
		if tilecode.IsDoorCode(code) || tilecode.IsDoorCode(g.Code(sx, sy)) {
			return false
		}
	}
	return true
}

// Dir returns the direction code (0-9) of the first step from (sx,sy)
// toward destination (dx,dy); 9 if unreachable or out of bounds.
func (f *Field) Dir(dx, dy, sx, sy int) int {
	if !f.inBounds(dx, dy) || !f.inBounds(sx, sy) {
		return tilecode.Unreachable
	}
	return int(f.dir[f.idx(dx, dy, sx, sy)])
}

// Dist returns the minimum path distance from (sx,sy) to (dx,dy); +Inf if
// unreachable.
func (f *Field) Dist(dx, dy, sx, sy int) float32 {
	if !f.inBounds(dx, dy) || !f.inBounds(sx, sy) {
		return float32(math.Inf(1))
	}
	return f.dist[f.idx(dx, dy, sx, sy)]
}

func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && x < f.size && y >= 0 && y < f.size
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// node is one entry of the Dijkstra frontier.
type node struct {
	idx  int
	dist float32
}

// nodeHeap is a container/heap min-heap over node.dist, mirroring the
// original's TileHeap/CompareTiles min-priority frontier.
type nodeHeap []node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
