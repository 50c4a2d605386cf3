// Package grid owns the dungeon's tile-level state: the parallel arrays of
// tile codes, flags, room IDs, darkness, ASCII projections and visibility,
// the coarse chamber grid, room bookkeeping, and world<->tile coordinate
// conversion.
//
// Grid stores every array as a single contiguous row-major slice rather
// than nested slices, following the teacher's carving.TileMap/Layer
// convention (bounds-checked accessors over a flat []T indexed y*W+x).
package grid
