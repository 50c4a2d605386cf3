// Package pathing precomputes the all-pairs direction field used by AI
// movement queries and casts the player's runtime line-of-sight fan.
//
// The direction field is a 4-D table, logically (dest) -> (src) -> code,
// built by running Dijkstra from every walkable destination tile over the
// 8-neighborhood of walkable tiles. Each destination is solved by a fresh
// Dijkstra; no result is carried over from one destination to the next.
// Visibility is a Bresenham ray fan cast fresh whenever the player's tile
// changes.
package pathing
