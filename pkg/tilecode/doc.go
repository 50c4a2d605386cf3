// Package tilecode defines the terrain/feature code space shared by every
// stage of the generation pipeline: the tile-code to ASCII projection
// table, the bit-flag set, the classification sets used by queries
// (walkable, transparent, monster/object, next-to-wall), and the 3x3
// direction-offset and move-cost tables used by the path solver.
//
// Nothing here depends on anything else in the module; it is the leaf
// package every other package imports.
package tilecode
