// Package carving implements the grid-mutating stages of the generation
// pipeline: chamber layout, recursive room carving, the marching-tiles
// classification pass, the wall & door builder with its tile-fix rewrite,
// the miniset placer, and room discovery by flood fill.
//
// Every stage operates directly on a *grid.Grid; there is no intermediate
// graph or layout representation between a level's parameters and the
// tiles they carve.
package carving
