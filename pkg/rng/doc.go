// Package rng provides the single deterministic entropy source used by the
// dungeon generation pipeline.
//
// # Overview
//
// A Source wraps math/rand.Rand and is seeded from the caller's seed once
// per dungeon.Generate call; the level number is not part of the seed, and
// retried attempts keep drawing from the same stream. Every pipeline
// stage — chamber
// layout, room carving, wall decoration, miniset placement, theme rooms,
// monster and object placement — draws from the same stream, in the exact
// order the pipeline calls it.
//
// # Determinism
//
// Identical seeds must produce identical dungeons, and the order of
// consumption is part of that contract: two pipelines that draw the same
// number of values but in a different order will diverge. Callers must not
// fan a Source out across goroutines; generation is single-threaded by
// design (see pkg/dungeon).
//
// # Usage
//
//	src := rng.New(seed)
//	n := src.Random(10, 50)       // n in [10, 50)
//	even := src.RandomEven(0, 20) // even in {0, 2, ..., 18}
package rng
