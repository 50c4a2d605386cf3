// Package dungeon ties the carving, theming, content, and pathing stages
// together into one entry point: Generate builds a complete tile grid for
// a level index and seed, retrying the whole pipeline whenever a stage
// reports a retryable failure, then exposes the read-mostly Query API the
// rest of the game uses during play (tile predicates, door mutators,
// NextMove, and visibility).
package dungeon
