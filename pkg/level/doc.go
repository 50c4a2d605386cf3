// Package level loads the per-level generation parameters that drive the
// carving, content, and theme-room stages, and carries the static miniset
// library they search against.
//
// Level data ships as YAML, keyed by level index, the way the teacher's
// dungeon.Config loads YAML with validation. The original game loaded an
// XML document instead; the filtered reference source does not retain that
// loader, so this module follows the teacher's own config stack.
package level
