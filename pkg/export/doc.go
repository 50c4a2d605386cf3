// Package export renders a generated dungeon to the formats downstream
// tools consume: a human-readable text dump, a JSON snapshot of the grid
// and rooms, a Tiled-compatible TMJ tilemap, and an SVG preview image.
package export
