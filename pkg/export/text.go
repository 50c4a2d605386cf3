package export

import (
	"fmt"
	"strings"

	"github.com/opd-ai/dlrg/pkg/dungeon"
)

// RenderText produces a human-readable dump of a generated dungeon: the
// ASCII terrain and monster/object layers, plus a room and stairs summary.
func RenderText(d *dungeon.Dungeon) string {
	var sb strings.Builder

	sb.WriteString("╔════════════════════════════════════════════════════════════╗\n")
	sb.WriteString("║                  DUNGEON - TEXT VIEW                        ║\n")
	sb.WriteString("╚════════════════════════════════════════════════════════════╝\n\n")

	sb.WriteString("📊 STATISTICS:\n")
	sb.WriteString(fmt.Sprintf("   Level: %d   Seed: %d   Size: %dx%d\n", d.Level, d.Seed, d.Grid.Size, d.Grid.Size))
	sb.WriteString(fmt.Sprintf("   Rooms: %d\n", len(d.Grid.Rooms)))
	sb.WriteString(fmt.Sprintf("   Down stairs: %v   Up stairs: %v\n\n", d.Grid.DownStairs, d.Grid.UpStairs))

	sb.WriteString("🗺️  TERRAIN:\n")
	sb.WriteString(renderLayer(d.Grid.AsciiTerrain, d.Grid.Size))
	sb.WriteString("\n")

	sb.WriteString("⚔️  MONSTERS & OBJECTS:\n")
	sb.WriteString(renderLayer(d.Grid.AsciiMobj, d.Grid.Size))
	sb.WriteString("\n")

	sb.WriteString("🌑 DARKNESS:\n")
	sb.WriteString(renderLayer(d.Grid.Darkness, d.Grid.Size))
	sb.WriteString("\n")

	sb.WriteString("🏰 ROOMS:\n")
	for _, room := range d.Grid.Rooms {
		marks := ""
		if room.HasStairs {
			marks += " [stairs]"
		}
		if room.IsMiniset {
			marks += " [miniset]"
		}
		if room.Dark {
			marks += " [dark]"
		}
		sb.WriteString(fmt.Sprintf("   room %d: %d tiles%s\n", room.ID, len(room.Tiles), marks))
	}

	return sb.String()
}

// renderLayer renders a flat size*size byte layer as a newline-separated
// grid, three-space indented to match RenderText's other sections.
func renderLayer(layer []byte, size int) string {
	var sb strings.Builder
	for y := 0; y < size; y++ {
		sb.WriteString("   ")
		sb.Write(layer[y*size : y*size+size])
		sb.WriteString("\n")
	}
	return sb.String()
}
