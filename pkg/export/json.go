package export

import (
	"encoding/json"
	"os"

	"github.com/opd-ai/dlrg/pkg/dungeon"
	"github.com/opd-ai/dlrg/pkg/grid"
)

// snapshot is the JSON-serializable view of a generated dungeon: the raw
// tile code and flag arrays plus room/stairs metadata, everything a
// consumer needs to reconstruct or render the floor without re-running
// generation.
type snapshot struct {
	Level      int             `json:"level"`
	Seed       int64           `json:"seed"`
	Size       int             `json:"size"`
	TileCode   []byte          `json:"tile_code"`
	Flags      []uint16        `json:"flags"`
	DownStairs grid.Point      `json:"down_stairs"`
	UpStairs   grid.Point      `json:"up_stairs"`
	Rooms      []roomSnapshot  `json:"rooms"`
}

type roomSnapshot struct {
	ID        int          `json:"id"`
	Tiles     []grid.Point `json:"tiles"`
	HasStairs bool         `json:"has_stairs"`
	IsMiniset bool         `json:"is_miniset"`
	Dark      bool         `json:"dark"`
}

func toSnapshot(d *dungeon.Dungeon) snapshot {
	tiles := make([]byte, len(d.Grid.TileCode))
	for i, c := range d.Grid.TileCode {
		tiles[i] = byte(c)
	}
	flags := make([]uint16, len(d.Grid.Flags))
	for i, f := range d.Grid.Flags {
		flags[i] = uint16(f)
	}
	rooms := make([]roomSnapshot, len(d.Grid.Rooms))
	for i, r := range d.Grid.Rooms {
		rooms[i] = roomSnapshot{
			ID:        r.ID,
			Tiles:     r.Tiles,
			HasStairs: r.HasStairs,
			IsMiniset: r.IsMiniset,
			Dark:      r.Dark,
		}
	}
	return snapshot{
		Level:      d.Level,
		Seed:       d.Seed,
		Size:       d.Grid.Size,
		TileCode:   tiles,
		Flags:      flags,
		DownStairs: d.Grid.DownStairs,
		UpStairs:   d.Grid.UpStairs,
		Rooms:      rooms,
	}
}

// ExportJSON serializes a generated dungeon to indented JSON.
func ExportJSON(d *dungeon.Dungeon) ([]byte, error) {
	return json.MarshalIndent(toSnapshot(d), "", "  ")
}

// ExportJSONCompact serializes a generated dungeon to compact JSON.
func ExportJSONCompact(d *dungeon.Dungeon) ([]byte, error) {
	return json.Marshal(toSnapshot(d))
}

// SaveJSONToFile writes a generated dungeon to filepath as indented JSON.
func SaveJSONToFile(d *dungeon.Dungeon, filepath string) error {
	data, err := ExportJSON(d)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONCompactToFile writes a generated dungeon to filepath as compact JSON.
func SaveJSONCompactToFile(d *dungeon.Dungeon, filepath string) error {
	data, err := ExportJSONCompact(d)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
