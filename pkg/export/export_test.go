package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/opd-ai/dlrg/pkg/dungeon"
	"github.com/opd-ai/dlrg/pkg/level"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

func testCatalog() *level.Catalog {
	return &level.Catalog{
		Levels: []level.Params{
			{
				Level:        1,
				DungeonSize:  40,
				Cells:        4,
				MinArea:      0,
				NumMonsters:  3,
				MinGroupSize: 1,
				MaxGroupSize: 2,
				Monsters:     []int{int(tilecode.Spiderling)},
				NumObjects:   2,
				Objects:      []int{int(tilecode.Chest)},
			},
		},
	}
}

func testDungeon(t *testing.T) *dungeon.Dungeon {
	t.Helper()
	d, err := dungeon.Generate(testCatalog(), 1, 17)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return d
}

func TestRenderText_ContainsLayersAndStairs(t *testing.T) {
	out := RenderText(testDungeon(t))
	if !strings.Contains(out, "TERRAIN") {
		t.Fatalf("expected a TERRAIN section, got:\n%s", out)
	}
	if !strings.Contains(out, "Down stairs") {
		t.Fatalf("expected a stairs summary line")
	}
}

func TestExportJSON_RoundTrips(t *testing.T) {
	d := testDungeon(t)
	data, err := ExportJSON(d)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var out snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Size != d.Grid.Size {
		t.Fatalf("size mismatch: got %d, want %d", out.Size, d.Grid.Size)
	}
	if len(out.TileCode) != len(d.Grid.TileCode) {
		t.Fatalf("tile code length mismatch")
	}
	if len(out.Rooms) != len(d.Grid.Rooms) {
		t.Fatalf("room count mismatch: got %d, want %d", len(out.Rooms), len(d.Grid.Rooms))
	}
}

func TestExportJSONCompact_IsSmallerThanIndented(t *testing.T) {
	d := testDungeon(t)
	pretty, err := ExportJSON(d)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	compact, err := ExportJSONCompact(d)
	if err != nil {
		t.Fatalf("ExportJSONCompact: %v", err)
	}
	if len(compact) >= len(pretty) {
		t.Fatalf("expected compact JSON to be smaller than indented JSON")
	}
}

func TestExportTMJ_HasTerrainAndEntityLayers(t *testing.T) {
	d := testDungeon(t)
	tm, err := ExportTMJ(d, false)
	if err != nil {
		t.Fatalf("ExportTMJ: %v", err)
	}
	if tm.Width != d.Grid.Size || tm.Height != d.Grid.Size {
		t.Fatalf("unexpected map dimensions: %dx%d", tm.Width, tm.Height)
	}

	var hasTerrain, hasEntities bool
	for _, l := range tm.Layers {
		if l.Name == "terrain" && l.Type == "tilelayer" {
			hasTerrain = true
			data, ok := l.Data.([]uint32)
			if !ok || len(data) != d.Grid.Size*d.Grid.Size {
				t.Fatalf("terrain layer data has unexpected shape")
			}
		}
		if l.Name == "entities" && l.Type == "objectgroup" {
			hasEntities = true
			if len(l.Objects) == 0 {
				t.Fatalf("expected at least the two staircase objects")
			}
		}
	}
	if !hasTerrain || !hasEntities {
		t.Fatalf("expected both a terrain and an entities layer, got terrain=%v entities=%v", hasTerrain, hasEntities)
	}
}

func TestExportTMJ_CompressedTerrainLayerDecodesAsString(t *testing.T) {
	d := testDungeon(t)
	tm, err := ExportTMJ(d, true)
	if err != nil {
		t.Fatalf("ExportTMJ: %v", err)
	}
	for _, l := range tm.Layers {
		if l.Name != "terrain" {
			continue
		}
		if l.Encoding != "base64" || l.Compression != "gzip" {
			t.Fatalf("expected compressed terrain layer, got encoding=%s compression=%s", l.Encoding, l.Compression)
		}
		if _, ok := l.Data.(string); !ok {
			t.Fatalf("expected compressed layer data to be a base64 string")
		}
	}
}

func TestExportSVG_ProducesWellFormedDocument(t *testing.T) {
	d := testDungeon(t)
	data, err := ExportSVG(d, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Fatalf("expected a well-formed svg document, got:\n%s", s)
	}
}
