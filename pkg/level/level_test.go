package level

import "testing"

const sampleYAML = `
levels:
  - level: 0
    dungeonSize: 80
    cells: 6
    minArea: 400
    numMonsters: 5
    minGroupSize: 1
    maxGroupSize: 3
    monsters: [62]
    numObjects: 2
    objects: [72]
    numThemeRooms: 0
    themeRooms: []
    minisets: [STAIRS_UP, STAIRS_DOWN]
  - level: 6
    dungeonSize: 80
    cells: 6
    minArea: 400
    numMonsters: 20
    minGroupSize: 3
    maxGroupSize: 5
    monsters: [62, 65]
    numObjects: 5
    objects: [72, 78]
    numThemeRooms: 2
    themeRooms: [chasm, spinner]
    minisets: [STAIRS_UP, STAIRS_DOWN]
`

func TestLoadCatalogFromBytes(t *testing.T) {
	cat, err := LoadCatalogFromBytes([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("LoadCatalogFromBytes: %v", err)
	}
	if len(cat.Levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(cat.Levels))
	}

	p, ok := cat.Get(6)
	if !ok {
		t.Fatal("expected level 6 to be present")
	}
	if p.NumMonsters != 20 {
		t.Errorf("level 6 numMonsters = %d, want 20", p.NumMonsters)
	}
}

func TestLoadCatalogFromBytes_DuplicateLevel(t *testing.T) {
	_, err := LoadCatalogFromBytes([]byte(`
levels:
  - level: 0
    dungeonSize: 80
    cells: 6
    minGroupSize: 1
    maxGroupSize: 2
  - level: 0
    dungeonSize: 80
    cells: 6
    minGroupSize: 1
    maxGroupSize: 2
`))
	if err == nil {
		t.Fatal("expected error on duplicate level index")
	}
}

func TestParams_Validate_GroupSizeRange(t *testing.T) {
	p := Params{DungeonSize: 80, Cells: 6, MinGroupSize: 5, MaxGroupSize: 2}
	if err := p.Validate(); err == nil {
		t.Fatal("expected error when maxGroupSize < minGroupSize")
	}
}

func TestStaticMinisets_StairsPresent(t *testing.T) {
	cat := &Catalog{}
	if _, ok := cat.Miniset("STAIRS_UP"); !ok {
		t.Fatal("STAIRS_UP miniset must exist")
	}
	if _, ok := cat.Miniset("STAIRS_DOWN"); !ok {
		t.Fatal("STAIRS_DOWN miniset must exist")
	}
}
