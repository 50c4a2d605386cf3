package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params specifies all generation parameters for a single level index,
// matching the level parameters named in the data model: dungeon size,
// area floor, monster and object budgets, theme-room targets, and the
// minisets that must be stamped.
type Params struct {
	Level         int     `yaml:"level" json:"level"`
	DungeonSize   int     `yaml:"dungeonSize" json:"dungeonSize"`
	Cells         int     `yaml:"cells" json:"cells"`
	MinArea       int     `yaml:"minArea" json:"minArea"`
	NumMonsters   int     `yaml:"numMonsters" json:"numMonsters"`
	MinGroupSize  int     `yaml:"minGroupSize" json:"minGroupSize"`
	MaxGroupSize  int     `yaml:"maxGroupSize" json:"maxGroupSize"`
	Monsters      []int   `yaml:"monsters" json:"monsters"`
	NumObjects    int     `yaml:"numObjects" json:"numObjects"`
	Objects       []int   `yaml:"objects" json:"objects"`
	NumThemeRooms int     `yaml:"numThemeRooms" json:"numThemeRooms"`
	ThemeRooms    []string `yaml:"themeRooms" json:"themeRooms"`
	Minisets      []string `yaml:"minisets" json:"minisets"`
}

// Validate checks that the level parameters are internally consistent.
func (p *Params) Validate() error {
	if p.DungeonSize <= 0 {
		return fmt.Errorf("dungeonSize must be positive, got %d", p.DungeonSize)
	}
	if p.Cells <= 0 {
		return fmt.Errorf("cells must be positive, got %d", p.Cells)
	}
	if p.MinArea < 0 {
		return fmt.Errorf("minArea must be non-negative, got %d", p.MinArea)
	}
	if p.MinGroupSize <= 0 || p.MaxGroupSize < p.MinGroupSize {
		return fmt.Errorf("group size range invalid: min=%d max=%d", p.MinGroupSize, p.MaxGroupSize)
	}
	if p.NumMonsters > 0 && len(p.Monsters) == 0 {
		return fmt.Errorf("numMonsters=%d but no monster codes listed", p.NumMonsters)
	}
	if p.NumObjects > 0 && len(p.Objects) == 0 {
		return fmt.Errorf("numObjects=%d but no object codes listed", p.NumObjects)
	}
	if p.NumThemeRooms > 0 && len(p.ThemeRooms) == 0 {
		return fmt.Errorf("numThemeRooms=%d but no theme names listed", p.NumThemeRooms)
	}
	return nil
}

// Catalog is a level-index-keyed collection of Params, loaded from a single
// YAML document (mirroring LoadConfig's one-file-one-document shape).
type Catalog struct {
	Levels []Params `yaml:"levels" json:"levels"`
}

// LoadCatalog reads and validates a YAML level catalog from path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level catalog: %w", err)
	}
	return LoadCatalogFromBytes(data)
}

// LoadCatalogFromBytes parses and validates a YAML level catalog.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing level catalog YAML: %w", err)
	}
	seen := make(map[int]bool, len(cat.Levels))
	for i := range cat.Levels {
		p := &cat.Levels[i]
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", p.Level, err)
		}
		if seen[p.Level] {
			return nil, fmt.Errorf("duplicate level index %d", p.Level)
		}
		seen[p.Level] = true
	}
	return &cat, nil
}

// Get returns the Params for a level index, or ok=false if absent.
func (c *Catalog) Get(lvl int) (Params, bool) {
	for _, p := range c.Levels {
		if p.Level == lvl {
			return p, true
		}
	}
	return Params{}, false
}

// ToYAML serializes the catalog back to YAML bytes.
func (c *Catalog) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
