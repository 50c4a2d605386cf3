package level

import "github.com/opd-ai/dlrg/pkg/tilecode"

// Miniset is a rectangular search-and-replace pattern applied to tile
// codes: a bounded random scan locates a position where Search matches
// tile codes pointwise (0 = wildcard), then Replace overwrites the area
// (0 = keep existing code). Search and Replace are indexed [x][y] to
// match the original column-major layout of the miniset tables.
type Miniset struct {
	Name    string
	Search  [][]int
	Replace [][]int
}

// Width returns the miniset's footprint width.
func (m *Miniset) Width() int { return len(m.Search) }

// Height returns the miniset's footprint height.
func (m *Miniset) Height() int {
	if len(m.Search) == 0 {
		return 0
	}
	return len(m.Search[0])
}

// staticMinisets is the built-in miniset library, keyed by name. Every
// level references a subset of these by name in its Minisets list;
// StairsUp and StairsDown are mandatory regardless of what a level lists.
var staticMinisets = map[string]*Miniset{
	"STAIRS_UP": {
		Name:    "STAIRS_UP",
		Search:  [][]int{{int(tilecode.Floor)}},
		Replace: [][]int{{int(tilecode.StairsUp)}},
	},
	"STAIRS_DOWN": {
		Name:    "STAIRS_DOWN",
		Search:  [][]int{{int(tilecode.Floor)}},
		Replace: [][]int{{int(tilecode.StairsDown)}},
	},
	// FOUNTAIN is a 3x3 footprint requiring an all-floor neighborhood,
	// replacing only the center tile so the surrounding floor is kept.
	"FOUNTAIN": {
		Name: "FOUNTAIN",
		Search: [][]int{
			{int(tilecode.Floor), int(tilecode.Floor), int(tilecode.Floor)},
			{int(tilecode.Floor), int(tilecode.Floor), int(tilecode.Floor)},
			{int(tilecode.Floor), int(tilecode.Floor), int(tilecode.Floor)},
		},
		Replace: [][]int{
			{0, 0, 0},
			{0, 70, 0},
			{0, 0, 0},
		},
	},
}

// Miniset looks up a built-in miniset by name.
func (c *Catalog) Miniset(name string) (*Miniset, bool) {
	m, ok := staticMinisets[name]
	return m, ok
}

// MinisetNames lists every built-in miniset name.
func MinisetNames() []string {
	names := make([]string, 0, len(staticMinisets))
	for n := range staticMinisets {
		names = append(names, n)
	}
	return names
}
