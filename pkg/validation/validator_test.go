package validation

import (
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

func TestValidate_PassesOnGeneratedDungeon(t *testing.T) {
	d, err := dungeon.Generate(testCatalog(), 1, 123)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	report := Validate(d)
	if !report.Passed {
		t.Fatalf("expected a passing report, got errors: %v", report.Errors)
	}
	if len(report.Results) == 0 {
		t.Fatalf("expected at least one check result")
	}
}

func TestValidate_CatchesStairMismatch(t *testing.T) {
	d, err := dungeon.Generate(testCatalog(), 1, 321)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Corrupt the down-stairs tile so the checker must catch it.
	d.Grid.SetCode(d.Grid.DownStairs.X, d.Grid.DownStairs.Y, tilecode.Floor)

	report := Validate(d)
	if report.Passed {
		t.Fatalf("expected validation to fail after corrupting the down-stairs tile")
	}
	if len(report.Errors) == 0 {
		t.Fatalf("expected at least one recorded error")
	}
}

func TestSummary_RendersStatusAndResults(t *testing.T) {
	d, err := dungeon.Generate(testCatalog(), 1, 55)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := Summary(Validate(d))
	if out == "" {
		t.Fatalf("expected non-empty summary")
	}
}
