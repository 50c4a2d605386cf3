package validation

import (
	"github.com/opd-ai/dlrg/pkg/dungeon"
)

// Validate runs every constraint check against a generated dungeon and
// returns a report. It never mutates d.
func Validate(d *dungeon.Dungeon) *Report {
	r := NewReport()

	checkStairs(d.Grid, r)
	checkRoomPartition(d.Grid, r)
	checkDoorConsistency(d.Grid, r)
	checkPathField(d.Grid, d.Field, r)
	checkSecretAdjacency(d.Grid, r)

	return r
}
