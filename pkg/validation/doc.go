// Package validation audits a generated dungeon against the invariants
// spec.md lists for the grid, rooms, doors, and path field. It is not part
// of the generation retry loop: pkg/dungeon.Generate already knows exactly
// which failures are retryable and handles them inline per stage. Validate
// is a separate, read-only check run by tests and the CLI's -validate
// flag, so a regression in one stage surfaces immediately without needing
// to reverse-engineer it from play symptoms.
package validation
