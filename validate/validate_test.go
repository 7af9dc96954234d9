package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gridgames/kakuro-server/game/engine"
	"github.com/gridgames/kakuro-server/game/rules"
)

// validTestConfig returns a 2x3 puzzle where the single row run of two
// cells must sum to 3 and the column runs to 1 and 2.
func validTestConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:        "Test Puzzle",
		Description: "Fixture for validator tests",
		Rows:        2,
		Columns:     3,
		Cells: [][]engine.CellConfig{
			{
				{Row: 0, Col: 0, Border: true},
				{Row: 0, Col: 1, Border: true, ColumnTotal: 1},
				{Row: 0, Col: 2, Border: true, ColumnTotal: 2},
			},
			{
				{Row: 1, Col: 0, Border: true, RowTotal: 3},
				{Row: 1, Col: 1},
				{Row: 1, Col: 2},
			},
		},
		Rules: []string{rules.RuleRowSum, rules.RuleColumnSum},
	}
	config.Messages.Welcome = "Welcome"
	config.Messages.Solved = "Solved"
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) string {
	t.Helper()
	data, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestValidateConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "valid.json", validTestConfig())

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got: %v", result.Warnings)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig(filepath.Join(t.TempDir(), "nope.json"))
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Failed to read") {
		t.Errorf("Expected read error, got: %v", result.Errors)
	}
}

func TestValidateConfig_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid result for malformed JSON")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Invalid JSON") {
		t.Errorf("Expected JSON error, got: %v", result.Errors)
	}
}

func TestValidateConfig_StructuralErrors(t *testing.T) {
	config := validTestConfig()
	config.Rules = []string{"NoSuchRule"}

	dir := t.TempDir()
	path := writeConfigFile(t, dir, "badrule.json", config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid result for unknown rule")
	}
}

func TestValidateConfig_ImpossibleClue(t *testing.T) {
	t.Run("clue too high", func(t *testing.T) {
		config := validTestConfig()
		// Two cells can sum to at most 18.
		config.Cells[1][0].RowTotal = 19

		path := writeConfigFile(t, t.TempDir(), "high.json", config)
		result := validateConfig(path)
		if result.Valid {
			t.Error("Expected invalid result for unreachable clue")
		}
		if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "impossible") {
			t.Errorf("Expected impossibility error, got: %v", result.Errors)
		}
	})

	t.Run("clue at boundary is fine", func(t *testing.T) {
		config := validTestConfig()
		config.Cells[1][0].RowTotal = 18

		path := writeConfigFile(t, t.TempDir(), "boundary.json", config)
		result := validateConfig(path)
		if !result.Valid {
			t.Errorf("Expected valid result for reachable clue, got: %v", result.Errors)
		}
	})
}

func TestValidateConfig_EmptyRunWarning(t *testing.T) {
	config := &engine.GameConfig{
		Name:        "Edge",
		Description: "Clue with no run behind it",
		Rows:        2,
		Columns:     2,
		Cells: [][]engine.CellConfig{
			{
				{Row: 0, Col: 0, Border: true},
				{Row: 0, Col: 1, Border: true, ColumnTotal: 5},
			},
			{
				// Row clue directly followed by a border cell, so the run
				// has zero length.
				{Row: 1, Col: 0, Border: true, RowTotal: 7},
				{Row: 1, Col: 1, Border: true, ColumnTotal: 0},
			},
		},
		Rules: []string{rules.RuleRowSum},
	}
	config.Messages.Welcome = "Welcome"
	config.Messages.Solved = "Solved"

	path := writeConfigFile(t, t.TempDir(), "empty-run.json", config)
	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Empty runs are a warning, not an error; got: %v", result.Errors)
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "empty run") {
		t.Errorf("Expected empty-run warning, got: %v", result.Warnings)
	}
}

func TestValidateConfig_ClueIgnoredWhenRuleInactive(t *testing.T) {
	config := validTestConfig()
	config.Rules = []string{rules.RuleRowSum}
	// Column clue is now unchecked, so an unreachable value must not fail.
	config.Cells[0][1].ColumnTotal = 99

	path := writeConfigFile(t, t.TempDir(), "inactive.json", config)
	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected clue on inactive axis to be ignored, got: %v", result.Errors)
	}
}

func TestRunLengths(t *testing.T) {
	config := validTestConfig()

	if got := rowRunLength(config, 1, 0); got != 2 {
		t.Errorf("rowRunLength(1,0) = %d, want 2", got)
	}
	if got := columnRunLength(config, 0, 1); got != 1 {
		t.Errorf("columnRunLength(0,1) = %d, want 1", got)
	}
	if got := rowRunLength(config, 0, 2); got != 0 {
		t.Errorf("rowRunLength at board edge = %d, want 0", got)
	}
}
