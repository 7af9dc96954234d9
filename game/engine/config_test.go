package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateGameConfig_Valid(t *testing.T) {
	if err := ValidateGameConfig(createTestConfig()); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestValidateGameConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantSub string
	}{
		{
			"missing name",
			func(c *GameConfig) { c.Name = "" },
			"name is required",
		},
		{
			"missing description",
			func(c *GameConfig) { c.Description = "" },
			"description is required",
		},
		{
			"rows out of range",
			func(c *GameConfig) { c.Rows = 0 },
			"rows must be",
		},
		{
			"columns too large",
			func(c *GameConfig) { c.Columns = 51 },
			"columns must be",
		},
		{
			"matrix row count mismatch",
			func(c *GameConfig) { c.Cells = c.Cells[:2] },
			"must have 3 rows",
		},
		{
			"jagged row",
			func(c *GameConfig) { c.Cells[1] = c.Cells[1][:2] },
			"must have 3 cells",
		},
		{
			"position mismatch",
			func(c *GameConfig) { c.Cells[1][1].Row = 2 },
			"declares position",
		},
		{
			"border cell with value",
			func(c *GameConfig) { c.Cells[0][0].Value = 5 },
			"must not carry a value",
		},
		{
			"negative total",
			func(c *GameConfig) { c.Cells[0][1].ColumnTotal = -1 },
			"negative total",
		},
		{
			"playable cell with totals",
			func(c *GameConfig) { c.Cells[1][1].RowTotal = 4 },
			"must not carry run totals",
		},
		{
			"value out of range",
			func(c *GameConfig) { c.Cells[1][1].Value = 12 },
			"value must be",
		},
		{
			"no rules",
			func(c *GameConfig) { c.Rules = nil },
			"at least one rule",
		},
		{
			"unknown rule",
			func(c *GameConfig) { c.Rules = []string{"DiagonalSumRule"} },
			"unknown rule",
		},
		{
			"row run not anchored",
			func(c *GameConfig) {
				c.Cells[1][0] = CellConfig{Row: 1, Col: 0}
			},
			"row 1 starts with a playable cell",
		},
		{
			"column run not anchored",
			func(c *GameConfig) {
				c.Cells[0][1] = CellConfig{Row: 0, Col: 1}
			},
			"column 1 starts with a playable cell",
		},
		{
			"missing welcome message",
			func(c *GameConfig) { c.Messages.Welcome = "" },
			"messages.welcome",
		},
		{
			"missing solved message",
			func(c *GameConfig) { c.Messages.Solved = "" },
			"messages.solved",
		},
		{
			"rule_broken without verb",
			func(c *GameConfig) { c.Messages.RuleBroken = "broken" },
			"rule_broken",
		},
		{
			"move_placed without verb",
			func(c *GameConfig) { c.Messages.MovePlaced = "placed" },
			"move_placed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createTestConfig()
			tt.mutate(config)

			err := ValidateGameConfig(config)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("err = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

// A column-only puzzle does not need border cells at the start of rows.
func TestValidateGameConfig_ColumnOnlyRules(t *testing.T) {
	config := &GameConfig{
		Name:        "Column Only",
		Description: "Single vertical run",
		Rows:        3,
		Columns:     1,
		Cells: [][]CellConfig{
			{{Row: 0, Col: 0, Border: true, ColumnTotal: 9}},
			{{Row: 1, Col: 0}},
			{{Row: 2, Col: 0}},
		},
		Rules: []string{"ColumnSumRule"},
	}
	config.Messages.Welcome = "hi"
	config.Messages.Solved = "done"

	if err := ValidateGameConfig(config); err != nil {
		t.Errorf("column-only config rejected: %v", err)
	}
}

func TestBuildBoard(t *testing.T) {
	config := createTestConfig()
	config.Cells[1][1].Value = 1

	b, err := BuildBoard(config)
	if err != nil {
		t.Fatalf("BuildBoard: %v", err)
	}
	if b.Rows() != 3 || b.Cols() != 3 {
		t.Errorf("board dims = %dx%d, want 3x3", b.Rows(), b.Cols())
	}

	cells := b.Cells()
	if !cells[0][0].Border {
		t.Error("corner should be a border cell")
	}
	if cells[0][1].ColumnTotal != 4 {
		t.Errorf("clue ColumnTotal = %d, want 4", cells[0][1].ColumnTotal)
	}
	if cells[1][1].Value != 1 {
		t.Errorf("prefilled value = %d, want 1", cells[1][1].Value)
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.json")

	data, err := json.Marshal(createTestConfig())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	config, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}
	if config.Name != "Engine Test Puzzle" {
		t.Errorf("Name = %q", config.Name)
	}
}

func TestLoadGameConfig_Missing(t *testing.T) {
	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadGameConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadGameConfig(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadGameConfig_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invalid.json")

	config := createTestConfig()
	config.Rules = []string{"DiagonalSumRule"}
	data, _ := json.Marshal(config)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadGameConfig(path); err == nil {
		t.Error("expected error for config failing validation")
	}
}

func TestCountPlayable(t *testing.T) {
	if got := countPlayable(createTestConfig()); got != 4 {
		t.Errorf("countPlayable = %d, want 4", got)
	}
}
