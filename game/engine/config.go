package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridgames/kakuro-server/game/board"
	"github.com/gridgames/kakuro-server/game/rules"
)

// ValidateGameConfig validates a puzzle configuration for correctness.
// Malformed configurations are rejected here, before any board reaches the
// rule engine; in particular the run invariant (a backward walk from any
// playable cell reaches a border cell) is enforced structurally.
func ValidateGameConfig(config *GameConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.Rows < MinBoardSize || config.Rows > MaxBoardSize {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, config.Rows)
	}
	if config.Columns < MinBoardSize || config.Columns > MaxBoardSize {
		return fmt.Errorf("config validation: columns must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, config.Columns)
	}

	if len(config.Cells) != config.Rows {
		return fmt.Errorf("config validation: cell matrix must have %d rows, got %d", config.Rows, len(config.Cells))
	}

	for r, row := range config.Cells {
		if len(row) != config.Columns {
			return fmt.Errorf("config validation: row %d must have %d cells, got %d", r, config.Columns, len(row))
		}
		for c, cell := range row {
			if cell.Row != r || cell.Col != c {
				return fmt.Errorf("config validation: cell at index (%d,%d) declares position (%d,%d)", r, c, cell.Row, cell.Col)
			}
			if cell.Border {
				if cell.Value != EmptyValue {
					return fmt.Errorf("config validation: border cell (%d,%d) must not carry a value", r, c)
				}
				if cell.RowTotal < 0 || cell.ColumnTotal < 0 {
					return fmt.Errorf("config validation: border cell (%d,%d) has a negative total", r, c)
				}
			} else {
				if cell.RowTotal != 0 || cell.ColumnTotal != 0 {
					return fmt.Errorf("config validation: playable cell (%d,%d) must not carry run totals", r, c)
				}
				if cell.Value != EmptyValue && (cell.Value < MinCellValue || cell.Value > MaxCellValue) {
					return fmt.Errorf("config validation: cell (%d,%d) value must be %d-%d or empty, got %d",
						r, c, MinCellValue, MaxCellValue, cell.Value)
				}
			}
		}
	}

	if len(config.Rules) == 0 {
		return fmt.Errorf("config validation: at least one rule is required")
	}
	checksRows, checksColumns := false, false
	for _, name := range config.Rules {
		if !rules.IsKnownRule(name) {
			return fmt.Errorf("config validation: %w: %q (known: %s)",
				rules.ErrUnknownRule, name, strings.Join(rules.KnownRules(), ", "))
		}
		switch name {
		case rules.RuleRowSum:
			checksRows = true
		case rules.RuleColumnSum:
			checksColumns = true
		}
	}

	// Run invariant: a backward walk along a checked axis must terminate at
	// a border cell, so the first cell of every checked line has to be a
	// border.
	if checksRows {
		for r := 0; r < config.Rows; r++ {
			if !config.Cells[r][0].Border {
				return fmt.Errorf("config validation: row %d starts with a playable cell; row runs must be anchored by a border cell", r)
			}
		}
	}
	if checksColumns {
		for c := 0; c < config.Columns; c++ {
			if !config.Cells[0][c].Border {
				return fmt.Errorf("config validation: column %d starts with a playable cell; column runs must be anchored by a border cell", c)
			}
		}
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Solved == "" {
		return fmt.Errorf("config validation: messages.solved is required")
	}
	if config.Messages.RuleBroken != "" && !strings.Contains(config.Messages.RuleBroken, "%s") {
		return fmt.Errorf("config validation: messages.rule_broken must contain %%s for the rule list")
	}
	if config.Messages.MovePlaced != "" && !strings.Contains(config.Messages.MovePlaced, "%d") {
		return fmt.Errorf("config validation: messages.move_placed must contain %%d for the placed value")
	}

	return nil
}

// BuildBoard constructs the board a validated configuration describes.
func BuildBoard(config *GameConfig) (*board.Board, error) {
	cells := make([][]board.Cell, len(config.Cells))
	for r, row := range config.Cells {
		cells[r] = make([]board.Cell, len(row))
		for c, cc := range row {
			cells[r][c] = board.Cell{
				Position:    board.Position{Row: cc.Row, Col: cc.Col},
				Value:       cc.Value,
				RowTotal:    cc.RowTotal,
				ColumnTotal: cc.ColumnTotal,
				Border:      cc.Border,
			}
		}
	}
	return board.New(cells)
}

// LoadGameConfig loads a puzzle configuration from a JSON file.
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a puzzle configuration by name from the configs
// directory.
func LoadConfigByName(configName string) (*GameConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join("configs", configName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &config, nil
}

// countPlayable returns the number of playable cells in a configuration.
func countPlayable(config *GameConfig) int {
	count := 0
	for _, row := range config.Cells {
		for _, cell := range row {
			if !cell.Border {
				count++
			}
		}
	}
	return count
}
