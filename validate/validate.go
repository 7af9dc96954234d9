// Command validate provides a small CLI that validates puzzle configuration
// JSON files in the configs directory. It checks:
//   - JSON structure and required fields
//   - Board consistency (rectangular cell matrix, positions matching indices)
//   - Rule names against the known rule registry
//   - Run anchoring: every active axis needs a clue cell at the head of each line
//   - Clue feasibility: a run of n cells can only sum to a value in [n, 9n]
//   - Pre-filled values within the 1-9 digit range
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridgames/kakuro-server/game/engine"
	"github.com/gridgames/kakuro-server/game/rules"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors is empty; Warnings are advisory either way.
type ValidationResult struct {
	File     string
	Valid    bool
	Errors   []string
	Warnings []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(filePath),
		Valid: true,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	checkRunFeasibility(&config, &result)
	return result
}

// checkRunFeasibility walks every clue cell and verifies that the run it
// heads can actually reach its expected total with digits 1-9.
func checkRunFeasibility(config *engine.GameConfig, result *ValidationResult) {
	hasRow := hasRule(config, rules.RuleRowSum)
	hasColumn := hasRule(config, rules.RuleColumnSum)

	for r := 0; r < config.Rows; r++ {
		for c := 0; c < config.Columns; c++ {
			cell := config.Cells[r][c]
			if !cell.Border {
				continue
			}

			if hasRow && cell.RowTotal > 0 {
				length := rowRunLength(config, r, c)
				reportClue(result, "row", r, c, cell.RowTotal, length)
			}
			if hasColumn && cell.ColumnTotal > 0 {
				length := columnRunLength(config, r, c)
				reportClue(result, "column", r, c, cell.ColumnTotal, length)
			}
		}
	}
}

// reportClue flags impossible clue/length combinations as errors and
// degenerate ones as warnings.
func reportClue(result *ValidationResult, axis string, row, col, expected, length int) {
	where := fmt.Sprintf("%s clue %d at (%d,%d)", axis, expected, row, col)

	if length == 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s heads an empty run", where))
		return
	}

	minSum := length * engine.MinCellValue
	maxSum := length * engine.MaxCellValue
	if expected < minSum || expected > maxSum {
		result.Valid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s is impossible for a run of %d cells (reachable range %d-%d)",
				where, length, minSum, maxSum))
	}
}

// rowRunLength counts the playable cells to the right of a clue until the
// next border cell or the board edge.
func rowRunLength(config *engine.GameConfig, row, col int) int {
	length := 0
	for c := col + 1; c < config.Columns; c++ {
		if config.Cells[row][c].Border {
			break
		}
		length++
	}
	return length
}

// columnRunLength counts the playable cells below a clue until the next
// border cell or the board edge.
func columnRunLength(config *engine.GameConfig, row, col int) int {
	length := 0
	for r := row + 1; r < config.Rows; r++ {
		if config.Cells[r][col].Border {
			break
		}
		length++
	}
	return length
}

func hasRule(config *engine.GameConfig, name string) bool {
	for _, rule := range config.Rules {
		if rule == name {
			return true
		}
	}
	return false
}

func main() {
	configDir := flag.String("config-dir", "configs", "Directory containing puzzle configurations")
	flag.Parse()

	entries, err := os.ReadDir(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config directory %s: %v\n", *configDir, err)
		os.Exit(1)
	}

	allValid := true
	checked := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		checked++

		result := validateConfig(filepath.Join(*configDir, entry.Name()))

		status := "OK"
		if !result.Valid {
			status = "INVALID"
			allValid = false
		}
		fmt.Printf("%-30s %s\n", result.File, status)

		for _, e := range result.Errors {
			fmt.Printf("  error: %s\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}

	if checked == 0 {
		fmt.Printf("No configuration files found in %s\n", *configDir)
		os.Exit(1)
	}

	if !allValid {
		os.Exit(1)
	}
	fmt.Printf("\n%d configuration(s) valid\n", checked)
}
