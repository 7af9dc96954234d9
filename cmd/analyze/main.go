// Command analyze prints run statistics for puzzle configurations. It is a
// development aid for puzzle authors: it shows how many runs each axis has,
// how long they are, and what the clue totals look like, which makes it easy
// to spot boards that are too easy (many short runs) or unbalanced.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gridgames/kakuro-server/game/engine"
	"github.com/gridgames/kakuro-server/game/rules"
)

// RunInfo describes a single clue-headed run on the board.
type RunInfo struct {
	Axis     string
	Row      int
	Col      int
	Expected int
	Length   int
}

// BoardStats aggregates per-configuration analysis output.
type BoardStats struct {
	Name           string
	Rows           int
	Columns        int
	PlayableCells  int
	PrefilledCells int
	Runs           []RunInfo
}

func analyzeConfig(path string) (*BoardStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	stats := &BoardStats{
		Name:    config.Name,
		Rows:    config.Rows,
		Columns: config.Columns,
	}

	for _, row := range config.Cells {
		for _, cell := range row {
			if cell.Border {
				continue
			}
			stats.PlayableCells++
			if cell.Value != engine.EmptyValue {
				stats.PrefilledCells++
			}
		}
	}

	stats.Runs = collectRuns(&config)
	return stats, nil
}

// collectRuns walks the board and records every clue-headed run on the
// axes the configuration actually checks.
func collectRuns(config *engine.GameConfig) []RunInfo {
	var runs []RunInfo
	hasRow := hasRule(config, rules.RuleRowSum)
	hasColumn := hasRule(config, rules.RuleColumnSum)

	for r := 0; r < config.Rows; r++ {
		for c := 0; c < config.Columns; c++ {
			cell := config.Cells[r][c]
			if !cell.Border {
				continue
			}
			if hasRow && cell.RowTotal > 0 {
				runs = append(runs, RunInfo{
					Axis: "row", Row: r, Col: c,
					Expected: cell.RowTotal,
					Length:   runLength(config, r, c, 0, 1),
				})
			}
			if hasColumn && cell.ColumnTotal > 0 {
				runs = append(runs, RunInfo{
					Axis: "column", Row: r, Col: c,
					Expected: cell.ColumnTotal,
					Length:   runLength(config, r, c, 1, 0),
				})
			}
		}
	}
	return runs
}

// runLength counts the playable cells following a clue cell in the given
// direction until a border cell or the board edge.
func runLength(config *engine.GameConfig, row, col, dr, dc int) int {
	length := 0
	for r, c := row+dr, col+dc; r < config.Rows && c < config.Columns; r, c = r+dr, c+dc {
		if config.Cells[r][c].Border {
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

func printStats(stats *BoardStats) {
	fmt.Printf("=== %s (%dx%d) ===\n", stats.Name, stats.Rows, stats.Columns)
	fmt.Printf("Playable cells: %d (%d pre-filled)\n", stats.PlayableCells, stats.PrefilledCells)

	rowRuns, colRuns := 0, 0
	lengthCounts := map[int]int{}
	totalClue := 0
	for _, run := range stats.Runs {
		if run.Axis == "row" {
			rowRuns++
		} else {
			colRuns++
		}
		lengthCounts[run.Length]++
		totalClue += run.Expected
	}
	fmt.Printf("Runs: %d row, %d column, clue total %d\n", rowRuns, colRuns, totalClue)

	lengths := make([]int, 0, len(lengthCounts))
	for l := range lengthCounts {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	for _, l := range lengths {
		fmt.Printf("  length %d: %d run(s)\n", l, lengthCounts[l])
	}

	for _, run := range stats.Runs {
		min := run.Length * engine.MinCellValue
		max := run.Length * engine.MaxCellValue
		if run.Length == 0 || run.Expected < min || run.Expected > max {
			fmt.Printf("  SUSPECT: %s clue %d at (%d,%d) with run length %d\n",
				run.Axis, run.Expected, run.Row, run.Col, run.Length)
		}
	}
	fmt.Println()
}

func main() {
	configDir := flag.String("config-dir", "configs", "Directory containing puzzle configurations")
	flag.Parse()

	entries, err := os.ReadDir(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config directory %s: %v\n", *configDir, err)
		os.Exit(1)
	}

	analyzed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		stats, err := analyzeConfig(filepath.Join(*configDir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		printStats(stats)
		analyzed++
	}

	if analyzed == 0 {
		fmt.Printf("No configuration files found in %s\n", *configDir)
		os.Exit(1)
	}
}
