// Package config provides puzzle configuration management for the Kakuro
// sum-puzzle server.
//
// The config package handles:
//   - Loading puzzle definitions from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Puzzle configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - The board dimensions and a cell matrix mixing border (clue) cells
//     carrying expected run totals with playable cells
//   - The rule names the puzzle is validated against (for example
//     RowSumRule and ColumnSumRule)
//   - Message templates for game events
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	puzzle, err := manager.LoadConfig("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// All configurations pass engine.ValidateGameConfig before they are cached
// or served, so malformed boards never reach the rule engine.
package config
