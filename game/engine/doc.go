// Package engine provides the game logic for the Kakuro sum-puzzle server.
//
// The engine package ties the board data model and the rule engine
// together:
//   - Loading and validating puzzle configurations from JSON files
//   - Building the immutable board a puzzle is played on
//   - Applying candidate moves and checking them against the puzzle rules
//   - Move history and solved detection
//
// Core Types:
//
// The Engine interface defines the contract for game operations,
// implemented by GameEngine. GameState is a serializable snapshot of the
// board plus progress bookkeeping, while GameConfig defines the puzzle
// layout and rule set loaded from JSON files.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eng, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := eng.PlayMove(board.Move{
//		Position: board.Position{Row: 1, Col: 2},
//		Value:    4,
//	})
//
// Move Semantics:
//
// PlayMove writes the candidate value into the board before any rule is
// evaluated, so rules always observe the post-move state; the value stays
// on the board whether or not rules are broken, and the outcome carries
// the violation list. CheckMove is the speculative variant: it applies the
// value, evaluates the rules, and restores the previous value before
// returning. The puzzle is solved when every playable cell holds a digit
// and every clue run sums to its expected total.
package engine
