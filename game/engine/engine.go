package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/gridgames/kakuro-server/game/board"
	"github.com/gridgames/kakuro-server/game/rules"
)

// Default message templates used when a configuration leaves the optional
// ones empty.
const (
	defaultMovePlaced  = "Placed %d"
	defaultCellCleared = "Cell cleared"
	defaultRuleBroken  = "Move breaks: %s"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsSolved() bool

	// Move operations
	PlayMove(move board.Move) (*MoveOutcome, error)
	CheckMove(move board.Move) ([]string, error)
	ClearCell(pos board.Position) (*MoveOutcome, error)

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface.
type GameEngine struct {
	config    *GameConfig
	brd       *board.Board
	gameRules *rules.GameRules
	state     *GameState
}

// NewEngine creates a new game engine for the provided puzzle
// configuration.
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	brd, err := BuildBoard(config)
	if err != nil {
		return nil, err
	}

	gameRules, err := rules.NewGameRulesByNames(config.Rules)
	if err != nil {
		return nil, err
	}

	e := &GameEngine{
		config:    config,
		brd:       brd,
		gameRules: gameRules,
	}
	e.state = e.initState()
	return e, nil
}

// initState builds a fresh state snapshot for the current board.
func (e *GameEngine) initState() *GameState {
	return &GameState{
		Cells:         e.brd.Cells(),
		Rows:          e.brd.Rows(),
		Columns:       e.brd.Cols(),
		PlayableCells: countPlayable(e.config),
		FilledCells:   e.countFilled(),
		Message:       e.config.Messages.Welcome,
		ConfigName:    e.config.Name,
		MoveHistory:   []MoveHistoryEntry{},
		CurrentMoves:  []MoveHistoryEntry{},
	}
}

// GetState returns the current game state with a fresh board snapshot.
func (e *GameEngine) GetState() *GameState {
	e.state.Cells = e.brd.Cells()
	e.state.FilledCells = e.countFilled()
	e.state.Solved = e.IsSolved()
	return e.state
}

// SetState restores a previously captured state (used for persistence
// loading). The snapshot's dimensions must match the engine's
// configuration; cell values are written back into the board.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if state.Rows != e.brd.Rows() || state.Columns != e.brd.Cols() {
		return fmt.Errorf("state is %dx%d but board is %dx%d",
			state.Rows, state.Columns, e.brd.Rows(), e.brd.Cols())
	}

	for _, row := range state.Cells {
		for _, cell := range row {
			if cell.Border {
				continue
			}
			if err := e.brd.Apply(board.Move{Position: cell.Position, Value: cell.Value}); err != nil {
				return fmt.Errorf("restoring cell (%d,%d): %w", cell.Position.Row, cell.Position.Col, err)
			}
		}
	}

	e.state = state
	return nil
}

// Reset restores the board to its configured starting values. Cumulative
// history and move totals survive the reset; only the current segment is
// cleared.
func (e *GameEngine) Reset() *GameState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	brd, err := BuildBoard(e.config)
	if err != nil {
		// The config was validated at construction; a rebuild cannot fail.
		panic(fmt.Sprintf("rebuilding board from validated config: %v", err))
	}
	e.brd = brd
	e.state = e.initState()
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal

	return e.GetState()
}

// IsSolved reports whether every playable cell holds a digit and every
// clue run sums to its expected total.
func (e *GameEngine) IsSolved() bool {
	solved, err := e.computeSolved()
	if err != nil {
		return false
	}
	return solved
}

// computeSolved walks every clue run once per active sum rule.
func (e *GameEngine) computeSolved() (bool, error) {
	if e.countFilled() != e.state.PlayableCells {
		return false, nil
	}

	for _, r := range e.gameRules.Rules() {
		sumRule, ok := r.(*rules.SumRule)
		if !ok {
			continue
		}
		for _, row := range e.brd.Cells() {
			for _, cell := range row {
				if !cell.Border {
					continue
				}
				sum, length, err := sumRule.RunTotal(e.brd, cell)
				if err != nil {
					return false, err
				}
				expected := sumRule.ExpectedTotal(cell)
				if expected == 0 && length == 0 {
					continue
				}
				if sum != expected {
					return false, nil
				}
			}
		}
	}

	return true, nil
}

// PlayMove applies a candidate move to the board and validates it against
// the puzzle rules. The board is updated before any rule runs, and the
// value stays applied whether or not rules are broken; violations are
// reported in the outcome. A value of 0 clears the target cell.
func (e *GameEngine) PlayMove(move board.Move) (*MoveOutcome, error) {
	if move.Value != EmptyValue && (move.Value < MinCellValue || move.Value > MaxCellValue) {
		return nil, fmt.Errorf("value must be %d-%d or 0 to clear, got %d", MinCellValue, MaxCellValue, move.Value)
	}

	if err := e.brd.Apply(move); err != nil {
		e.addMoveToHistory(move, nil, false)
		return nil, err
	}

	violations, err := e.gameRules.Check(e.brd, move)
	if err != nil {
		return nil, err
	}

	e.addMoveToHistory(move, violations, true)

	outcome := &MoveOutcome{
		Applied:    true,
		Violations: violations,
	}

	solved, err := e.computeSolved()
	if err != nil {
		return nil, err
	}
	outcome.Solved = solved
	outcome.Message = e.moveMessage(move, violations, solved)
	e.state.Message = outcome.Message
	e.state.Solved = solved

	return outcome, nil
}

// CheckMove validates a move speculatively: the candidate value is applied,
// the rules evaluated, and the previous value restored before returning.
// It records no history and leaves no trace on the board.
func (e *GameEngine) CheckMove(move board.Move) ([]string, error) {
	if move.Value != EmptyValue && (move.Value < MinCellValue || move.Value > MaxCellValue) {
		return nil, fmt.Errorf("value must be %d-%d or 0 to clear, got %d", MinCellValue, MaxCellValue, move.Value)
	}

	prev, err := e.brd.CellAt(move.Position)
	if err != nil {
		return nil, err
	}

	if err := e.brd.Apply(move); err != nil {
		return nil, err
	}

	violations, checkErr := e.gameRules.Check(e.brd, move)

	if err := e.brd.Apply(board.Move{Position: move.Position, Value: prev.Value}); err != nil {
		return nil, fmt.Errorf("restoring cell (%d,%d): %w", move.Position.Row, move.Position.Col, err)
	}

	return violations, checkErr
}

// ClearCell removes the digit from a playable cell.
func (e *GameEngine) ClearCell(pos board.Position) (*MoveOutcome, error) {
	return e.PlayMove(board.Move{Position: pos, Value: EmptyValue})
}

// GetConfig returns the current puzzle configuration.
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig switches to a new puzzle configuration and starts over.
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}
	brd, err := BuildBoard(config)
	if err != nil {
		return err
	}
	gameRules, err := rules.NewGameRulesByNames(config.Rules)
	if err != nil {
		return err
	}

	e.config = config
	e.brd = brd
	e.gameRules = gameRules
	e.state = e.initState()
	return nil
}

// GetMoveHistory returns the cumulative move history.
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last recorded move, or nil if none.
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// countFilled returns the number of playable cells currently holding a
// digit.
func (e *GameEngine) countFilled() int {
	count := 0
	for _, row := range e.brd.Cells() {
		for _, cell := range row {
			if !cell.Border && cell.Value != EmptyValue {
				count++
			}
		}
	}
	return count
}

// addMoveToHistory appends an entry to both the cumulative history and the
// current segment.
func (e *GameEngine) addMoveToHistory(move board.Move, violations []string, success bool) {
	entry := MoveHistoryEntry{
		Position:   move.Position,
		Value:      move.Value,
		Violations: violations,
		Success:    success,
		Timestamp:  time.Now().Unix(),
		MoveNumber: e.state.TotalMoves + 1,
	}
	e.state.MoveHistory = append(e.state.MoveHistory, entry)
	e.state.TotalMoves++

	e.state.CurrentMoves = append(e.state.CurrentMoves, entry)
	e.state.CurrentMovesCount++
}

// moveMessage formats the player-facing message for a move outcome.
func (e *GameEngine) moveMessage(move board.Move, violations []string, solved bool) string {
	m := e.config.Messages
	switch {
	case solved:
		return m.Solved
	case len(violations) > 0:
		tmpl := m.RuleBroken
		if tmpl == "" {
			tmpl = defaultRuleBroken
		}
		return fmt.Sprintf(tmpl, strings.Join(violations, ", "))
	case move.Value == EmptyValue:
		if m.CellCleared != "" {
			return m.CellCleared
		}
		return defaultCellCleared
	default:
		tmpl := m.MovePlaced
		if tmpl == "" {
			tmpl = defaultMovePlaced
		}
		return fmt.Sprintf(tmpl, move.Value)
	}
}
