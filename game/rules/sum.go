package rules

import (
	"fmt"

	"github.com/gridgames/kakuro-server/game/board"
)

// Axis selects which direction pair a sum rule walks.
type Axis int

const (
	// AxisRow walks left toward the anchoring border cell and right toward
	// the end of the run.
	AxisRow Axis = iota
	// AxisColumn walks up toward the anchoring border cell and down toward
	// the end of the run.
	AxisColumn
)

// String returns the axis name used in logs and violation messages.
func (a Axis) String() string {
	if a == AxisRow {
		return "row"
	}
	return "column"
}

// SumRule checks that the run containing the move's cell sums to the total
// stored on the border cell anchoring it. One shared accumulation
// algorithm serves both axes; the axis only picks the direction bindings
// and which expected total to read off the border cell.
type SumRule struct {
	axis Axis
}

// NewRowSumRule returns the sum rule for horizontal runs.
func NewRowSumRule() *SumRule {
	return &SumRule{axis: AxisRow}
}

// NewColumnSumRule returns the sum rule for vertical runs.
func NewColumnSumRule() *SumRule {
	return &SumRule{axis: AxisColumn}
}

// Name returns the registry name of this rule variant.
func (r *SumRule) Name() string {
	if r.axis == AxisRow {
		return RuleRowSum
	}
	return RuleColumnSum
}

// IsRuleBroken walks the run containing the move's cell and compares its
// sum against the expected total on the anchoring border cell.
//
// The walk goes backward from the move's cell until it reaches a border
// cell, accumulating each visited playable value (the border cell's own
// value is never added), reads the expected total for this axis off the
// border cell, then walks forward from the move's cell to the end of the
// run. Each playable cell is therefore summed exactly once. Runs end at
// the grid edge or at the next border cell.
//
// A board whose runs are not anchored by a border cell is malformed; the
// backward walk then runs past the grid bounds and the resulting
// out-of-bounds error propagates to the caller unchanged.
func (r *SumRule) IsRuleBroken(it board.Iterator, move board.Move) (bool, error) {
	start, err := it.CellAt(move.Position)
	if err != nil {
		return false, err
	}

	sum := 0
	cell := start
	for !cell.Border {
		sum += cell.Value
		cell, err = r.previousCell(it, cell)
		if err != nil {
			return false, fmt.Errorf("walking %s run backward: %w", r.axis, err)
		}
	}

	expected := r.expectedTotal(cell)

	cell = start
	for r.hasNext(it, cell) {
		next, err := r.nextCell(it, cell)
		if err != nil {
			return false, fmt.Errorf("walking %s run forward: %w", r.axis, err)
		}
		if next.Border {
			break
		}
		sum += next.Value
		cell = next
	}

	return sum != expected, nil
}

// RunTotal sums the run anchored at the given border cell by walking
// forward until the grid edge or the next border cell, returning the sum
// and the number of playable cells visited. A run with zero playable cells
// sums to 0. Used by the engine to decide whether a board is solved.
func (r *SumRule) RunTotal(it board.Iterator, clue board.Cell) (sum, length int, err error) {
	cell := clue
	for r.hasNext(it, cell) {
		next, err := r.nextCell(it, cell)
		if err != nil {
			return 0, 0, fmt.Errorf("walking %s run forward: %w", r.axis, err)
		}
		if next.Border {
			break
		}
		sum += next.Value
		length++
		cell = next
	}
	return sum, length, nil
}

// ExpectedTotal returns the total the given border cell demands for this
// rule's axis.
func (r *SumRule) ExpectedTotal(clue board.Cell) int {
	return r.expectedTotal(clue)
}

func (r *SumRule) expectedTotal(clue board.Cell) int {
	if r.axis == AxisRow {
		return clue.RowTotal
	}
	return clue.ColumnTotal
}

func (r *SumRule) previousCell(it board.Iterator, c board.Cell) (board.Cell, error) {
	if r.axis == AxisRow {
		return it.CellLeft(c)
	}
	return it.CellTop(c)
}

func (r *SumRule) nextCell(it board.Iterator, c board.Cell) (board.Cell, error) {
	if r.axis == AxisRow {
		return it.CellRight(c)
	}
	return it.CellBottom(c)
}

func (r *SumRule) hasNext(it board.Iterator, c board.Cell) bool {
	if r.axis == AxisRow {
		return it.HasCellRight(c)
	}
	return it.HasCellBottom(c)
}
