// Package board provides the grid data model for Kakuro-style puzzles.
//
// A Board is a rectangular grid of Cells indexed 0-based by (row, column).
// Two kinds of cells exist: playable cells that hold a placed digit, and
// border (clue) cells that anchor a run and carry the expected totals for
// the row and column runs they start.
//
// Traversal is exposed through the Iterator interface, implemented by
// *Board. Iterator methods take an explicit cell or position argument and
// carry no cursor state, so rules can walk the grid without knowing how it
// is stored. Directional lookups made without a matching existence check
// fail with ErrOutOfBounds rather than clamping or wrapping.
//
// Usage:
//
//	it := brd // *Board satisfies Iterator
//	cell, err := it.CellAt(board.Position{Row: 1, Col: 2})
//	if err != nil {
//		return err
//	}
//	for it.HasCellLeft(cell) {
//		cell, _ = it.CellLeft(cell)
//	}
//
// The board is read-only once constructed except for Apply, which writes a
// move's value into its target cell. Lookups return cell copies; callers
// never hold references into the grid.
package board
