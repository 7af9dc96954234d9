package board

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrBorderCell  = errors.New("cannot place a value on a border cell")
	ErrMalformed   = errors.New("malformed board")
)

// Iterator is the traversal contract rules use to walk a board without
// knowing its storage. Directional Cell* lookups fail with ErrOutOfBounds
// when the matching Has* check would return false; callers are expected to
// check existence first.
type Iterator interface {
	HasCellTop(c Cell) bool
	HasCellBottom(c Cell) bool
	HasCellLeft(c Cell) bool
	HasCellRight(c Cell) bool

	CellTop(c Cell) (Cell, error)
	CellBottom(c Cell) (Cell, error)
	CellLeft(c Cell) (Cell, error)
	CellRight(c Cell) (Cell, error)

	CellAt(p Position) (Cell, error)
}

// Board owns a rectangular grid of cells. It implements Iterator.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

// New builds a board from a cell matrix. The matrix must be rectangular and
// non-empty, and every cell's position must match its matrix indices. The
// board takes ownership of a copy of the matrix.
func New(cells [][]Cell) (*Board, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformed)
	}

	rows := len(cells)
	cols := len(cells[0])

	grid := make([][]Cell, rows)
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, r, len(row), cols)
		}
		grid[r] = make([]Cell, cols)
		for c, cell := range row {
			if cell.Position.Row != r || cell.Position.Col != c {
				return nil, fmt.Errorf("%w: cell at index (%d,%d) declares position (%d,%d)",
					ErrMalformed, r, c, cell.Position.Row, cell.Position.Col)
			}
			grid[r][c] = cell
		}
	}

	return &Board{rows: rows, cols: cols, cells: grid}, nil
}

// Rows returns the number of rows in the grid.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns in the grid.
func (b *Board) Cols() int { return b.cols }

// Contains reports whether the position lies within the grid extent.
func (b *Board) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// CellAt returns a copy of the cell at the given position.
func (b *Board) CellAt(p Position) (Cell, error) {
	if !b.Contains(p) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, p.Row, p.Col, b.rows, b.cols)
	}
	return b.cells[p.Row][p.Col], nil
}

// Apply writes a move's value into its target cell. Border cells are not
// playable and reject writes. The write completes before any rule check
// that observes it begins; the board performs no synchronization of its
// own.
func (b *Board) Apply(m Move) error {
	if !b.Contains(m.Position) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, m.Position.Row, m.Position.Col, b.rows, b.cols)
	}
	if b.cells[m.Position.Row][m.Position.Col].Border {
		return fmt.Errorf("%w: (%d,%d)", ErrBorderCell, m.Position.Row, m.Position.Col)
	}
	b.cells[m.Position.Row][m.Position.Col].Value = m.Value
	return nil
}

// Cells returns a deep copy of the grid, suitable for state snapshots.
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.rows)
	for r := range b.cells {
		out[r] = make([]Cell, b.cols)
		copy(out[r], b.cells[r])
	}
	return out
}

// HasCellTop reports whether a cell exists directly above c.
func (b *Board) HasCellTop(c Cell) bool {
	return c.Position.Row > 0
}

// HasCellBottom reports whether a cell exists directly below c.
func (b *Board) HasCellBottom(c Cell) bool {
	return c.Position.Row < b.rows-1
}

// HasCellLeft reports whether a cell exists directly left of c.
func (b *Board) HasCellLeft(c Cell) bool {
	return c.Position.Col > 0
}

// HasCellRight reports whether a cell exists directly right of c.
func (b *Board) HasCellRight(c Cell) bool {
	return c.Position.Col < b.cols-1
}

// CellTop returns the cell directly above c.
func (b *Board) CellTop(c Cell) (Cell, error) {
	return b.CellAt(Position{Row: c.Position.Row - 1, Col: c.Position.Col})
}

// CellBottom returns the cell directly below c.
func (b *Board) CellBottom(c Cell) (Cell, error) {
	return b.CellAt(Position{Row: c.Position.Row + 1, Col: c.Position.Col})
}

// CellLeft returns the cell directly left of c.
func (b *Board) CellLeft(c Cell) (Cell, error) {
	return b.CellAt(Position{Row: c.Position.Row, Col: c.Position.Col - 1})
}

// CellRight returns the cell directly right of c.
func (b *Board) CellRight(c Cell) (Cell, error) {
	return b.CellAt(Position{Row: c.Position.Row, Col: c.Position.Col + 1})
}
