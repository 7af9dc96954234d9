package board

import (
	"errors"
	"testing"
)

// testGrid builds a 3x4 grid with a border column on the left and a border
// row on top, the usual Kakuro frame shape.
func testGrid() [][]Cell {
	rows, cols := 3, 4
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = Cell{
				Position: Position{Row: r, Col: c},
				Border:   r == 0 || c == 0,
			}
		}
	}
	return cells
}

func mustBoard(t *testing.T, cells [][]Cell) *Board {
	t.Helper()
	b, err := New(cells)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNew(t *testing.T) {
	b := mustBoard(t, testGrid())

	if b.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", b.Rows())
	}
	if b.Cols() != 4 {
		t.Errorf("Cols() = %d, want 4", b.Cols())
	}
}

func TestNew_JaggedGrid(t *testing.T) {
	cells := testGrid()
	cells[1] = cells[1][:3]

	if _, err := New(cells); !errors.Is(err, ErrMalformed) {
		t.Errorf("New with jagged grid: err = %v, want ErrMalformed", err)
	}
}

func TestNew_EmptyGrid(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrMalformed) {
		t.Errorf("New(nil): err = %v, want ErrMalformed", err)
	}
	if _, err := New([][]Cell{{}}); !errors.Is(err, ErrMalformed) {
		t.Errorf("New with empty row: err = %v, want ErrMalformed", err)
	}
}

func TestNew_PositionMismatch(t *testing.T) {
	cells := testGrid()
	cells[1][2].Position = Position{Row: 2, Col: 2}

	if _, err := New(cells); !errors.Is(err, ErrMalformed) {
		t.Errorf("New with mismatched position: err = %v, want ErrMalformed", err)
	}
}

func TestCellAt(t *testing.T) {
	b := mustBoard(t, testGrid())

	cell, err := b.CellAt(Position{Row: 1, Col: 2})
	if err != nil {
		t.Fatalf("CellAt: %v", err)
	}
	if cell.Position != (Position{Row: 1, Col: 2}) {
		t.Errorf("CellAt position = %+v", cell.Position)
	}
	if cell.Border {
		t.Error("interior cell unexpectedly marked border")
	}
}

func TestCellAt_OutOfBounds(t *testing.T) {
	b := mustBoard(t, testGrid())

	tests := []Position{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 3, Col: 0},
		{Row: 0, Col: 4},
	}

	for _, p := range tests {
		if _, err := b.CellAt(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CellAt(%+v): err = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestDirectionalExistence(t *testing.T) {
	b := mustBoard(t, testGrid())

	corner, _ := b.CellAt(Position{Row: 0, Col: 0})
	if b.HasCellTop(corner) {
		t.Error("HasCellTop at row 0 should be false")
	}
	if b.HasCellLeft(corner) {
		t.Error("HasCellLeft at col 0 should be false")
	}
	if !b.HasCellBottom(corner) || !b.HasCellRight(corner) {
		t.Error("corner should have bottom and right neighbors")
	}

	far, _ := b.CellAt(Position{Row: 2, Col: 3})
	if b.HasCellBottom(far) {
		t.Error("HasCellBottom at last row should be false")
	}
	if b.HasCellRight(far) {
		t.Error("HasCellRight at last col should be false")
	}
}

func TestDirectionalLookup(t *testing.T) {
	b := mustBoard(t, testGrid())
	center, _ := b.CellAt(Position{Row: 1, Col: 2})

	tests := []struct {
		name string
		get  func(Cell) (Cell, error)
		want Position
	}{
		{"top", b.CellTop, Position{Row: 0, Col: 2}},
		{"bottom", b.CellBottom, Position{Row: 2, Col: 2}},
		{"left", b.CellLeft, Position{Row: 1, Col: 1}},
		{"right", b.CellRight, Position{Row: 1, Col: 3}},
	}

	for _, tt := range tests {
		got, err := tt.get(center)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got.Position != tt.want {
			t.Errorf("%s: position = %+v, want %+v", tt.name, got.Position, tt.want)
		}
	}
}

// A directional lookup without the matching existence check must surface an
// out-of-bounds error, never a wrapped or zero placeholder.
func TestDirectionalLookup_OutOfBounds(t *testing.T) {
	b := mustBoard(t, testGrid())

	last, _ := b.CellAt(Position{Row: 2, Col: 3})
	if _, err := b.CellRight(last); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CellRight on last column: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := b.CellBottom(last); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CellBottom on last row: err = %v, want ErrOutOfBounds", err)
	}

	first, _ := b.CellAt(Position{Row: 0, Col: 0})
	if _, err := b.CellTop(first); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CellTop on first row: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := b.CellLeft(first); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CellLeft on first column: err = %v, want ErrOutOfBounds", err)
	}
}

func TestApply(t *testing.T) {
	b := mustBoard(t, testGrid())
	pos := Position{Row: 1, Col: 2}

	if err := b.Apply(Move{Position: pos, Value: 7}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	cell, _ := b.CellAt(pos)
	if cell.Value != 7 {
		t.Errorf("value after Apply = %d, want 7", cell.Value)
	}

	// Clearing writes zero back.
	if err := b.Apply(Move{Position: pos, Value: 0}); err != nil {
		t.Fatalf("Apply clear: %v", err)
	}
	cell, _ = b.CellAt(pos)
	if !cell.Empty() {
		t.Error("cell should be empty after clearing")
	}
}

func TestApply_BorderCell(t *testing.T) {
	b := mustBoard(t, testGrid())

	err := b.Apply(Move{Position: Position{Row: 0, Col: 1}, Value: 5})
	if !errors.Is(err, ErrBorderCell) {
		t.Errorf("Apply on border cell: err = %v, want ErrBorderCell", err)
	}
}

func TestApply_OutOfBounds(t *testing.T) {
	b := mustBoard(t, testGrid())

	err := b.Apply(Move{Position: Position{Row: 5, Col: 5}, Value: 5})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Apply out of bounds: err = %v, want ErrOutOfBounds", err)
	}
}

// Cells must return an independent copy; mutating it must not leak into the
// board.
func TestCells_NoAliasing(t *testing.T) {
	b := mustBoard(t, testGrid())

	snapshot := b.Cells()
	snapshot[1][1].Value = 99

	cell, _ := b.CellAt(Position{Row: 1, Col: 1})
	if cell.Value == 99 {
		t.Error("mutating snapshot leaked into board")
	}
}
