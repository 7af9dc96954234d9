package board

// Position identifies a cell by 0-based row and column coordinates.
// Positions are immutable values; equality is structural.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell represents a single grid slot. Border cells anchor a run and carry
// the expected totals for the runs they start; their Value is always 0.
// On playable cells RowTotal and ColumnTotal are 0 and Value holds the
// placed digit (0 means empty).
type Cell struct {
	Position    Position `json:"position"`
	Value       int      `json:"value"`
	RowTotal    int      `json:"row_total,omitempty"`
	ColumnTotal int      `json:"column_total,omitempty"`
	Border      bool     `json:"border,omitempty"`
}

// Empty reports whether a playable cell has no digit placed yet.
func (c Cell) Empty() bool {
	return !c.Border && c.Value == 0
}

// Move is a proposed value placement: target position plus the value being
// placed. A value of 0 clears the target cell. Moves are transient and are
// constructed per validation call.
type Move struct {
	Position Position `json:"position"`
	Value    int      `json:"value"`
}
