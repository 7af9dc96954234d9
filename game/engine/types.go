package engine

import "github.com/gridgames/kakuro-server/game/board"

const (
	// Validation constants
	MinBoardSize = 1
	MaxBoardSize = 50
	MinCellValue = 1
	MaxCellValue = 9
	EmptyValue   = 0
	MaxBulkMoves = 50
)

// CellConfig describes one cell of the puzzle layout in a configuration
// file. Border cells carry the expected run totals; playable cells may
// carry a pre-filled value.
type CellConfig struct {
	Row         int  `json:"row"`
	Col         int  `json:"col"`
	Value       int  `json:"value,omitempty"`
	RowTotal    int  `json:"row_total,omitempty"`
	ColumnTotal int  `json:"column_total,omitempty"`
	Border      bool `json:"border,omitempty"`
}

// GameConfig represents a puzzle definition loaded from JSON.
type GameConfig struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Rows        int            `json:"rows"`
	Columns     int            `json:"columns"`
	Cells       [][]CellConfig `json:"cells"`
	Rules       []string       `json:"rules"`
	Messages    struct {
		Welcome     string `json:"welcome"`
		MovePlaced  string `json:"move_placed"`
		CellCleared string `json:"cell_cleared"`
		RuleBroken  string `json:"rule_broken"`
		Solved      string `json:"solved"`
	} `json:"messages"`
}

// GameState is a serializable snapshot of the game.
type GameState struct {
	Cells         [][]board.Cell `json:"cells"`
	Rows          int            `json:"rows"`
	Columns       int            `json:"columns"`
	PlayableCells int            `json:"playable_cells"`
	FilledCells   int            `json:"filled_cells"`
	Solved        bool           `json:"solved"`
	Message       string         `json:"message"`
	ConfigName    string         `json:"config_name"`
	MoveHistory   []MoveHistoryEntry `json:"move_history"`
	TotalMoves    int            `json:"total_moves"`

	// CurrentMoves tracks only the moves since the last reset. It mirrors
	// MoveHistory entries but gets cleared on reset while MoveHistory
	// remains cumulative.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`
}

// MoveHistoryEntry records a single placement attempt.
type MoveHistoryEntry struct {
	Position   board.Position `json:"position"`
	Value      int            `json:"value"`
	Violations []string       `json:"violations,omitempty"`
	Success    bool           `json:"success"`
	Timestamp  int64          `json:"timestamp"`
	MoveNumber int            `json:"move_number"`
}

// MoveOutcome is the result of applying a move to the board.
type MoveOutcome struct {
	Applied    bool     `json:"applied"`
	Violations []string `json:"violations,omitempty"`
	Solved     bool     `json:"solved"`
	Message    string   `json:"message"`
}
