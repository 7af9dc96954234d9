package service

import (
	"time"

	"github.com/gridgames/kakuro-server/game/board"
	"github.com/gridgames/kakuro-server/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a single placement.
type MoveResult struct {
	Applied    bool              `json:"applied"`
	Violations []string          `json:"violations,omitempty"`
	Solved     bool              `json:"solved"`
	GameState  *engine.GameState `json:"game_state"`
	Message    string            `json:"message"`
	Events     []GameEvent       `json:"events,omitempty"`
}

// CheckResult contains the result of a speculative move check. Nothing on
// the board changes when one is produced.
type CheckResult struct {
	Move       board.Move `json:"move"`
	RuleBroken bool       `json:"rule_broken"`
	Violations []string   `json:"violations,omitempty"`
}

// BulkMoveResult contains the result of a sequence of placements.
type BulkMoveResult struct {
	// Summary
	RequestedMoves int               `json:"requested_moves"`
	MovesExecuted  int               `json:"moves_executed"`
	Success        bool              `json:"success"`
	Solved         bool              `json:"solved"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // invalid_move|out_of_bounds|border_cell|solved
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	// Start/end snapshot
	StartFilled int `json:"start_filled"`
	EndFilled   int `json:"end_filled"`

	// Per-step compact trace (only for this call)
	Steps []StepInfo `json:"steps,omitempty"`

	Message string `json:"message,omitempty"`
}

// StepInfo is a compact record for each executed placement in a bulk call.
type StepInfo struct {
	Idx        int            `json:"idx"`
	Position   board.Position `json:"position"`
	Value      int            `json:"value"`
	Violations []string       `json:"violations,omitempty"`
	Success    bool           `json:"success"`
	Solved     bool           `json:"solved,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string         `json:"type"` // "move", "clear", "violation", "solved", "reset"
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Position  board.Position `json:"position,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle configuration
type ConfigInfo struct {
	Filename    string   `json:"filename"`
	ConfigID    string   `json:"config_id"` // The identifier to use for session creation
	Name        string   `json:"name"`      // Display name
	Description string   `json:"description"`
	Rows        int      `json:"rows"`
	Columns     int      `json:"columns"`
	Rules       []string `json:"rules"`
}
