package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gridgames/kakuro-server/game/board"
	"github.com/gridgames/kakuro-server/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config display name, used
// for consistent API responses.
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// sessionInfo assembles the API view of a session.
func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	info := s.sessionInfo(session)
	if configName != "" {
		info.ConfigName = configName
	}
	return info, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// PlayMove executes a single placement for a session.
func (s *gameServiceImpl) PlayMove(ctx context.Context, sessionID string, move board.Move, reset bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	events := []GameEvent{}
	if reset {
		sess.Engine.Reset()
		events = append(events, GameEvent{
			Type:      "reset",
			Message:   "Puzzle reset to initial state",
			Timestamp: time.Now(),
		})
	}

	outcome, err := sess.Engine.PlayMove(move)
	if err != nil {
		return nil, err
	}

	events = append(events, s.moveEvents(move, outcome)...)

	result := &MoveResult{
		Applied:    outcome.Applied,
		Violations: outcome.Violations,
		Solved:     outcome.Solved,
		GameState:  sess.Engine.GetState(),
		Message:    outcome.Message,
		Events:     events,
	}

	// Auto-save session after move
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after move: %v", sessionID, err)
	}

	return result, nil
}

// CheckMove validates a placement without committing it to the board.
func (s *gameServiceImpl) CheckMove(ctx context.Context, sessionID string, move board.Move) (*CheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	violations, err := sess.Engine.CheckMove(move)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Move:       move,
		RuleBroken: len(violations) > 0,
		Violations: violations,
	}, nil
}

// ClearCell removes the digit from a cell.
func (s *gameServiceImpl) ClearCell(ctx context.Context, sessionID string, pos board.Position) (*MoveResult, error) {
	return s.PlayMove(ctx, sessionID, board.Move{Position: pos, Value: engine.EmptyValue}, false)
}

// BulkMove executes multiple placements in sequence. The sequence stops at
// the first move the board rejects or once the puzzle is solved.
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []board.Move, reset bool) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	startState := sess.Engine.GetState()
	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
		StartFilled:    startState.FilledCells,
	}

	if reset {
		sess.Engine.Reset()
		result.Events = append(result.Events, GameEvent{
			Type:      "reset",
			Message:   "Puzzle reset to initial state",
			Timestamp: time.Now(),
		})
	}

	// Limit moves to prevent abuse
	if len(moves) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		moves = moves[:engine.MaxBulkMoves]
	}

	for i, move := range moves {
		outcome, err := sess.Engine.PlayMove(move)
		if err != nil {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d rejected: %v", i+1, err)
			result.StoppedOnMove = i + 1
			result.StopReasonCode = stopReasonCode(err)
			break
		}

		result.MovesExecuted++
		result.Events = append(result.Events, s.moveEvents(move, outcome)...)
		result.Steps = append(result.Steps, StepInfo{
			Idx:        i + 1,
			Position:   move.Position,
			Value:      move.Value,
			Violations: outcome.Violations,
			Success:    true,
			Solved:     outcome.Solved,
		})

		if outcome.Solved {
			result.Solved = true
			if i < len(moves)-1 {
				result.StoppedReason = "puzzle solved"
				result.StopReasonCode = "solved"
				result.StoppedOnMove = i + 1
			}
			break
		}
	}

	endState := sess.Engine.GetState()
	result.GameState = endState
	result.EndFilled = endState.FilledCells
	result.Solved = endState.Solved
	result.Message = endState.Message

	// Auto-save session after bulk moves
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after bulk moves: %v", sessionID, err)
	}

	return result, nil
}

// Reset resets a game session to its initial board.
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()

	// Auto-save session after reset
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after reset: %v", sessionID, err)
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}
	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available puzzle configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific puzzle configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a puzzle configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// moveEvents generates the events a move outcome implies.
func (s *gameServiceImpl) moveEvents(move board.Move, outcome *engine.MoveOutcome) []GameEvent {
	now := time.Now()
	events := []GameEvent{}

	eventType := "move"
	message := fmt.Sprintf("Placed %d at (%d,%d)", move.Value, move.Position.Row, move.Position.Col)
	if move.Value == engine.EmptyValue {
		eventType = "clear"
		message = fmt.Sprintf("Cleared cell (%d,%d)", move.Position.Row, move.Position.Col)
	}
	events = append(events, GameEvent{
		Type:      eventType,
		Message:   message,
		Timestamp: now,
		Position:  move.Position,
	})

	if len(outcome.Violations) > 0 {
		events = append(events, GameEvent{
			Type:      "violation",
			Message:   fmt.Sprintf("Move breaks: %s", strings.Join(outcome.Violations, ", ")),
			Timestamp: now,
			Position:  move.Position,
		})
	}

	if outcome.Solved {
		events = append(events, GameEvent{
			Type:      "solved",
			Message:   "Puzzle solved!",
			Timestamp: now,
		})
	}

	return events
}

// stopReasonCode maps an engine error to a machine-friendly code.
func stopReasonCode(err error) string {
	switch {
	case errors.Is(err, board.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, board.ErrBorderCell):
		return "border_cell"
	default:
		return "invalid_move"
	}
}
