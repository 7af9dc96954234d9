package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gridgames/kakuro-server/game/board"
	"github.com/gridgames/kakuro-server/game/engine"
	"github.com/gridgames/kakuro-server/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Kakuro Puzzle Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Kakuro Sum Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

PUZZLE OBJECTIVE:
Fill every playable cell with a digit 1-9 so that each run of cells sums to
the clue written in the bordering cell. Row clues constrain horizontal runs,
column clues constrain vertical runs.

AVAILABLE TOOLS:
- board_state: Get the current board with clues and filled digits
- play_move: Place a digit in a cell (value 0 clears it)
- check_move: Test a placement without changing the board
- bulk_move: Place a sequence of digits at once
- reset_game: Reset the board to its initial state
- move_history: View past placements
- create_session: Create a new puzzle session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available puzzles
- describe_cell: Inspect one cell (clue, digit, or empty)
- game_instructions: Get the full rules

NOTE: Placements that break a rule stay on the board and are reported as
violations. Use check_move to probe a cell without committing.`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	sessionIDProp := map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}

	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the puzzle config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "board_state",
		Description: "Get the current board state with clues and filled digits",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleBoardState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_move",
		Description: "Place a digit 1-9 in a cell, or 0 to clear it. The placement stays on the board even when it breaks a rule.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"row": map[string]interface{}{
					"type":        "number",
					"description": "Row of the cell (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "number",
					"description": "Column of the cell (0-based)",
				},
				"value": map[string]interface{}{
					"type":        "number",
					"description": "Digit 1-9, or 0 to clear the cell",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the reasoning behind this placement",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset the board before placing",
				},
			},
			Required: []string{"session_id", "row", "col", "value"},
		},
	}, c.handlePlayMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "check_move",
		Description: "Test whether a placement would break any rule without changing the board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"row": map[string]interface{}{
					"type":        "number",
					"description": "Row of the cell (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "number",
					"description": "Column of the cell (0-based)",
				},
				"value": map[string]interface{}{
					"type":        "number",
					"description": "Digit 1-9 to test",
				},
			},
			Required: []string{"session_id", "row", "col", "value"},
		},
	}, c.handleCheckMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Place a sequence of digits at once. Stops at the first rejected placement or once the puzzle is solved.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"moves": map[string]interface{}{
					"type":        "array",
					"description": "Placements to apply in order",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"row":   map[string]interface{}{"type": "number"},
							"col":   map[string]interface{}{"type": "number"},
							"value": map[string]interface{}{"type": "number"},
						},
						"required": []string{"row", "col", "value"},
					},
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the plan behind this sequence",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset the board before the first placement",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the board to its initial state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "View past placements for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (default 1)",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Entries per page (default 20)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete puzzle rules and tool usage guide",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed info about one board cell (clue totals, current digit, or empty)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"row": map[string]interface{}{
					"type":        "number",
					"description": "Row of the cell to describe (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "number",
					"description": "Column of the cell to describe (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall("POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall("GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		progress := ""
		if s.GameState != nil {
			progress = fmt.Sprintf(", Filled: %d/%d", s.GameState.FilledCells, s.GameState.PlayableCells)
			if s.GameState.Solved {
				progress += ", SOLVED"
			}
		}
		result += fmt.Sprintf("- %s (Config: %s%s, Created: %s)\n",
			s.ID, s.ConfigName, progress, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleBoardState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handlePlayMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row, _ := args["row"].(float64)
	col, _ := args["col"].(float64)
	value, _ := args["value"].(float64)
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent is the agent thinking out loud, nothing to process
	_ = intent

	body := map[string]interface{}{
		"row":   int(row),
		"col":   int(col),
		"value": int(value),
		"reset": reset,
	}

	var result service.MoveResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleCheckMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row, _ := args["row"].(float64)
	col, _ := args["col"].(float64)
	value, _ := args["value"].(float64)

	body := map[string]interface{}{
		"row":   int(row),
		"col":   int(col),
		"value": int(value),
	}

	var result service.CheckResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/check-move", sessionID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.RuleBroken {
		return mcp.NewToolResultText(fmt.Sprintf("Placing %d at (%d,%d) would break: %s",
			int(value), int(row), int(col), strings.Join(result.Violations, ", "))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Placing %d at (%d,%d) breaks no rule", int(value), int(row), int(col))), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	_ = intent

	moves := make([]map[string]int, 0, len(movesRaw))
	for _, m := range movesRaw {
		entry, ok := m.(map[string]interface{})
		if !ok {
			continue
		}
		row, _ := entry["row"].(float64)
		col, _ := entry["col"].(float64)
		value, _ := entry["value"].(float64)
		moves = append(moves, map[string]int{
			"row":   int(row),
			"col":   int(col),
			"value": int(value),
		})
	}

	body := map[string]interface{}{
		"moves": moves,
		"reset": reset,
	}

	var result service.BulkMoveResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bulk-move", sessionID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkMoveResult(sessionID, &result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall("GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Puzzles:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (id: %s)\n  %s\n  Board: %dx%d, Rules: %s\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Rows, config.Columns, strings.Join(config.Rules, ", "))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Kakuro Sum Puzzle - Complete Instructions

PUZZLE OBJECTIVE:
Fill every playable cell with a digit 1-9 so that each run of consecutive
cells adds up to the clue written at its head. The puzzle is solved when all
playable cells are filled and every run matches its clue.

BOARD LAYOUT:
The board mixes two kinds of cells.
• Clue (border) cells: rendered as D\R. D is the expected sum of the run of
  cells BELOW the clue (the column run). R is the expected sum of the run of
  cells to the RIGHT of the clue (the row run). A clue cell with neither
  total is rendered as ###.
• Playable cells: rendered as their digit once filled, or . while empty.

RUNS:
A run is a maximal stretch of playable cells between clue cells (or the
board edge). Each run is checked against exactly one clue: the nearest clue
cell scanning back toward the start of the row (RowSumRule) or the top of
the column (ColumnSumRule).

RULE CHECKING:
• A placement that makes a run exceed or miss its clue is reported as a
  violation, but it STAYS on the board. Fix it by overwriting or clearing.
• check_move tests a placement speculatively without touching the board.
• Value 0 clears a cell.
• Checking is strict: empty cells count as 0, so any run whose current sum
  differs from its clue is reported as a violation, including partially
  filled runs still below their total. Expect violations to shrink as runs
  complete; the board is solved once every run matches its clue.

STRATEGY HINTS FOR AGENTS:
1. Start with short runs and extreme clues. A 2-cell run summing to 3 can
   only be 1+2; a 2-cell run summing to 17 can only be 8+9.
2. Cross-reference: every playable cell belongs to one row run and one
   column run. Both clues must hold at once.
3. Use check_move before committing when you are unsure, it never mutates
   the board.
4. Use bulk_move to play a planned sequence efficiently; it stops early on
   the first out-of-bounds or border-cell placement.
5. When stuck, clear suspect cells (value 0) rather than resetting the whole
   board.

SESSION MANAGEMENT:
- Multiple puzzle sessions can run simultaneously
- Each session has a unique short ID and maintains independent state
- Sessions persist across server restarts

TOOLS:
- board_state, describe_cell for reading the board
- play_move, bulk_move, check_move for placements
- reset_game, move_history for bookkeeping
- create_session, get_session, list_sessions, list_configs for sessions`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	rowArg, _ := args["row"].(float64)
	colArg, _ := args["col"].(float64)
	row, col := int(rowArg), int(colArg)

	var state engine.GameState
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if row < 0 || row >= state.Rows || col < 0 || col >= state.Columns {
		return mcp.NewToolResultError(fmt.Sprintf("Cell (%d,%d) is out of bounds. Board is %dx%d (rows 0-%d, cols 0-%d)",
			row, col, state.Rows, state.Columns, state.Rows-1, state.Columns-1)), nil
	}

	cell := state.Cells[row][col]

	var result string
	if cell.Border {
		clues := []string{}
		if cell.ColumnTotal > 0 {
			clues = append(clues, fmt.Sprintf("column run below must sum to %d", cell.ColumnTotal))
		}
		if cell.RowTotal > 0 {
			clues = append(clues, fmt.Sprintf("row run to the right must sum to %d", cell.RowTotal))
		}
		clueText := "no clue totals, purely structural"
		if len(clues) > 0 {
			clueText = strings.Join(clues, "; ")
		}
		result = fmt.Sprintf("Cell (%d,%d) is a CLUE cell.\nClues: %s.\nDigits cannot be placed here.", row, col, clueText)
	} else if cell.Value == 0 {
		result = fmt.Sprintf("Cell (%d,%d) is PLAYABLE and currently empty.\nPlace a digit 1-9 with play_move.", row, col)
	} else {
		result = fmt.Sprintf("Cell (%d,%d) is PLAYABLE and holds %d.\nOverwrite with another digit or clear with value 0.", row, col, cell.Value)
	}

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

// formatGameState renders the board. Clue cells show as D\R (down\right
// totals), empty playable cells as a dot, filled cells as their digit.
func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "(no state)"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Board %dx%d | Filled: %d/%d | Moves: %d\n\n",
		state.Rows, state.Columns, state.FilledCells, state.PlayableCells, state.TotalMoves))

	for r := 0; r < state.Rows && r < len(state.Cells); r++ {
		tokens := make([]string, 0, state.Columns)
		for c := 0; c < state.Columns && c < len(state.Cells[r]); c++ {
			tokens = append(tokens, cellToken(state.Cells[r][c]))
		}
		b.WriteString(strings.Join(tokens, " "))
		b.WriteString("\n")
	}

	if state.Solved {
		b.WriteString("\nPUZZLE SOLVED!")
	}

	if state.Message != "" {
		b.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return b.String()
}

// cellToken renders one cell as a fixed-width token
func cellToken(cell board.Cell) string {
	if cell.Border {
		if cell.ColumnTotal == 0 && cell.RowTotal == 0 {
			return "  ### "
		}
		down := " "
		if cell.ColumnTotal > 0 {
			down = fmt.Sprintf("%d", cell.ColumnTotal)
		}
		right := " "
		if cell.RowTotal > 0 {
			right = fmt.Sprintf("%d", cell.RowTotal)
		}
		return fmt.Sprintf("%3s\\%-2s", down, right)
	}
	if cell.Value == 0 {
		return "   .  "
	}
	return fmt.Sprintf("   %d  ", cell.Value)
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if len(result.Violations) == 0 {
		response = "✓ Placement ok\n"
	} else {
		response = fmt.Sprintf("✗ Placement breaks: %s\n", strings.Join(result.Violations, ", "))
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	configName := ""
	if result.GameState != nil {
		configName = result.GameState.ConfigName
	}
	b.WriteString(fmt.Sprintf("Session: %s • Config: %s\n", sessionID, configName))
	b.WriteString(fmt.Sprintf("Executed %d/%d placements (filled %d → %d)\n",
		result.MovesExecuted, result.RequestedMoves, result.StartFilled, result.EndFilled))
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Batch truncated to %d placements\n", result.Limit))
	}
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s\n", result.StoppedReason))
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, step := range result.Steps {
			mark := "✓"
			if len(step.Violations) > 0 {
				mark = fmt.Sprintf("✗ %s", strings.Join(step.Violations, ", "))
			}
			b.WriteString(fmt.Sprintf("%d. (%d,%d)=%d %s\n",
				step.Idx, step.Position.Row, step.Position.Col, step.Value, mark))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Move History (%d total, page %d/%d):\n\n",
		history.TotalMoves, history.Page, history.TotalPages))

	for _, move := range history.Moves {
		status := "✓"
		if !move.Success {
			status = "✗"
		} else if len(move.Violations) > 0 {
			status = fmt.Sprintf("⚠ %s", strings.Join(move.Violations, ", "))
		}

		action := fmt.Sprintf("(%d,%d)=%d", move.Position.Row, move.Position.Col, move.Value)
		if move.Value == 0 {
			action = fmt.Sprintf("clear (%d,%d)", move.Position.Row, move.Position.Col)
		}

		b.WriteString(fmt.Sprintf("#%d %s %s\n", move.MoveNumber, action, status))
	}

	if len(history.Moves) == 0 {
		b.WriteString("(no moves yet)\n")
	}

	return b.String()
}
