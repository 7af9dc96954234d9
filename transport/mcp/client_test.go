package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gridgames/kakuro-server/game/board"
	"github.com/gridgames/kakuro-server/game/engine"
	"github.com/gridgames/kakuro-server/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}
	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}
	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}
	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	t.Run("decodes response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{"id": "abcd1234", "config_name": "classic"})
		}))
		defer server.Close()

		client := NewClient(server.URL)

		var response map[string]interface{}
		if err := client.apiCall("GET", "/api/sessions/abcd1234", nil, &response); err != nil {
			t.Fatalf("apiCall failed: %v", err)
		}
		if response["id"] != "abcd1234" {
			t.Errorf("Expected id abcd1234, got %v", response["id"])
		}
	})

	t.Run("surfaces API errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
		}))
		defer server.Close()

		client := NewClient(server.URL)

		err := client.apiCall("GET", "/api/sessions/missing", nil, nil)
		if err == nil {
			t.Fatal("Expected error from 404 response")
		}
		if err.Error() != "session not found" {
			t.Errorf("Expected API error message, got %v", err)
		}
	})
}

func callToolRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("Expected tool result content")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func testState() *engine.GameState {
	return &engine.GameState{
		Rows:          2,
		Columns:       3,
		PlayableCells: 2,
		FilledCells:   1,
		ConfigName:    "mini",
		Cells: [][]board.Cell{
			{
				{Position: board.Position{Row: 0, Col: 0}, Border: true},
				{Position: board.Position{Row: 0, Col: 1}, Border: true, ColumnTotal: 4},
				{Position: board.Position{Row: 0, Col: 2}, Border: true, ColumnTotal: 6},
			},
			{
				{Position: board.Position{Row: 1, Col: 0}, Border: true, RowTotal: 10},
				{Position: board.Position{Row: 1, Col: 1}, Value: 4},
				{Position: board.Position{Row: 1, Col: 2}},
			},
		},
	}
}

func TestHandleBoardState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sessions/abcd/state" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(testState())
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleBoardState(context.Background(), callToolRequest(map[string]interface{}{
		"session_id": "abcd",
	}))
	if err != nil {
		t.Fatalf("handleBoardState failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Board 2x3") {
		t.Errorf("Expected board header, got:\n%s", text)
	}
	// Clue tokens read down\right, so a right-total of 10 renders as \10.
	if !strings.Contains(text, "\\10") {
		t.Errorf("Expected row clue 10 in rendering, got:\n%s", text)
	}
	if !strings.Contains(text, "4\\") {
		t.Errorf("Expected column clue 4 in rendering, got:\n%s", text)
	}
	if !strings.Contains(text, ".") {
		t.Errorf("Expected empty cell dot in rendering, got:\n%s", text)
	}
}

func TestHandlePlayMove(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/abcd/move" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(service.MoveResult{
			Applied:    true,
			Violations: []string{"RowSumRule"},
			GameState:  testState(),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handlePlayMove(context.Background(), callToolRequest(map[string]interface{}{
		"session_id": "abcd",
		"row":        float64(1),
		"col":        float64(2),
		"value":      float64(7),
		"intent":     "testing the run",
	}))
	if err != nil {
		t.Fatalf("handlePlayMove failed: %v", err)
	}

	if gotBody["row"] != float64(1) || gotBody["col"] != float64(2) || gotBody["value"] != float64(7) {
		t.Errorf("Move not forwarded correctly: %v", gotBody)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "RowSumRule") {
		t.Errorf("Expected violation in output, got:\n%s", text)
	}
}

func TestHandleCheckMove(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(service.CheckResult{
			Move:       board.Move{Position: board.Position{Row: 1, Col: 1}, Value: 9},
			RuleBroken: true,
			Violations: []string{"ColumnSumRule"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleCheckMove(context.Background(), callToolRequest(map[string]interface{}{
		"session_id": "abcd",
		"row":        float64(1),
		"col":        float64(1),
		"value":      float64(9),
	}))
	if err != nil {
		t.Fatalf("handleCheckMove failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "would break") || !strings.Contains(text, "ColumnSumRule") {
		t.Errorf("Expected broken-rule message, got:\n%s", text)
	}
}

func TestHandleBulkMove(t *testing.T) {
	var gotBody struct {
		Moves []map[string]int `json:"moves"`
		Reset bool             `json:"reset"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(service.BulkMoveResult{
			RequestedMoves: 2,
			MovesExecuted:  2,
			Success:        true,
			GameState:      testState(),
			Steps: []service.StepInfo{
				{Idx: 1, Position: board.Position{Row: 1, Col: 1}, Value: 4, Success: true},
				{Idx: 2, Position: board.Position{Row: 1, Col: 2}, Value: 6, Success: true},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleBulkMove(context.Background(), callToolRequest(map[string]interface{}{
		"session_id": "abcd",
		"moves": []interface{}{
			map[string]interface{}{"row": float64(1), "col": float64(1), "value": float64(4)},
			map[string]interface{}{"row": float64(1), "col": float64(2), "value": float64(6)},
		},
		"reset": true,
	}))
	if err != nil {
		t.Fatalf("handleBulkMove failed: %v", err)
	}

	if len(gotBody.Moves) != 2 {
		t.Fatalf("Expected 2 moves forwarded, got %d", len(gotBody.Moves))
	}
	if gotBody.Moves[1]["value"] != 6 {
		t.Errorf("Unexpected second move: %v", gotBody.Moves[1])
	}
	if !gotBody.Reset {
		t.Error("Expected reset flag forwarded")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Executed 2/2") {
		t.Errorf("Expected execution summary, got:\n%s", text)
	}
}

func TestHandleDescribeCell(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testState())
	}))
	defer server.Close()

	client := NewClient(server.URL)

	t.Run("clue cell", func(t *testing.T) {
		result, err := client.handleDescribeCell(context.Background(), callToolRequest(map[string]interface{}{
			"session_id": "abcd",
			"row":        float64(1),
			"col":        float64(0),
		}))
		if err != nil {
			t.Fatalf("handleDescribeCell failed: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "CLUE cell") || !strings.Contains(text, "sum to 10") {
			t.Errorf("Expected clue description, got:\n%s", text)
		}
	})

	t.Run("filled cell", func(t *testing.T) {
		result, err := client.handleDescribeCell(context.Background(), callToolRequest(map[string]interface{}{
			"session_id": "abcd",
			"row":        float64(1),
			"col":        float64(1),
		}))
		if err != nil {
			t.Fatalf("handleDescribeCell failed: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "holds 4") {
			t.Errorf("Expected filled cell description, got:\n%s", text)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		result, err := client.handleDescribeCell(context.Background(), callToolRequest(map[string]interface{}{
			"session_id": "abcd",
			"row":        float64(9),
			"col":        float64(9),
		}))
		if err != nil {
			t.Fatalf("handleDescribeCell failed: %v", err)
		}
		if !result.IsError {
			t.Error("Expected error result for out-of-bounds cell")
		}
	})
}

func TestHandleGameInstructions_DescribesStrictChecking(t *testing.T) {
	client := NewClient("http://localhost:0")

	result, err := client.handleGameInstructions(context.Background(), callToolRequest(nil))
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	text := resultText(t, result)
	// Incomplete runs are reported as violations; the instructions must not
	// tell an agent otherwise.
	if !strings.Contains(text, "differs from its clue is reported as a violation") {
		t.Errorf("Expected strict checking description, got:\n%s", text)
	}
	if strings.Contains(text, "not a violation yet") {
		t.Errorf("Instructions still claim partial runs are tolerated:\n%s", text)
	}
}

func TestFormatHistory(t *testing.T) {
	history := &service.HistoryResponse{
		TotalMoves: 2,
		Page:       1,
		TotalPages: 1,
		Moves: []engine.MoveHistoryEntry{
			{MoveNumber: 2, Position: board.Position{Row: 1, Col: 1}, Value: 0, Success: true},
			{MoveNumber: 1, Position: board.Position{Row: 1, Col: 1}, Value: 9, Success: true, Violations: []string{"RowSumRule"}},
		},
	}

	text := formatHistory(history)
	if !strings.Contains(text, "clear (1,1)") {
		t.Errorf("Expected clear entry, got:\n%s", text)
	}
	if !strings.Contains(text, "RowSumRule") {
		t.Errorf("Expected violation marker, got:\n%s", text)
	}
}
