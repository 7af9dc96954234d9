// Package mcp exposes the Kakuro sum-puzzle server to MCP-capable agents.
//
// The Client is a thin proxy: every tool call is translated into a request
// against the REST API, so the MCP surface and the HTTP surface always agree
// on game semantics. Responses are formatted as plain text with an ASCII
// rendering of the board, which works well for language-model players.
//
// Clue cells are rendered as D\R where D is the column (down) total and R
// the row (right) total, filled cells as their digit, and empty playable
// cells as a dot.
package mcp
