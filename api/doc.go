// Package api implements the REST interface of the Kakuro sum-puzzle
// server.
//
// Routes (all JSON, under /api):
//
//	POST   /sessions                  create a session (optional config_id)
//	GET    /sessions                  list sessions, sortable and limitable
//	GET    /sessions/unified          combined multi-session view
//	GET    /sessions/{id}             session info with full game state
//	DELETE /sessions/{id}             delete a session
//	GET    /sessions/{id}/state       current board state
//	POST   /sessions/{id}/move        place or clear a digit
//	POST   /sessions/{id}/check-move  validate a placement without applying it
//	POST   /sessions/{id}/bulk-move   play a sequence of placements
//	POST   /sessions/{id}/reset       reset the board
//	GET    /sessions/{id}/history     paginated move history
//	GET    /configs                   list available puzzles
//	POST   /configs                   save a new puzzle definition
//	GET    /configs/{name}            fetch a puzzle definition
//
// GET /health reports liveness and /ws?session=<id> upgrades to a WebSocket
// that streams board updates for the session.
//
// The server delegates all game logic to service.GameService and pushes
// state changes to the websocket.Hub so watchers stay in sync regardless of
// which transport made the move.
package api
