// Package service provides the business logic layer for the Kakuro
// sum-puzzle server.
//
// The service package implements:
//   - Multi-session game management
//   - Move processing against the rule engine
//   - Speculative move checking without committing values
//   - Session lifecycle management
//   - Move history tracking
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages puzzle configuration loading.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the game engine, providing session isolation, configuration
// management, and business logic orchestration. Each session maintains its
// own game engine instance with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.PlayMove(ctx, sessionInfo.ID, board.Move{
//		Position: board.Position{Row: 1, Col: 2},
//		Value:    4,
//	}, false)
//
// Sessions are identified by unique IDs and maintain independent game
// state. Multiple sessions can run concurrently with different puzzles;
// all operations on one session are serialized by the service.
package service
