// Package websocket provides real-time board updates for the Kakuro
// sum-puzzle server.
//
// The Hub fans game state snapshots out to every client watching a session.
// Clients connect through /ws?session=<id> on the REST server; each placement,
// clear, or reset made through any transport is pushed to all of them, so
// several viewers can follow the same puzzle live.
//
// All session bookkeeping happens on the hub goroutine started by Run.
// Producers hand messages to the hub through channels and never touch the
// client set directly.
package websocket
