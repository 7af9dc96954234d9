// Package session manages game session lifecycle for the Kakuro sum-puzzle
// server.
//
// A session ties a generated ID to a running game engine and the puzzle
// configuration it was created from. The Manager keeps sessions in memory
// behind a mutex and, when a SessionPersistence implementation is attached,
// transparently saves sessions to storage and lazily reloads them on access.
//
// Session IDs are matched case-insensitively so clients can be sloppy about
// casing. IDs generated by the Manager are short uuid-derived tokens.
//
// FilePersistence is the default SessionPersistence implementation. It
// stores each session as a JSON file containing the session metadata and the
// full game state, and rebuilds the engine from the referenced puzzle
// configuration on load.
package session
