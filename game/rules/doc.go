// Package rules implements the constraint rules a candidate move is
// validated against.
//
// A Rule decides whether applying a move would violate one puzzle
// constraint. Rules are pure readers: they hold only their own
// configuration (such as which axis they walk), never mutate the board,
// and may be evaluated against the same board from multiple goroutines as
// long as nothing writes to it concurrently.
//
// The sum rule family walks the run containing the move's cell: backward
// to the border cell that anchors the run and stores the expected total,
// then forward to the far end, accumulating every playable value exactly
// once. The rule is broken when the accumulated sum differs from the
// expected total. Row-wise and column-wise variants share the single
// algorithm and differ only in their direction bindings.
//
// Rule instances for a puzzle are resolved from configuration by name
// through NewRuleByName and grouped into a GameRules set.
package rules
