package rules

import (
	"fmt"

	"github.com/gridgames/kakuro-server/game/board"
)

// Rule checks a single puzzle constraint against a candidate move.
//
// IsRuleBroken must be a pure function of the current board state plus the
// move: no mutation, no hidden state across calls. The board is expected to
// already hold the move's candidate value when the check runs (the engine
// applies the move before validating). A non-nil error means the traversal
// itself failed, typically because a malformed board let the walk run past
// the grid bounds; the boolean result is meaningless in that case.
type Rule interface {
	Name() string
	IsRuleBroken(it board.Iterator, move board.Move) (bool, error)
}

// GameRules is the ordered set of rules bound to one puzzle.
type GameRules struct {
	rules []Rule
}

// NewGameRules groups already-constructed rules into a set.
func NewGameRules(rules ...Rule) *GameRules {
	return &GameRules{rules: rules}
}

// Rules returns the rules in evaluation order.
func (g *GameRules) Rules() []Rule {
	return g.rules
}

// Check evaluates every rule against the move and returns the names of the
// rules the move breaks. All rules are evaluated; there is no
// short-circuit, so callers see the complete violation list.
func (g *GameRules) Check(it board.Iterator, move board.Move) ([]string, error) {
	var broken []string
	for _, r := range g.rules {
		isBroken, err := r.IsRuleBroken(it, move)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Name(), err)
		}
		if isBroken {
			broken = append(broken, r.Name())
		}
	}
	return broken, nil
}
