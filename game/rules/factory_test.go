package rules

import (
	"errors"
	"testing"

	"github.com/gridgames/kakuro-server/game/board"
)

func TestNewRuleByName(t *testing.T) {
	for _, name := range []string{RuleRowSum, RuleColumnSum} {
		r, err := NewRuleByName(name)
		if err != nil {
			t.Fatalf("NewRuleByName(%q): %v", name, err)
		}
		if r.Name() != name {
			t.Errorf("rule name = %q, want %q", r.Name(), name)
		}
	}
}

func TestNewRuleByName_Unknown(t *testing.T) {
	_, err := NewRuleByName("DiagonalSumRule")
	if !errors.Is(err, ErrUnknownRule) {
		t.Errorf("err = %v, want ErrUnknownRule", err)
	}
}

func TestNewGameRulesByNames(t *testing.T) {
	g, err := NewGameRulesByNames([]string{RuleRowSum, RuleColumnSum})
	if err != nil {
		t.Fatalf("NewGameRulesByNames: %v", err)
	}
	if len(g.Rules()) != 2 {
		t.Fatalf("len(Rules()) = %d, want 2", len(g.Rules()))
	}
	if g.Rules()[0].Name() != RuleRowSum {
		t.Errorf("order not preserved: first rule = %q", g.Rules()[0].Name())
	}
}

func TestNewGameRulesByNames_UnknownAborts(t *testing.T) {
	_, err := NewGameRulesByNames([]string{RuleRowSum, "NoSuchRule"})
	if !errors.Is(err, ErrUnknownRule) {
		t.Errorf("err = %v, want ErrUnknownRule", err)
	}
}

func TestKnownRules(t *testing.T) {
	names := KnownRules()
	if len(names) != 2 {
		t.Fatalf("KnownRules() = %v, want 2 entries", names)
	}
	// Sorted output.
	if names[0] != RuleColumnSum || names[1] != RuleRowSum {
		t.Errorf("KnownRules() = %v, want sorted [%s %s]", names, RuleColumnSum, RuleRowSum)
	}
	if !IsKnownRule(RuleRowSum) || IsKnownRule("bogus") {
		t.Error("IsKnownRule misclassified a name")
	}
}

// Check reports every broken rule by name, evaluating the full set.
func TestGameRulesCheck(t *testing.T) {
	// 2x2 with clue anchoring both a row run and a column run.
	cells := [][]board.Cell{
		{
			{Position: board.Position{Row: 0, Col: 0}, RowTotal: 0, ColumnTotal: 3, Border: true},
			{Position: board.Position{Row: 0, Col: 1}, RowTotal: 0, Border: true},
		},
		{
			{Position: board.Position{Row: 1, Col: 0}, RowTotal: 7, Border: true},
			{Position: board.Position{Row: 1, Col: 1}, Value: 5},
		},
	}
	// Column clue must sit above the playable cell.
	cells[0][1].ColumnTotal = 5
	b, err := board.New(cells)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}

	g, err := NewGameRulesByNames([]string{RuleRowSum, RuleColumnSum})
	if err != nil {
		t.Fatalf("NewGameRulesByNames: %v", err)
	}

	move := board.Move{Position: board.Position{Row: 1, Col: 1}, Value: 5}
	broken, err := g.Check(b, move)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	// Row run sums 5 against clue 7 (broken); column run sums 5 against
	// clue 5 (holds).
	if len(broken) != 1 || broken[0] != RuleRowSum {
		t.Errorf("broken = %v, want [%s]", broken, RuleRowSum)
	}
}

func TestGameRulesCheck_PropagatesError(t *testing.T) {
	// Playable cell with no anchoring border on its row.
	cells := [][]board.Cell{{
		{Position: board.Position{Row: 0, Col: 0}, Value: 1},
	}}
	b, err := board.New(cells)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}

	g := NewGameRules(NewRowSumRule())
	_, err = g.Check(b, board.Move{Position: board.Position{Row: 0, Col: 0}, Value: 1})
	if !errors.Is(err, board.ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}
