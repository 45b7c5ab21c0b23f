package engine

import (
	"testing"

	"seedchess/seedmg"
)

func TestOrderActionsBands(t *testing.T) {
	pos := mustFEN(t, "4k3/P7/8/8/8/8/3n4/4K3 w - - 0 1", seedmg.SeedChess)
	generated := pos.GenerateActions()
	ordered := OrderActions(pos.Board, generated)
	if len(ordered) != len(generated) {
		t.Fatalf("ordering changed the action count: %d vs %d", len(ordered), len(generated))
	}
	if got := ordered[0].String(); got != "a7a8q" {
		t.Fatalf("first: got %s want the promotion", got)
	}
	if got := ordered[1].String(); got != "e1d2" {
		t.Fatalf("second: got %s want the capture", got)
	}

	// Plants follow, fastest-growing first, then quiet moves in generation order.
	i := 2
	lastGrowth := 0
	for ; i < len(ordered) && ordered[i].IsPlant(); i++ {
		g := seedmg.GrowthTime(ordered[i].Seed)
		if g < lastGrowth {
			t.Fatalf("plant %s out of growth order", ordered[i])
		}
		lastGrowth = g
	}
	var quietGenerated []string
	for _, a := range generated {
		if !a.IsPlant() && !a.IsPromotion() && a.String() != "e1d2" {
			quietGenerated = append(quietGenerated, a.String())
		}
	}
	rest := ordered[i:]
	if len(rest) != len(quietGenerated) {
		t.Fatalf("quiet tail: got %d actions want %d", len(rest), len(quietGenerated))
	}
	for j, a := range rest {
		if a.String() != quietGenerated[j] {
			t.Fatalf("quiet move %d: got %s want %s", j, a, quietGenerated[j])
		}
	}
}

func TestOrderActionsMvvLva(t *testing.T) {
	// Both the pawn and the queen can take the rook on d5; the knight on b5
	// is also en prise to the queen.
	pos := mustFEN(t, "4k3/8/8/1n1r4/2P5/8/8/3QK3 w - - 0 1", seedmg.Classic)
	ordered := OrderActions(pos.Board, pos.GenerateActions())
	want := []string{"c4d5", "d1d5", "c4b5"}
	for i, w := range want {
		if got := ordered[i].String(); got != w {
			t.Fatalf("capture %d: got %s want %s (order %v)", i, got, w, ordered[:3])
		}
	}
}

func TestOrderActionsEnPassantCountsAsPawnCapture(t *testing.T) {
	// g3xf4 takes a knight, e5xd6 takes the d5 pawn en passant, and b1xc3 takes
	// a pawn with a knight.
	pos := mustFEN(t, "4k3/8/8/3pP3/5n2/2p3P1/8/1N2K3 w - d6 0 1", seedmg.Classic)
	ep := findAction(t, pos, "e5d6")
	if ep.Kind != seedmg.ActionEnPassant {
		t.Fatalf("e5d6 should be en passant, got kind %d", ep.Kind)
	}
	if got, want := scoreMove(pos.Board, ep), captureOffset+PieceValue(seedmg.Pawn)*10-PieceValue(seedmg.Pawn); got != want {
		t.Fatalf("en passant score: got %d want %d", got, want)
	}

	ordered := OrderActions(pos.Board, pos.GenerateActions())
	want := []string{"g3f4", "e5d6", "b1c3"}
	for i, w := range want {
		if got := ordered[i].String(); got != w {
			t.Fatalf("capture %d: got %s want %s (order %v)", i, got, w, ordered[:3])
		}
	}
}

func TestOrderNextMoveIsStable(t *testing.T) {
	list := moveList{moves: []move{
		{score: 0}, {score: 5}, {score: 0}, {score: 5}, {score: 1},
	}}
	for i := range list.moves {
		list.moves[i].action.To = seedmg.Square(i)
	}
	for i := range list.moves {
		orderNextMove(i, &list)
	}
	want := []seedmg.Square{1, 3, 4, 0, 2}
	for i, m := range list.moves {
		if m.action.To != want[i] {
			t.Fatalf("position %d: got original index %d want %d", i, m.action.To, want[i])
		}
	}
}
