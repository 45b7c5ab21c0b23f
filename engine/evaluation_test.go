package engine

import (
	"testing"

	"seedchess/seedmg"
)

func mustFEN(t *testing.T, fen string, mode seedmg.Variant) *seedmg.Position {
	t.Helper()
	pos, err := seedmg.ParseFEN(fen, seedmg.GameConfig{Mode: mode})
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func findAction(t *testing.T, pos *seedmg.Position, s string) seedmg.Action {
	t.Helper()
	for _, a := range pos.GenerateActions() {
		if a.String() == s {
			return a
		}
	}
	t.Fatalf("action %s not legal in %s", s, pos.FEN())
	return seedmg.Action{}
}

func TestEvaluateStartIsBalanced(t *testing.T) {
	pos := seedmg.NewPosition(seedmg.GameConfig{})
	if got := Evaluate(pos.Board, pos.Seeds, 0.8); got != 0 {
		t.Fatalf("start position: got %d want 0", got)
	}
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	// Each pair is a position and its color-swapped vertical mirror.
	pairs := [][2]string{
		{"4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1", "4k3/3r4/8/8/3Q4/8/8/4K3 b - - 0 1"},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
			"r3k2r/pppbbppp/2n2q1P/1P2p3/3pn3/BN2PNP1/P1PPQPB1/R3K2R b - - 0 1"},
	}
	for _, p := range pairs {
		a := mustFEN(t, p[0], seedmg.Classic)
		b := mustFEN(t, p[1], seedmg.Classic)
		ea := Evaluate(a.Board, a.Seeds, 0.8)
		eb := Evaluate(b.Board, b.Seeds, 0.8)
		if ea != -eb {
			t.Fatalf("mirror asymmetry: %d vs %d for %s", ea, eb, p[0])
		}
	}
}

func TestEvaluateMirrorSymmetryWithSeeds(t *testing.T) {
	a := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", seedmg.SeedChess)
	a.MakeAction(findAction(t, a, "plant:e1e2=n"))
	a.MakeAction(findAction(t, a, "plant:e8d7=b"))

	b := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1", seedmg.SeedChess)
	b.MakeAction(findAction(t, b, "plant:e8e7=n"))
	b.MakeAction(findAction(t, b, "plant:e1d2=b"))

	ea := Evaluate(a.Board, a.Seeds, 0.8)
	eb := Evaluate(b.Board, b.Seeds, 0.8)
	if ea == 0 {
		t.Fatalf("unequal seeds should not cancel")
	}
	if ea != -eb {
		t.Fatalf("mirror asymmetry with seeds: %d vs %d", ea, eb)
	}

	// Scratch seeds planted in a search clone flip the same way.
	ca, cb := a.CloneForSearch(false), b.CloneForSearch(false)
	ca.MakeAction(findAction(t, ca, "plant:e1f1=r"))
	cb.MakeAction(findAction(t, cb, "plant:e8f8=r"))
	if len(ca.Seeds.Scratch()) != 1 || len(cb.Seeds.Scratch()) != 1 {
		t.Fatalf("search plants should land on the scratch list")
	}
	if got, want := Evaluate(ca.Board, ca.Seeds, 0.8), -Evaluate(cb.Board, cb.Seeds, 0.8); got != want {
		t.Fatalf("mirror asymmetry with scratch seeds: %d vs %d", got, want)
	}
}

func TestSeedValueRisesAsItGrows(t *testing.T) {
	prev := -1
	for turns := 5; turns >= 0; turns-- {
		v := SeedValue(seedmg.Seed{Kind: seedmg.Rook, TurnsRemaining: turns}, 0.8)
		if v <= prev {
			t.Fatalf("seed value must rise as turns fall: turns=%d value=%d prev=%d", turns, v, prev)
		}
		prev = v
	}
	if prev != 500 {
		t.Fatalf("ripe rook seed: got %d want 500", prev)
	}
	if got := SeedValue(seedmg.Seed{Kind: seedmg.Knight, TurnsRemaining: 3}, 0.8); got != 164 {
		t.Fatalf("knight seed 3 turns: got %d want round(320*0.512)=164", got)
	}
}

func TestEvaluateCountsSeedsForTheirOwner(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", seedmg.SeedChess)
	base := Evaluate(pos.Board, pos.Seeds, 0.8)
	pos.MakeAction(findAction(t, pos, "plant:e1e2=q"))
	withWhite := Evaluate(pos.Board, pos.Seeds, 0.8)
	want := SeedValue(seedmg.Seed{Kind: seedmg.Queen, TurnsRemaining: 9}, 0.8)
	if withWhite-base != want {
		t.Fatalf("white seed contribution: got %d want %d", withWhite-base, want)
	}
	pos.MakeAction(findAction(t, pos, "plant:e8e7=q"))
	if got := Evaluate(pos.Board, pos.Seeds, 0.8); got != base {
		t.Fatalf("matching seeds should cancel: got %d want %d", got, base)
	}
}
