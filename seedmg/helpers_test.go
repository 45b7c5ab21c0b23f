package seedmg_test

import (
	"testing"

	"seedchess/seedmg"
)

const (
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos3FEN     = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	pos4FEN     = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	pos5FEN     = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

var seedCfg = seedmg.GameConfig{Mode: seedmg.SeedChess}

func mustFEN(t *testing.T, fen string, mode seedmg.Variant) *seedmg.Position {
	t.Helper()
	pos, err := seedmg.ParseFEN(fen, seedmg.GameConfig{Mode: mode})
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func mustSquare(t *testing.T, s string) seedmg.Square {
	t.Helper()
	sq, err := seedmg.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

// findAction returns the legal action of the side to move rendered as s.
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

func hasAction(pos *seedmg.Position, s string) bool {
	for _, a := range pos.GenerateActions() {
		if a.String() == s {
			return true
		}
	}
	return false
}

// play makes each action in turn and returns the undo tokens.
func play(t *testing.T, pos *seedmg.Position, actions ...string) []seedmg.Undo {
	t.Helper()
	undos := make([]seedmg.Undo, 0, len(actions))
	for _, s := range actions {
		undos = append(undos, pos.MakeAction(findAction(t, pos, s)))
	}
	return undos
}

func unplay(pos *seedmg.Position, undos []seedmg.Undo) {
	for i := len(undos) - 1; i >= 0; i-- {
		pos.UnmakeAction(undos[i])
	}
}
