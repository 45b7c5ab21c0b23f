package bench

import (
	"testing"

	"seedchess/seedmg"
)

const (
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6FEN     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func mustPosition(b *testing.B, fen string, mode seedmg.Variant) *seedmg.Position {
	b.Helper()
	pos, err := seedmg.ParseFEN(fen, seedmg.GameConfig{Mode: mode})
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return pos
}

func benchGenerateActions(b *testing.B, fen string, mode seedmg.Variant) {
	pos := mustPosition(b, fen, mode)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.GenerateActions()
	}
}

func BenchmarkGenerateActions_Initial(b *testing.B) {
	benchGenerateActions(b, seedmg.FENStartPos, seedmg.Classic)
}

func BenchmarkGenerateActions_Kiwipete(b *testing.B) {
	benchGenerateActions(b, kiwipeteFEN, seedmg.Classic)
}

func BenchmarkGenerateActions_Pos6(b *testing.B) {
	benchGenerateActions(b, pos6FEN, seedmg.Classic)
}

func BenchmarkGenerateActions_SeedInitial(b *testing.B) {
	benchGenerateActions(b, seedmg.FENStartPos, seedmg.SeedChess)
}

func BenchmarkPseudoLegal_EP(b *testing.B) {
	pos := mustPosition(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", seedmg.Classic)
	sq, _ := seedmg.ParseSquare("e5")
	pawn := pos.Board.At(sq)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seedmg.LegalMoves(pawn, pos.Board)
	}
}

func BenchmarkMakeUnmake_AllActions_Initial(b *testing.B) {
	pos := mustPosition(b, seedmg.FENStartPos, seedmg.SeedChess)
	actions := pos.GenerateActions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, a := range actions {
			u := pos.MakeAction(a)
			pos.UnmakeAction(u)
		}
	}
}
