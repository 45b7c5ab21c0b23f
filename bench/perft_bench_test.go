package bench

import (
	"context"
	"testing"

	"seedchess/engine"
	"seedchess/seedmg"
)

func benchPerft(b *testing.B, fen string, mode seedmg.Variant, depth int) {
	pos := mustPosition(b, fen, mode)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seedmg.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, seedmg.FENStartPos, seedmg.Classic, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipeteFEN, seedmg.Classic, 3)
}

func BenchmarkPerft_SeedInitial_D3(b *testing.B) {
	benchPerft(b, seedmg.FENStartPos, seedmg.SeedChess, 3)
}

func benchSearch(b *testing.B, fen string, mode seedmg.Variant, depth int) {
	pos := mustPosition(b, fen, mode)
	eng, err := engine.New(engine.DefaultConfig(), engine.WithOpeningBook(nil))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.SearchDepth(context.Background(), pos, depth); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Initial_D4(b *testing.B) {
	benchSearch(b, seedmg.FENStartPos, seedmg.Classic, 4)
}

func BenchmarkSearch_SeedInitial_D3(b *testing.B) {
	benchSearch(b, seedmg.FENStartPos, seedmg.SeedChess, 3)
}
