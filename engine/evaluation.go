package engine

import (
	"math"

	"seedchess/seedmg"
)

// FlipView mirrors a square vertically so Black reads the White tables.
var FlipView = [64]int{
	56, 57, 58, 59, 60, 61, 62, 63,
	48, 49, 50, 51, 52, 53, 54, 55,
	40, 41, 42, 43, 44, 45, 46, 47,
	32, 33, 34, 35, 36, 37, 38, 39,
	24, 25, 26, 27, 28, 29, 30, 31,
	16, 17, 18, 19, 20, 21, 22, 23,
	8, 9, 10, 11, 12, 13, 14, 15,
	0, 1, 2, 3, 4, 5, 6, 7,
}

var pieceValue = [7]int{
	seedmg.Pawn:   100,
	seedmg.Knight: 320,
	seedmg.Bishop: 330,
	seedmg.Rook:   500,
	seedmg.Queen:  900,
	seedmg.King:   20000,
}

// PieceValue returns the material value of kind in centipawns.
func PieceValue(kind seedmg.PieceKind) int { return pieceValue[kind] }

// Piece-square tables from White's side, a1 first. King has one table only.
var PSQT = [7][64]int{
	seedmg.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	seedmg.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	seedmg.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	seedmg.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	seedmg.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	seedmg.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// Evaluate scores the board in centipawns, positive for White. Every growing
// seed, live or scratch, counts as a discounted copy of the piece it becomes.
// Terminal positions are handled by the search, not here.
func Evaluate(b *seedmg.Board, seeds *seedmg.Registry, discountBase float64) int {
	score := 0
	for sq := seedmg.Square(0); sq < 64; sq++ {
		p := b.At(sq)
		if p == nil || p.IsSeed {
			continue
		}
		if p.Color == seedmg.White {
			score += pieceValue[p.Kind] + PSQT[p.Kind][sq]
		} else {
			score -= pieceValue[p.Kind] + PSQT[p.Kind][FlipView[sq]]
		}
	}
	if seeds != nil {
		seeds.ForEach(func(s seedmg.Seed) {
			score += sign(s.Owner) * SeedValue(s, discountBase)
		})
	}
	return score
}

// SeedValue is round(value(kind) * base^turnsRemaining).
func SeedValue(s seedmg.Seed, discountBase float64) int {
	turns := Max(s.TurnsRemaining, 0)
	return int(math.Round(float64(pieceValue[s.Kind]) * math.Pow(discountBase, float64(turns))))
}

func sign(c seedmg.Color) int {
	if c == seedmg.White {
		return 1
	}
	return -1
}
