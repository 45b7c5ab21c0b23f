package engine

import (
	"testing"

	"seedchess/seedmg"
)

func TestKillerTable(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1", seedmg.Classic)
	quietA := findAction(t, pos, "e1f1")
	quietB := findAction(t, pos, "d2d3")
	capture := findAction(t, pos, "d2d5")

	var k KillerStruct
	k.InsertKiller(quietA, 2)
	k.InsertKiller(quietA, 2)
	if k.KillerMoves[2][1] != (seedmg.Action{}) {
		t.Fatalf("repeated killer must not fill the second slot")
	}
	k.InsertKiller(quietB, 2)
	k.InsertKiller(quietB, maxKillerPly)

	moves := scoreMovesList(pos.Board, pos.GenerateActions())
	k.applyKillers(&moves, 2)
	scores := map[seedmg.Action]int{}
	for _, m := range moves.moves {
		scores[m.action] = m.score
	}
	if scores[quietB] != killerOffset+1 || scores[quietA] != killerOffset {
		t.Fatalf("killer scores: newest %d, older %d", scores[quietB], scores[quietA])
	}
	if scores[capture] < captureOffset {
		t.Fatalf("captures must keep their band, got %d", scores[capture])
	}

	k.ClearKillers()
	moves = scoreMovesList(pos.Board, pos.GenerateActions())
	k.applyKillers(&moves, 2)
	for _, m := range moves.moves {
		if m.score >= killerOffset && m.score < plantOffset {
			t.Fatalf("%s still scored as a killer after ClearKillers", m.action)
		}
	}
}
