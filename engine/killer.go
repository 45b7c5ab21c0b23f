package engine

import "seedchess/seedmg"

// maxKillerPly bounds the table; deeper plies go without killers.
const maxKillerPly = 64

// killerOffset lifts a killer above other quiet moves but keeps it below plants.
const killerOffset = 100_000

// KillerStruct remembers, per ply, the last two quiet actions that caused a
// beta cutoff.
type KillerStruct struct {
	KillerMoves [maxKillerPly][2]seedmg.Action
}

func (k *KillerStruct) InsertKiller(a seedmg.Action, ply int) {
	if ply >= maxKillerPly {
		return
	}
	if a != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = a
	}
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	for ply := range k.KillerMoves {
		k.KillerMoves[ply][0] = seedmg.Action{}
		k.KillerMoves[ply][1] = seedmg.Action{}
	}
}

// applyKillers bumps quiet moves that match a killer for ply.
func (k *KillerStruct) applyKillers(moves *moveList, ply int) {
	if ply >= maxKillerPly {
		return
	}
	for i := range moves.moves {
		m := &moves.moves[i]
		if m.score != 0 {
			continue
		}
		switch m.action {
		case k.KillerMoves[ply][0]:
			m.score = killerOffset + 1
		case k.KillerMoves[ply][1]:
			m.score = killerOffset
		}
	}
}
