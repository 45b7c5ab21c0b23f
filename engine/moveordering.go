package engine

import "seedchess/seedmg"

type move struct {
	action seedmg.Action
	score  int
}

type moveList struct {
	moves []move
}

// Ordering bands; each band outranks everything below it.
const (
	promotionOffset = 3_000_000
	captureOffset   = 1_000_000
	plantOffset     = 500_000
)

// scoreMovesList scores actions on b: promotions, then
// captures by MVV-LVA, then plants fastest-growing first, then quiet moves.
func scoreMovesList(b *seedmg.Board, actions []seedmg.Action) moveList {
	list := moveList{moves: make([]move, len(actions))}
	for i, a := range actions {
		list.moves[i] = move{action: a, score: scoreMove(b, a)}
	}
	return list
}

func scoreMove(b *seedmg.Board, a seedmg.Action) int {
	switch {
	case a.IsPromotion():
		return promotionOffset + pieceValue[a.Promotion]
	case a.Kind == seedmg.ActionEnPassant:
		return captureOffset + mvvLva(seedmg.Pawn, seedmg.Pawn)
	case a.Kind == seedmg.ActionPlant:
		return plantOffset - seedmg.GrowthTime(a.Seed)
	case a.Kind == seedmg.ActionMove:
		victim := b.At(a.To)
		if victim != nil && !victim.IsSeed {
			return captureOffset + mvvLva(victim.Kind, b.At(a.From).Kind)
		}
	}
	return 0
}

// Most Valuable Victim - Least Valuable Aggressor
func mvvLva(victim, attacker seedmg.PieceKind) int {
	return pieceValue[victim]*10 - pieceValue[attacker]
}

// orderNextMove brings the best remaining move to currIndex. Ties keep their
// generation order: the first best is taken and the moves it jumps over shift
// down by one.
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}
	if bestIndex == currIndex {
		return
	}
	best := moves.moves[bestIndex]
	copy(moves.moves[currIndex+1:bestIndex+1], moves.moves[currIndex:bestIndex])
	moves.moves[currIndex] = best
}

// OrderActions returns actions sorted the way the search visits them.
func OrderActions(b *seedmg.Board, actions []seedmg.Action) []seedmg.Action {
	list := scoreMovesList(b, actions)
	out := make([]seedmg.Action, len(actions))
	for i := range list.moves {
		orderNextMove(i, &list)
		out[i] = list.moves[i].action
	}
	return out
}
