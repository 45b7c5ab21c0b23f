package seedmg

import "fmt"

// boardUndo records what a board-level apply changed.
type boardUndo struct {
	action    Action
	mover     *Piece
	moved     bool
	kind      PieceKind
	captured  *Piece
	trampled  *Piece
	rook      *Piece
	rookFrom  Square
	rookMoved bool
	marker    *Piece
	enPassant Square
}

// apply plays a on the board only. The seed registry is not touched; callers
// that care about seeds go through Position.MakeAction.
func (b *Board) apply(a Action) boardUndo {
	u := boardUndo{action: a, enPassant: b.enPassant}
	b.enPassant = NoSquare

	if a.Kind == ActionPlant {
		king := b.squares[a.From]
		if king == nil || king.IsSeed || king.Kind != King {
			panic(fmt.Sprintf("seedmg: plant from %s without a king", a.From))
		}
		u.marker = b.placeMarker(king.Color, a.To)
		return u
	}

	mover := b.squares[a.From]
	if mover == nil || mover.IsSeed {
		panic(fmt.Sprintf("seedmg: no piece to move on %s", a.From))
	}
	u.mover, u.moved, u.kind = mover, mover.HasMoved, mover.Kind

	if a.Kind == ActionEnPassant {
		u.captured = b.Remove(NewSquare(a.To.File(), a.From.Rank()))
	}
	if t := b.squares[a.To]; t != nil {
		switch {
		case t.IsSeed:
			u.trampled = b.Remove(a.To)
		case t.Kind == King:
			panic(fmt.Sprintf("seedmg: %s would capture a king", a))
		default:
			u.captured = b.Remove(a.To)
		}
	}

	b.relocate(mover, a.To)
	mover.HasMoved = true
	if a.Promotion != None {
		mover.Kind = a.Promotion
	}

	if a.Kind == ActionCastle {
		rank := a.From.Rank()
		rookFrom, rookTo := NewSquare(7, rank), NewSquare(a.To.File()-1, rank)
		if a.To.File() < a.From.File() {
			rookFrom, rookTo = NewSquare(0, rank), NewSquare(a.To.File()+1, rank)
		}
		rook := b.squares[rookFrom]
		if rook == nil || rook.Kind != Rook {
			panic(fmt.Sprintf("seedmg: castle %s without a rook on %s", a, rookFrom))
		}
		u.rook, u.rookFrom, u.rookMoved = rook, rookFrom, rook.HasMoved
		b.relocate(rook, rookTo)
		rook.HasMoved = true
	}

	if u.kind == Pawn && abs(a.To.Rank()-a.From.Rank()) == 2 {
		b.enPassant = NewSquare(a.From.File(), (a.From.Rank()+a.To.Rank())/2)
	}
	return u
}

// undo reverses apply exactly, restoring the same piece pointers.
func (b *Board) undo(u boardUndo) {
	defer func() { b.enPassant = u.enPassant }()

	if u.marker != nil {
		b.Remove(u.marker.Square)
		return
	}
	if u.rook != nil {
		b.relocate(u.rook, u.rookFrom)
		u.rook.HasMoved = u.rookMoved
	}
	m := u.mover
	b.relocate(m, u.action.From)
	m.HasMoved = u.moved
	m.Kind = u.kind
	if u.trampled != nil {
		b.put(u.trampled, u.action.To)
	}
	if u.captured != nil {
		b.put(u.captured, u.captured.Square)
	}
}

// Undo is the token returned by MakeAction. It must be handed back to
// UnmakeAction in strict LIFO order.
type Undo struct {
	board    boardUndo
	side     Color
	trampled removedSeed
	planted  bool
	plantIn  seedList
	tick     tickUndo
	ply      int
}

// Action returns the action this token undoes.
func (u Undo) Action() Action { return u.board.action }

// Hatched reports the seeds that hatched at the end of the action's turn.
func (u Undo) Hatched() []Seed {
	out := make([]Seed, 0, len(u.tick.hatched))
	for _, h := range u.tick.hatched {
		out = append(out, Seed{Square: h.piece.Square, Owner: h.piece.Color, Kind: h.piece.Kind})
	}
	return out
}

// MakeAction plays a for the side to move: board change, seed bookkeeping,
// the mover's end-of-turn hatching tick and the side switch. The action is
// assumed legal.
func (p *Position) MakeAction(a Action) Undo {
	mover := p.Board.At(a.From)
	if mover == nil || mover.IsSeed || mover.Color != p.ToMove {
		panic(fmt.Sprintf("seedmg: %s is not a move for %s", a, p.ToMove))
	}
	u := Undo{side: p.ToMove}
	u.board = p.Board.apply(a)

	if u.board.trampled != nil {
		u.trampled = p.Seeds.removeAt(a.To)
		if !u.trampled.ok {
			panic(fmt.Sprintf("seedmg: marker on %s has no seed", a.To))
		}
	}
	if a.Kind == ActionPlant {
		u.planted = true
		u.plantIn = liveList
		if p.simulation {
			u.plantIn = scratchList
		}
		p.Seeds.push(u.plantIn, a.To, p.ToMove, a.Seed)
	}
	if p.tickSeeds {
		u.tick = p.Seeds.tick(p.ToMove, p.Board)
	}

	p.ToMove = p.ToMove.Other()
	p.plies++
	u.ply = p.plies
	return u
}

// UnmakeAction reverses the most recent MakeAction.
func (p *Position) UnmakeAction(u Undo) {
	if u.ply == 0 || u.ply != p.plies {
		panic("seedmg: unmake out of order")
	}
	p.plies--
	p.ToMove = u.side

	p.Seeds.untick(u.tick, p.Board)
	if u.planted {
		p.Seeds.pop(u.plantIn, u.board.action.To)
	}
	p.Seeds.restore(u.trampled)
	p.Board.undo(u.board)
}
