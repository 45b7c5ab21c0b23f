package seedmg

import "fmt"

// LegalMoves returns every legal action of p except seed planting: its
// pseudo-legal moves that keep the own king safe, plus en passant for pawns and
// castling for an unmoved king. A pawn reaching the last rank yields a single
// action promoting to a queen; interactive callers may swap the kind with
// Action.WithPromotion.
func LegalMoves(p *Piece, b *Board) []Action {
	if p == nil || p.IsSeed || p.Kind == None {
		return nil
	}
	if b.At(p.Square) != p {
		panic(fmt.Sprintf("seedmg: piece claims %s but the board disagrees", p.Square))
	}

	var buf [32]Square
	targets := b.appendPseudo(buf[:0], p)
	out := make([]Action, 0, len(targets)+2)
	for _, to := range targets {
		if t := b.squares[to]; t != nil && !t.IsSeed && t.Kind == King {
			continue
		}
		a := Action{Kind: ActionMove, From: p.Square, To: to}
		if p.Kind == Pawn && (to.Rank() == 0 || to.Rank() == 7) {
			a.Promotion = Queen
		}
		if b.leavesKingSafe(a, p.Color) {
			out = append(out, a)
		}
	}

	switch p.Kind {
	case Pawn:
		if a, ok := b.enPassantAction(p); ok && b.leavesKingSafe(a, p.Color) {
			out = append(out, a)
		}
	case King:
		if !p.HasMoved {
			out = append(out, b.castlingActions(p)...)
		}
	}
	return out
}

// leavesKingSafe simulates a, tests the mover's king and rolls back.
func (b *Board) leavesKingSafe(a Action, us Color) bool {
	u := b.apply(a)
	safe := !IsKingInCheck(us, b)
	b.undo(u)
	return safe
}

func (b *Board) enPassantAction(p *Piece) (Action, bool) {
	ep := b.enPassant
	if ep == NoSquare {
		return Action{}, false
	}
	file, rank := p.Square.File(), p.Square.Rank()
	if ep.Rank() != rank+p.Color.forward() || abs(ep.File()-file) != 1 {
		return Action{}, false
	}
	if t := b.squares[ep]; t != nil && !t.IsSeed {
		return Action{}, false
	}
	victim := b.squares[NewSquare(ep.File(), rank)]
	if victim == nil || victim.IsSeed || victim.Kind != Pawn || victim.Color == p.Color {
		return Action{}, false
	}
	return Action{Kind: ActionEnPassant, From: p.Square, To: ep}, true
}

// castlingActions yields kingside then queenside castling for an unmoved king.
// Only the king's own path is tested for attacks; the rook may cross attacked
// squares, as in standard chess.
func (b *Board) castlingActions(king *Piece) []Action {
	if IsKingInCheck(king.Color, b) {
		return nil
	}
	var out []Action
	kf, rank := king.Square.File(), king.Square.Rank()
	for _, side := range [2]int{1, -1} {
		rookFile := 7
		if side < 0 {
			rookFile = 0
		}
		rook := b.squares[NewSquare(rookFile, rank)]
		if rook == nil || rook.IsSeed || rook.Kind != Rook || rook.Color != king.Color || rook.HasMoved {
			continue
		}
		dest := kf + 2*side
		if (side > 0 && dest >= rookFile) || (side < 0 && dest <= rookFile) {
			continue
		}
		if !b.pathEmpty(rank, kf, rookFile) {
			continue
		}
		if !b.kingPathSafe(king, dest, side) {
			continue
		}
		out = append(out, Action{Kind: ActionCastle, From: king.Square, To: NewSquare(dest, rank)})
	}
	return out
}

// pathEmpty reports whether every square strictly between the two files is empty.
func (b *Board) pathEmpty(rank, fromFile, toFile int) bool {
	step := 1
	if toFile < fromFile {
		step = -1
	}
	for f := fromFile + step; f != toFile; f += step {
		if b.squares[NewSquare(f, rank)] != nil {
			return false
		}
	}
	return true
}

// kingPathSafe relocates the king onto each transit square up to dest and
// re-runs the check test there.
func (b *Board) kingPathSafe(king *Piece, dest, step int) bool {
	home := king.Square
	for f := home.File() + step; ; f += step {
		sq := NewSquare(f, home.Rank())
		b.relocate(king, sq)
		attacked := IsKingInCheck(king.Color, b)
		b.relocate(king, home)
		if attacked {
			return false
		}
		if f == dest {
			return true
		}
	}
}

// GameState is the status of the side to move.
type GameState uint8

const (
	Playing GameState = iota
	Check
	Checkmate
	Stalemate
)

func (s GameState) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "playing"
}

// IsOver reports whether the game has ended.
func (s GameState) IsOver() bool { return s == Checkmate || s == Stalemate }

// Classify maps (inCheck, hasAnyLegalAction) to a GameState.
func Classify(inCheck, hasAnyLegalAction bool) GameState {
	switch {
	case inCheck && !hasAnyLegalAction:
		return Checkmate
	case !hasAnyLegalAction:
		return Stalemate
	case inCheck:
		return Check
	}
	return Playing
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
