package seedmg

type offset struct{ df, dr int }

var knightOffsets = [8]offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8]offset{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var rookDirs = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
var bishopDirs = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
var queenDirs = append(append([]offset{}, rookDirs...), bishopDirs...)

// PseudoLegalMoves returns the squares p could move to, ignoring whether its
// own king would be left in check. Castling, en passant and planting are
// synthesized by the rules layer and never appear here.
func PseudoLegalMoves(p *Piece, b *Board) []Square {
	return b.appendPseudo(make([]Square, 0, 28), p)
}

func (b *Board) appendPseudo(dst []Square, p *Piece) []Square {
	if p == nil || p.IsSeed {
		return dst
	}
	switch p.Kind {
	case Pawn:
		return b.appendPawn(dst, p)
	case Knight:
		return b.appendSteps(dst, p, knightOffsets[:])
	case Bishop:
		return b.appendSlides(dst, p, bishopDirs)
	case Rook:
		return b.appendSlides(dst, p, rookDirs)
	case Queen:
		return b.appendSlides(dst, p, queenDirs)
	case King:
		return b.appendSteps(dst, p, kingOffsets[:])
	}
	return dst
}

// emptyOrSeed reports whether a square can be entered without capturing.
func (b *Board) emptyOrSeed(sq Square) bool {
	t := b.squares[sq]
	return t == nil || t.IsSeed
}

// enemyPiece reports whether sq holds a real (non-seed) piece of the other side.
func (b *Board) enemyPiece(sq Square, us Color) bool {
	t := b.squares[sq]
	return t != nil && !t.IsSeed && t.Color != us
}

func (b *Board) appendPawn(dst []Square, p *Piece) []Square {
	dir := p.Color.forward()
	file, rank := p.Square.File(), p.Square.Rank()

	if one, ok := squareAt(file, rank+dir); ok && b.emptyOrSeed(one) {
		dst = append(dst, one)
		if !p.HasMoved {
			if two, ok := squareAt(file, rank+2*dir); ok && b.emptyOrSeed(two) {
				dst = append(dst, two)
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		if diag, ok := squareAt(file+df, rank+dir); ok && b.enemyPiece(diag, p.Color) {
			dst = append(dst, diag)
		}
	}
	return dst
}

func (b *Board) appendSteps(dst []Square, p *Piece, offsets []offset) []Square {
	file, rank := p.Square.File(), p.Square.Rank()
	for _, o := range offsets {
		sq, ok := squareAt(file+o.df, rank+o.dr)
		if !ok {
			continue
		}
		if b.emptyOrSeed(sq) || b.enemyPiece(sq, p.Color) {
			dst = append(dst, sq)
		}
	}
	return dst
}

// Seeds are permeable: a slider may land on one and keeps walking past it.
func (b *Board) appendSlides(dst []Square, p *Piece, dirs []offset) []Square {
	file, rank := p.Square.File(), p.Square.Rank()
	for _, d := range dirs {
		for step := 1; ; step++ {
			sq, ok := squareAt(file+d.df*step, rank+d.dr*step)
			if !ok {
				break
			}
			if b.emptyOrSeed(sq) {
				dst = append(dst, sq)
				continue
			}
			if b.squares[sq].Color != p.Color {
				dst = append(dst, sq)
			}
			break
		}
	}
	return dst
}

// attacks reports whether p's pseudo-legal moves include target.
func (b *Board) attacks(p *Piece, target Square, buf []Square) bool {
	for _, sq := range b.appendPseudo(buf[:0], p) {
		if sq == target {
			return true
		}
	}
	return false
}

// IsKingInCheck reports whether any enemy piece's pseudo-legal moves reach the
// king of color c. It recomputes from the board every call.
func IsKingInCheck(c Color, b *Board) bool {
	ksq, ok := b.KingSquare(c)
	if !ok {
		return false
	}
	return b.squareAttacked(ksq, c.Other())
}

func (b *Board) squareAttacked(sq Square, by Color) bool {
	var buf [32]Square
	for _, p := range b.squares {
		if p == nil || p.IsSeed || p.Color != by {
			continue
		}
		if b.attacks(p, sq, buf[:0]) {
			return true
		}
	}
	return false
}
