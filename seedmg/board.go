package seedmg

import (
	"fmt"
	"strings"
)

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the rank delta of a pawn step for this side.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// homeRank is the back rank of the side (0 for White, 7 for Black).
func (c Color) homeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceKind is the colorless type of a piece. None marks a seed placeholder.
type PieceKind uint8

const (
	None   PieceKind = 0
	Pawn   PieceKind = 1
	Knight PieceKind = 2
	Bishop PieceKind = 3
	Rook   PieceKind = 4
	Queen  PieceKind = 5
	King   PieceKind = 6
)

var kindLetters = [7]byte{'*', 'p', 'n', 'b', 'r', 'q', 'k'}
var kindNames = [7]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k PieceKind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("PieceKind(%d)", k)
	}
	return kindNames[k]
}

// Letter returns the lowercase algebraic letter for the kind ('*' for None).
func (k PieceKind) Letter() byte {
	if int(k) >= len(kindLetters) {
		return '?'
	}
	return kindLetters[k]
}

// ParsePieceKind accepts a full name ("queen") or a letter ("q"), case-insensitive.
func ParsePieceKind(s string) (PieceKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := Pawn; k <= King; k++ {
		if s == kindNames[k] || (len(s) == 1 && s[0] == kindLetters[k]) {
			return k, true
		}
	}
	return None, false
}

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int8

const NoSquare Square = -1

// NewSquare builds a square from a file and rank in 0..7. Out-of-range
// coordinates are a programming error.
func NewSquare(file, rank int) Square {
	sq, ok := squareAt(file, rank)
	if !ok {
		panic(fmt.Sprintf("seedmg: square (%d,%d) out of range", file, rank))
	}
	return sq
}

func squareAt(file, rank int) (Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, false
	}
	return Square(rank*8 + file), true
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// File returns the file index 0..7 (a..h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank index 0..7 (1..8).
func (s Square) Rank() int { return int(s) / 8 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare converts "e4" into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", alg)
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", alg)
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

func mustValid(sq Square) {
	if !sq.Valid() {
		panic(fmt.Sprintf("seedmg: square %d out of range", sq))
	}
}

// Piece is a board entity. A piece with Kind None and IsSeed set is the
// placeholder of a growing seed.
type Piece struct {
	Kind     PieceKind
	Color    Color
	Square   Square
	HasMoved bool
	IsSeed   bool
}

func (p *Piece) String() string {
	if p == nil {
		return "."
	}
	if p.IsSeed {
		return "*"
	}
	c := p.Kind.Letter()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// Board is the 8x8 grid plus the en-passant target.
type Board struct {
	squares   [64]*Piece
	enPassant Square
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{enPassant: NoSquare}
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard initial setup.
func StartingBoard() *Board {
	b := NewBoard()
	for file, kind := range backRank {
		b.Place(kind, White, NewSquare(file, 0))
		b.Place(Pawn, White, NewSquare(file, 1))
		b.Place(Pawn, Black, NewSquare(file, 6))
		b.Place(kind, Black, NewSquare(file, 7))
	}
	return b
}

// At returns the piece on sq, or nil.
func (b *Board) At(sq Square) *Piece {
	mustValid(sq)
	return b.squares[sq]
}

// Place creates a new piece on an empty square.
func (b *Board) Place(kind PieceKind, color Color, sq Square) *Piece {
	p := &Piece{Kind: kind, Color: color, Square: sq}
	b.put(p, sq)
	return p
}

// placeMarker creates the placeholder of a seed.
func (b *Board) placeMarker(color Color, sq Square) *Piece {
	p := &Piece{Kind: None, Color: color, Square: sq, IsSeed: true}
	b.put(p, sq)
	return p
}

func (b *Board) put(p *Piece, sq Square) {
	mustValid(sq)
	if b.squares[sq] != nil {
		panic(fmt.Sprintf("seedmg: square %s already occupied", sq))
	}
	p.Square = sq
	b.squares[sq] = p
}

// Remove takes the piece off sq and returns it.
func (b *Board) Remove(sq Square) *Piece {
	mustValid(sq)
	p := b.squares[sq]
	b.squares[sq] = nil
	return p
}

func (b *Board) relocate(p *Piece, to Square) {
	b.squares[p.Square] = nil
	b.put(p, to)
}

// EnPassantTarget returns the square a pawn may capture onto en passant, or NoSquare.
func (b *Board) EnPassantTarget() Square { return b.enPassant }

// SetEnPassantTarget overrides the en-passant target (NoSquare clears it).
func (b *Board) SetEnPassantTarget(sq Square) {
	if sq != NoSquare {
		mustValid(sq)
	}
	b.enPassant = sq
}

// KingSquare finds the king of the given color.
func (b *Board) KingSquare(c Color) (Square, bool) {
	for _, p := range b.squares {
		if p != nil && !p.IsSeed && p.Kind == King && p.Color == c {
			return p.Square, true
		}
	}
	return NoSquare, false
}

// Pieces returns the non-seed pieces of a color in square order.
func (b *Board) Pieces(c Color) []*Piece {
	out := make([]*Piece, 0, 16)
	for _, p := range b.squares {
		if p != nil && !p.IsSeed && p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy; no piece pointer is shared with the original.
func (b *Board) Clone() *Board {
	c := &Board{enPassant: b.enPassant}
	for i, p := range b.squares {
		if p != nil {
			cp := *p
			c.squares[i] = &cp
		}
	}
	return c
}

// Equal reports structural equality: occupancy, piece fields and en-passant target.
func (b *Board) Equal(o *Board) bool {
	if b.enPassant != o.enPassant {
		return false
	}
	for i := range b.squares {
		p, q := b.squares[i], o.squares[i]
		if (p == nil) != (q == nil) {
			return false
		}
		if p != nil && *p != *q {
			return false
		}
	}
	return true
}

// String draws the board from White's side, rank 8 first. Seed markers print as '*'.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteString(b.squares[rank*8+file].String())
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
