package seedmg

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// FENStartPos is the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Position from a FEN string. Seeds cannot be expressed in
// FEN, so the registry starts empty. Castling rights become the HasMoved flags
// of the king and corner rooks; pawns off their start rank count as moved.
func ParseFEN(fen string, cfg GameConfig) (pos *Position, err error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: want at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}
	if len(fields) == 4 {
		fields = append(fields, "0")
	}
	if len(fields) == 5 {
		fields = append(fields, "1")
	}
	if fields[1] != "w" && fields[1] != "b" {
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}
	if n := strings.Count(fields[0], "/"); n != 7 {
		return nil, fmt.Errorf("%w: %d ranks in placement", ErrInvalidFEN, n+1)
	}

	defer func() {
		if r := recover(); r != nil {
			pos, err = nil, fmt.Errorf("%w: %v", ErrInvalidFEN, r)
		}
	}()
	dt := dragontoothmg.ParseFen(strings.Join(fields, " "))

	b := NewBoard()
	placeAll(b, White, &dt.White)
	placeAll(b, Black, &dt.Black)
	for _, c := range [2]Color{White, Black} {
		if n := countKings(b, c); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings", ErrInvalidFEN, c, n)
		}
	}

	applyCastlingRights(b, fields[2])
	if fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant %q", ErrInvalidFEN, fields[3])
		}
		b.enPassant = ep
	}

	pos = NewPosition(cfg)
	pos.Board = b
	pos.ToMove = White
	if !dt.Wtomove {
		pos.ToMove = Black
	}
	return pos, nil
}

func placeAll(b *Board, c Color, bb *dragontoothmg.Bitboards) {
	sets := [...]struct {
		kind PieceKind
		bits uint64
	}{
		{Pawn, bb.Pawns}, {Knight, bb.Knights}, {Bishop, bb.Bishops},
		{Rook, bb.Rooks}, {Queen, bb.Queens}, {King, bb.Kings},
	}
	for _, s := range sets {
		for x := s.bits; x != 0; x &= x - 1 {
			sq := Square(bits.TrailingZeros64(x))
			p := b.Place(s.kind, c, sq)
			if s.kind == Pawn && sq.Rank() != c.homeRank()+c.forward() {
				p.HasMoved = true
			}
			if s.kind == King || s.kind == Rook {
				p.HasMoved = true
			}
		}
	}
}

func countKings(b *Board, c Color) int {
	n := 0
	for _, p := range b.Pieces(c) {
		if p.Kind == King {
			n++
		}
	}
	return n
}

// applyCastlingRights clears HasMoved on the king and rook that each right needs.
func applyCastlingRights(b *Board, rights string) {
	if rights == "-" {
		return
	}
	for _, r := range rights {
		c := White
		if r >= 'a' && r <= 'z' {
			c = Black
		}
		rookFile := 7
		switch r {
		case 'K', 'k':
		case 'Q', 'q':
			rookFile = 0
		default:
			continue
		}
		rank := c.homeRank()
		king, rook := b.squares[NewSquare(4, rank)], b.squares[NewSquare(rookFile, rank)]
		if king == nil || king.Kind != King || king.Color != c {
			continue
		}
		if rook == nil || rook.Kind != Rook || rook.Color != c {
			continue
		}
		king.HasMoved = false
		rook.HasMoved = false
	}
}

// FEN renders the position. Seed markers are written as empty squares and the
// move counters are always "0 1".
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.Board.squares[NewSquare(file, rank)]
			if pc == nil || pc.IsSeed {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if p.ToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(p.castlingRights())
	sb.WriteByte(' ')
	sb.WriteString(p.Board.enPassant.String())
	sb.WriteString(" 0 1")
	return sb.String()
}

func (p *Position) castlingRights() string {
	var sb strings.Builder
	for _, c := range [2]Color{White, Black} {
		rank := c.homeRank()
		king := p.Board.squares[NewSquare(4, rank)]
		if king == nil || king.IsSeed || king.Kind != King || king.Color != c || king.HasMoved {
			continue
		}
		for _, side := range [2]struct {
			file   int
			letter byte
		}{{7, 'K'}, {0, 'Q'}} {
			rook := p.Board.squares[NewSquare(side.file, rank)]
			if rook == nil || rook.IsSeed || rook.Kind != Rook || rook.Color != c || rook.HasMoved {
				continue
			}
			l := side.letter
			if c == Black {
				l += 'a' - 'A'
			}
			sb.WriteByte(l)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
