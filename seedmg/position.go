package seedmg

import (
	"fmt"
	"strings"
)

// Variant selects the rule set of a game.
type Variant uint8

const (
	Classic Variant = iota
	SeedChess
)

func (v Variant) String() string {
	if v == SeedChess {
		return "seed"
	}
	return "classic"
}

// ParseVariant accepts "classic" or "seed".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "standard":
		return Classic, nil
	case "seed", "seedchess":
		return SeedChess, nil
	}
	return Classic, fmt.Errorf("unknown variant %q", s)
}

// GameConfig is fixed for the lifetime of a game. MaxSeedsPerSide of zero
// means a side may have any number of seeds growing.
type GameConfig struct {
	Mode            Variant `json:"mode"`
	MaxSeedsPerSide int     `json:"max_seeds_per_side"`
}

// Position is everything the rules need: board, seeds, side to move and the
// game config. Interactive play and search both mutate it only through
// MakeAction / UnmakeAction.
type Position struct {
	Board  *Board
	Seeds  *Registry
	ToMove Color
	Config GameConfig

	// simulation routes plants to the scratch list.
	simulation bool
	tickSeeds  bool
	plies      int
}

// NewPosition returns the standard starting position with White to move.
func NewPosition(cfg GameConfig) *Position {
	return &Position{
		Board:     StartingBoard(),
		Seeds:     NewRegistry(),
		ToMove:    White,
		Config:    cfg,
		tickSeeds: true,
	}
}

// CloneForSearch returns a private deep copy for simulation. Seeds planted in
// the copy go to its scratch list; simulateHatching decides whether seeds keep
// counting down inside the tree.
func (p *Position) CloneForSearch(simulateHatching bool) *Position {
	return &Position{
		Board:      p.Board.Clone(),
		Seeds:      p.Seeds.Clone(),
		ToMove:     p.ToMove,
		Config:     p.Config,
		simulation: true,
		tickSeeds:  simulateHatching,
	}
}

// Clone returns a deep copy with the same simulation settings.
func (p *Position) Clone() *Position {
	c := p.CloneForSearch(p.tickSeeds)
	c.simulation = p.simulation
	return c
}

// Equal compares board, seeds and side to move.
func (p *Position) Equal(o *Position) bool {
	return p.ToMove == o.ToMove && p.Board.Equal(o.Board) && p.Seeds.Equal(o.Seeds)
}

// CanPlant reports whether c may plant at all under the game config.
func (p *Position) CanPlant(c Color) bool {
	if p.Config.Mode != SeedChess {
		return false
	}
	if max := p.Config.MaxSeedsPerSide; max > 0 && p.Seeds.Count(c) >= max {
		return false
	}
	return true
}

// LegalActions returns LegalMoves for the piece plus, for a king in the seed
// variant that is not in check, one plant per adjacent empty square and seed kind.
func (p *Position) LegalActions(piece *Piece) []Action {
	out := LegalMoves(piece, p.Board)
	if piece == nil || piece.IsSeed || piece.Kind != King || !p.CanPlant(piece.Color) {
		return out
	}
	if IsKingInCheck(piece.Color, p.Board) {
		return out
	}
	for _, sq := range PlantableSquares(piece, p.Board) {
		for _, kind := range SeedKinds {
			out = append(out, Action{Kind: ActionPlant, From: piece.Square, To: sq, Seed: kind})
		}
	}
	return out
}

// GenerateActions lists the legal actions of the side to move in square order.
func (p *Position) GenerateActions() []Action {
	out := make([]Action, 0, 48)
	for _, piece := range p.Board.squares {
		if piece == nil || piece.IsSeed || piece.Color != p.ToMove {
			continue
		}
		out = append(out, p.LegalActions(piece)...)
	}
	return out
}

// InCheck reports whether c's king is attacked.
func (p *Position) InCheck(c Color) bool { return IsKingInCheck(c, p.Board) }

// HasAnyLegalAction reports whether c can make any move, or, in the seed
// variant while not in check, plant next to its king.
func (p *Position) HasAnyLegalAction(c Color) bool {
	for _, piece := range p.Board.Pieces(c) {
		if len(LegalMoves(piece, p.Board)) > 0 {
			return true
		}
	}
	if !p.CanPlant(c) || p.InCheck(c) {
		return false
	}
	ksq, ok := p.Board.KingSquare(c)
	return ok && len(PlantableSquares(p.Board.At(ksq), p.Board)) > 0
}

// State classifies the position for the side to move.
func (p *Position) State() GameState {
	return Classify(p.InCheck(p.ToMove), p.HasAnyLegalAction(p.ToMove))
}
