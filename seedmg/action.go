package seedmg

import (
	"fmt"
	"strings"
)

// ActionKind distinguishes the shapes of a turn.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionEnPassant
	ActionCastle
	ActionPlant
)

// Action is one complete turn. For a plant, From is the king's square, To the
// planted square and Seed the kind that will hatch.
type Action struct {
	Kind      ActionKind
	From      Square
	To        Square
	Promotion PieceKind
	Seed      PieceKind
}

// IsPromotion reports whether the action promotes a pawn.
func (a Action) IsPromotion() bool { return a.Promotion != None }

// IsPlant reports whether the action plants a seed.
func (a Action) IsPlant() bool { return a.Kind == ActionPlant }

// Notation renders from/to squares only, the form used by the opening book.
func (a Action) Notation() string { return a.From.String() + a.To.String() }

// String renders e2e4, e7e8q or plant:e1e2=n.
func (a Action) String() string {
	switch {
	case a.Kind == ActionPlant:
		return fmt.Sprintf("plant:%s%s=%c", a.From, a.To, a.Seed.Letter())
	case a.IsPromotion():
		return a.Notation() + string(a.Promotion.Letter())
	default:
		return a.Notation()
	}
}

// WithPromotion returns a copy promoting to kind. Only promotion actions accept it.
func (a Action) WithPromotion(kind PieceKind) (Action, error) {
	if !a.IsPromotion() {
		return a, fmt.Errorf("action %s is not a promotion", a)
	}
	switch kind {
	case Queen, Rook, Bishop, Knight:
		a.Promotion = kind
		return a, nil
	}
	return a, fmt.Errorf("cannot promote to %s", kind)
}

// ParseAction reads the String form back. The kind of a non-plant action is
// resolved against the legal list by the caller, so e1g1 parses as a plain move.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(s, "plant:"); ok {
		sqs, kind, found := strings.Cut(rest, "=")
		if !found || len(sqs) != 4 {
			return Action{}, fmt.Errorf("invalid plant %q", s)
		}
		from, err := ParseSquare(sqs[:2])
		if err != nil {
			return Action{}, err
		}
		to, err := ParseSquare(sqs[2:])
		if err != nil {
			return Action{}, err
		}
		seed, ok := ParsePieceKind(kind)
		if !ok || GrowthTime(seed) == 0 {
			return Action{}, fmt.Errorf("invalid seed kind %q", kind)
		}
		return Action{Kind: ActionPlant, From: from, To: to, Seed: seed}, nil
	}
	if len(s) < 4 || len(s) > 5 {
		return Action{}, fmt.Errorf("invalid action %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Action{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Action{}, err
	}
	a := Action{Kind: ActionMove, From: from, To: to}
	if len(s) == 5 {
		kind, ok := ParsePieceKind(s[4:])
		if !ok {
			return Action{}, fmt.Errorf("invalid promotion %q", s)
		}
		a.Promotion = kind
	}
	return a, nil
}
