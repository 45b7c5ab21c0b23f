package seedmg

// promotionKinds are the pieces a promotion expands to when counting nodes.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// expandPromotions appends a, or its four promotion variants.
func expandPromotions(dst []Action, a Action) []Action {
	if !a.IsPromotion() {
		return append(dst, a)
	}
	for _, k := range promotionKinds {
		a.Promotion = k
		dst = append(dst, a)
	}
	return dst
}

// Perft counts leaf nodes to the given depth from pos, expanding each
// promotion into four moves so counts line up with standard move generators.
func Perft(pos *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var actions []Action
	for _, a := range pos.GenerateActions() {
		actions = expandPromotions(actions, a)
	}
	if depth == 1 {
		return uint64(len(actions))
	}
	var nodes uint64
	for _, a := range actions {
		u := pos.MakeAction(a)
		nodes += Perft(pos, depth-1)
		pos.UnmakeAction(u)
	}
	return nodes
}

// PerftDivide returns per-root-action node counts keyed by Action.String.
func PerftDivide(pos *Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	var actions []Action
	for _, a := range pos.GenerateActions() {
		actions = expandPromotions(actions, a)
	}
	for _, a := range actions {
		u := pos.MakeAction(a)
		out[a.String()] = Perft(pos, depth-1)
		pos.UnmakeAction(u)
	}
	return out
}
