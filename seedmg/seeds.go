package seedmg

import "fmt"

// growthTurns holds the owner-turns a seed needs before it hatches.
var growthTurns = [7]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
}

// SeedKinds lists the kinds that may be planted, fastest-growing first.
var SeedKinds = [5]PieceKind{Pawn, Knight, Bishop, Rook, Queen}

// GrowthTime returns the growth constant of kind, or 0 if it cannot be planted.
func GrowthTime(kind PieceKind) int {
	if int(kind) >= len(growthTurns) {
		return 0
	}
	return growthTurns[kind]
}

// Seed is a planted piece waiting to hatch. Its square always holds a seed
// marker of the same owner.
type Seed struct {
	Square         Square
	Owner          Color
	Kind           PieceKind
	TurnsRemaining int
	JustPlanted    bool
}

type seedList uint8

const (
	liveList seedList = iota
	scratchList
)

// Registry tracks live seeds and, during search, a disjoint scratch list of
// seeds planted inside the tree.
type Registry struct {
	live    []Seed
	scratch []Seed
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

func newSeed(sq Square, owner Color, kind PieceKind) Seed {
	turns := GrowthTime(kind)
	if turns == 0 {
		panic(fmt.Sprintf("seedmg: %s cannot be planted", kind))
	}
	return Seed{Square: sq, Owner: owner, Kind: kind, TurnsRemaining: turns, JustPlanted: true}
}

// Plant sets up a live seed outside of play: it places owner's marker on the
// empty square sq and registers the seed. Seeds planted by a king go through
// Position.MakeAction instead.
func (r *Registry) Plant(b *Board, sq Square, owner Color, kind PieceKind) error {
	if GrowthTime(kind) == 0 {
		return fmt.Errorf("seedmg: %s cannot be planted", kind)
	}
	if !sq.Valid() || b.squares[sq] != nil {
		return fmt.Errorf("seedmg: cannot plant on %s", sq)
	}
	b.placeMarker(owner, sq)
	r.push(liveList, sq, owner, kind)
	return nil
}

func (r *Registry) push(l seedList, sq Square, owner Color, kind PieceKind) {
	seeds := r.list(l)
	*seeds = append(*seeds, newSeed(sq, owner, kind))
}

func (r *Registry) pop(l seedList, sq Square) {
	seeds := r.list(l)
	n := len(*seeds)
	if n == 0 || (*seeds)[n-1].Square != sq {
		panic("seedmg: seed pop without matching push")
	}
	*seeds = (*seeds)[:n-1]
}

func (r *Registry) list(l seedList) *[]Seed {
	if l == liveList {
		return &r.live
	}
	return &r.scratch
}

// removedSeed remembers where a seed sat so it can be reinserted exactly.
type removedSeed struct {
	list  seedList
	index int
	seed  Seed
	ok    bool
}

// RemoveAt deletes the seed on sq from whichever list holds it.
func (r *Registry) RemoveAt(sq Square) (Seed, bool) {
	rs := r.removeAt(sq)
	return rs.seed, rs.ok
}

func (r *Registry) removeAt(sq Square) removedSeed {
	for _, l := range [2]seedList{liveList, scratchList} {
		seeds := r.list(l)
		for i, s := range *seeds {
			if s.Square == sq {
				*seeds = append((*seeds)[:i], (*seeds)[i+1:]...)
				return removedSeed{list: l, index: i, seed: s, ok: true}
			}
		}
	}
	return removedSeed{}
}

func (r *Registry) restore(rs removedSeed) {
	if !rs.ok {
		return
	}
	seeds := r.list(rs.list)
	*seeds = append(*seeds, Seed{})
	copy((*seeds)[rs.index+1:], (*seeds)[rs.index:])
	(*seeds)[rs.index] = rs.seed
}

// SeedAt returns the seed planted on sq.
func (r *Registry) SeedAt(sq Square) (Seed, bool) {
	for _, seeds := range [2][]Seed{r.live, r.scratch} {
		for _, s := range seeds {
			if s.Square == sq {
				return s, true
			}
		}
	}
	return Seed{}, false
}

// Count returns how many seeds c has growing across both lists.
func (r *Registry) Count(c Color) int {
	n := 0
	r.ForEach(func(s Seed) {
		if s.Owner == c {
			n++
		}
	})
	return n
}

// HasSeed reports whether c has at least one seed growing.
func (r *Registry) HasSeed(c Color) bool { return r.Count(c) > 0 }

// ForEach visits live seeds then scratch seeds.
func (r *Registry) ForEach(fn func(Seed)) {
	for _, s := range r.live {
		fn(s)
	}
	for _, s := range r.scratch {
		fn(s)
	}
}

// Seeds returns a copy of the live list.
func (r *Registry) Seeds() []Seed { return append([]Seed(nil), r.live...) }

// Scratch returns a copy of the scratch list.
func (r *Registry) Scratch() []Seed { return append([]Seed(nil), r.scratch...) }

// Len returns the number of seeds across both lists.
func (r *Registry) Len() int { return len(r.live) + len(r.scratch) }

// Clone copies both lists.
func (r *Registry) Clone() *Registry {
	return &Registry{
		live:    append([]Seed(nil), r.live...),
		scratch: append([]Seed(nil), r.scratch...),
	}
}

// Equal compares both lists element by element.
func (r *Registry) Equal(o *Registry) bool {
	return seedsEqual(r.live, o.live) && seedsEqual(r.scratch, o.scratch)
}

func seedsEqual(a, b []Seed) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// PlantableSquares lists the empty squares adjacent to king. Squares already
// holding a seed marker are excluded.
func PlantableSquares(king *Piece, b *Board) []Square {
	out := make([]Square, 0, 8)
	file, rank := king.Square.File(), king.Square.Rank()
	for _, o := range kingOffsets {
		if sq, ok := squareAt(file+o.df, rank+o.dr); ok && b.squares[sq] == nil {
			out = append(out, sq)
		}
	}
	return out
}

// tickUndo restores the seed lists and board after an end-of-turn tick.
type tickUndo struct {
	live    []Seed
	scratch []Seed
	hatched []hatchRecord
	ticked  bool
}

type hatchRecord struct {
	marker *Piece
	piece  *Piece
}

// Tick runs the end-of-turn countdown for owner's seeds on the live board and
// returns the seeds that hatched.
func (r *Registry) Tick(owner Color, b *Board) []Seed {
	u := r.tick(owner, b)
	out := make([]Seed, 0, len(u.hatched))
	for _, h := range u.hatched {
		out = append(out, Seed{Square: h.piece.Square, Owner: owner, Kind: h.piece.Kind})
	}
	return out
}

func (r *Registry) tick(owner Color, b *Board) tickUndo {
	if r.Count(owner) == 0 {
		return tickUndo{}
	}
	u := tickUndo{
		live:    append([]Seed(nil), r.live...),
		scratch: append([]Seed(nil), r.scratch...),
		ticked:  true,
	}
	for _, l := range [2]seedList{liveList, scratchList} {
		seeds := r.list(l)
		kept := (*seeds)[:0]
		for _, s := range *seeds {
			if s.Owner != owner {
				kept = append(kept, s)
				continue
			}
			if s.JustPlanted {
				s.JustPlanted = false
				kept = append(kept, s)
				continue
			}
			s.TurnsRemaining--
			if s.TurnsRemaining > 0 {
				kept = append(kept, s)
				continue
			}
			u.hatched = append(u.hatched, hatch(b, s))
		}
		*seeds = kept
	}
	return u
}

// hatch swaps the marker on the seed's square for a real piece.
func hatch(b *Board, s Seed) hatchRecord {
	marker := b.squares[s.Square]
	if marker == nil || !marker.IsSeed || marker.Color != s.Owner {
		panic(fmt.Sprintf("seedmg: seed on %s has no matching marker", s.Square))
	}
	b.Remove(s.Square)
	p := b.Place(s.Kind, s.Owner, s.Square)
	p.HasMoved = s.Kind != Pawn
	return hatchRecord{marker: marker, piece: p}
}

func (r *Registry) untick(u tickUndo, b *Board) {
	if !u.ticked {
		return
	}
	for i := len(u.hatched) - 1; i >= 0; i-- {
		h := u.hatched[i]
		b.Remove(h.piece.Square)
		b.put(h.marker, h.marker.Square)
	}
	r.live = u.live
	r.scratch = u.scratch
}
