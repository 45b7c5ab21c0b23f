package engine

import (
	"math/rand"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seedchess/seedmg"
)

// OpeningBook maps a comma-joined move history ("e2e4,e7e5") to candidate
// replies in from-to notation. Only exact keys match.
type OpeningBook map[string][]string

// DefaultOpeningBook returns a fresh copy of the built-in lines.
func DefaultOpeningBook() OpeningBook {
	return OpeningBook{
		"":               {"e2e4", "d2d4", "g1f3"},
		"e2e4":           {"e7e5", "c7c5", "e7e6"},
		"d2d4":           {"d7d5", "g8f6"},
		"c2c4":           {"e7e5", "g8f6"},
		"g1f3":           {"d7d5", "g8f6"},
		"e2e4,e7e5":      {"g1f3"},
		"e2e4,c7c5":      {"g1f3"},
		"e2e4,e7e6":      {"d2d4"},
		"d2d4,d7d5":      {"c2c4"},
		"d2d4,g8f6":      {"c2c4"},
		"e2e4,e7e5,g1f3": {"b8c6"},
		"d2d4,d7d5,c2c4": {"e7e6", "c7c6"},
		"e2e4,c7c5,g1f3": {"d7d6", "b8c6"},
		"e2e4,e7e6,d2d4": {"d7d5"},
		"d2d4,g8f6,c2c4": {"e7e6", "g7g6"},
	}
}

// HistoryKey joins actions into the book's key notation.
func HistoryKey(history []seedmg.Action) string {
	parts := make([]string, len(history))
	for i, a := range history {
		parts[i] = a.Notation()
	}
	return strings.Join(parts, ",")
}

// Lookup picks uniformly among the candidates stored for key.
func (ob OpeningBook) Lookup(key string, rng *rand.Rand) (string, bool) {
	candidates := ob[key]
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// Keys lists the known histories in sorted order.
func (ob OpeningBook) Keys() []string {
	keys := maps.Keys(ob)
	slices.Sort(keys)
	return keys
}
