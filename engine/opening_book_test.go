package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/notnil/chess"

	"seedchess/seedmg"
)

func TestBookLookupAfterE4(t *testing.T) {
	book := DefaultOpeningBook()
	rng := rand.New(rand.NewSource(7))
	want := map[string]bool{"e7e5": true, "c7c5": true, "e7e6": true}
	for i := 0; i < 20; i++ {
		reply, ok := book.Lookup("e2e4", rng)
		if !ok || !want[reply] {
			t.Fatalf("Lookup(e2e4): got %q ok=%v", reply, ok)
		}
	}
}

func TestBookExactKeyOnly(t *testing.T) {
	book := DefaultOpeningBook()
	rng := rand.New(rand.NewSource(1))
	for _, key := range []string{"e2e4,a7a6", "e2e4,", "E2E4", "a2a3"} {
		if reply, ok := book.Lookup(key, rng); ok {
			t.Fatalf("Lookup(%q) matched %q", key, reply)
		}
	}
}

func TestHistoryKey(t *testing.T) {
	pos := seedmg.NewPosition(seedmg.GameConfig{})
	var history []seedmg.Action
	for _, s := range []string{"e2e4", "e7e5", "g1f3"} {
		a := findAction(t, pos, s)
		pos.MakeAction(a)
		history = append(history, a)
	}
	if got := HistoryKey(history); got != "e2e4,e7e5,g1f3" {
		t.Fatalf("HistoryKey: got %q", got)
	}
	if got := HistoryKey(nil); got != "" {
		t.Fatalf("empty history key: got %q", got)
	}
}

// Every book line and reply must be legal standard chess.
func TestBookLinesAreLegal(t *testing.T) {
	book := DefaultOpeningBook()
	for _, key := range book.Keys() {
		var line []string
		if key != "" {
			line = strings.Split(key, ",")
		}
		for _, reply := range book[key] {
			game := chess.NewGame(chess.UseNotation(chess.UCINotation{}))
			for _, m := range append(append([]string(nil), line...), reply) {
				if err := game.MoveStr(m); err != nil {
					t.Fatalf("line %q reply %q: %s rejected: %v", key, reply, m, err)
				}
			}

			pos := seedmg.NewPosition(seedmg.GameConfig{})
			for _, m := range line {
				pos.MakeAction(findAction(t, pos, m))
			}
			findAction(t, pos, reply)
		}
	}
}

func TestBookKeysSorted(t *testing.T) {
	keys := DefaultOpeningBook().Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}
