package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"seedchess/seedmg"
)

func main() {
	fen := flag.String("fen", seedmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	mode := flag.String("mode", "classic", "Variant: classic or seed")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check classic counts against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	variant, err := seedmg.ParseVariant(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *verify && variant != seedmg.Classic {
		fmt.Fprintln(os.Stderr, "-verify only applies to classic games")
		os.Exit(2)
	}

	pos, err := seedmg.ParseFEN(*fen, seedmg.GameConfig{Mode: variant})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := seedmg.PerftDivide(pos, *depth)
		var oracle map[string]uint64
		if *verify {
			oracle = dragontoothDivide(pos.FEN(), *depth)
		}
		keys := make([]string, 0, len(div))
		var sum uint64
		for k, n := range div {
			keys = append(keys, k)
			sum += n
		}
		sort.Strings(keys)
		mismatches := 0
		for _, k := range keys {
			if oracle != nil && oracle[k] != div[k] {
				fmt.Printf("%s: %d (dragontoothmg %d)\n", k, div[k], oracle[k])
				mismatches++
				continue
			}
			fmt.Printf("%s: %d\n", k, div[k])
		}
		if oracle != nil && len(oracle) != len(div) {
			fmt.Printf("root moves: %d (dragontoothmg %d)\n", len(div), len(oracle))
			mismatches++
		}
		fmt.Printf("Total: %d\n", sum)
		if mismatches > 0 {
			os.Exit(1)
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += seedmg.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *verify {
		b := dragontoothmg.ParseFen(pos.FEN())
		want := dragontoothPerft(&b, *depth) * uint64(*repeat)
		if want != totalNodes {
			fmt.Fprintf(os.Stderr, "mismatch: dragontoothmg counts %d\n", want)
			os.Exit(1)
		}
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func dragontoothDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[m.String()] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	return out
}
