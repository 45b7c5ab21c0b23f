package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"seedchess/engine"
	"seedchess/seedmg"
)

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	modeFlag := flag.String("mode", "classic", "Variant: classic or seed")
	noHatch := flag.Bool("no-hatch", false, "Freeze seed growth inside the search tree")
	verbose := flag.Bool("v", false, "Log per-search statistics to stderr")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}
	variant, err := seedmg.ParseVariant(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	cfg := engine.DefaultConfig()
	cfg.SimulateSeedHatchingDuringSearch = !*noHatch
	opts := []engine.Option{engine.WithOpeningBook(nil)}
	if *verbose {
		opts = append(opts, engine.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}
	eng, err := engine.New(cfg, opts...)
	if err != nil {
		log.Fatal(err)
	}

	fen := seedmg.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	depth := *depthFlag
	repeat := *repeatFlag

	fmt.Printf("searchbench: fen=%q mode=%s depth=%d repeat=%d\n", fen, variant, depth, repeat)

	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		pos, err := seedmg.ParseFEN(fen, seedmg.GameConfig{Mode: variant})
		if err != nil {
			log.Fatalf("ParseFEN: %v", err)
		}
		res, err := eng.SearchDepth(context.Background(), pos, depth)
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		fmt.Printf("iteration %d: bestmove %s  score %s  nodes %d  time=%v\n",
			i+1, res.Action, engine.FormatScore(res.Score, res.Depth), res.Stats.Nodes, res.Elapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
