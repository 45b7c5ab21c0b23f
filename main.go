package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"seedchess/engine"
	"seedchess/seedmg"
	"seedchess/session"
)

func main() {
	configPath := flag.String("config", "", "Engine config JSON file (defaults built in)")
	mode := flag.String("mode", "classic", "Variant: classic or seed")
	maxSeeds := flag.Int("max-seeds", 0, "Seeds a side may have growing at once (0 = unlimited)")
	ai := flag.String("ai", "black", "Side played by the engine: white, black, both or none")
	fen := flag.String("fen", "", "Start from this FEN instead of the initial position")
	seed := flag.Int64("seed", 0, "Random seed for book choices (0 = time based)")
	verbose := flag.Bool("v", false, "Log engine and session records to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	c, err := newConsole(options{
		configPath: *configPath,
		mode:       *mode,
		maxSeeds:   *maxSeeds,
		ai:         *ai,
		fen:        *fen,
		seed:       *seed,
		logger:     logger,
	}, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	c.loop(context.Background(), os.Stdin)
}

type options struct {
	configPath string
	mode       string
	maxSeeds   int
	ai         string
	fen        string
	seed       int64
	logger     *slog.Logger
}

// console is the line-oriented driver around one session.
type console struct {
	out     io.Writer
	opts    options
	gameCfg seedmg.GameConfig
	eng     *engine.Engine
	game    *session.Session
	aiWhite bool
	aiBlack bool
}

func newConsole(opts options, out io.Writer) (*console, error) {
	cfg := engine.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}
	variant, err := seedmg.ParseVariant(opts.mode)
	if err != nil {
		return nil, err
	}
	if opts.logger == nil {
		opts.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng, err := engine.New(cfg,
		engine.WithLogger(opts.logger),
		engine.WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		return nil, err
	}

	c := &console{
		out:     out,
		opts:    opts,
		gameCfg: seedmg.GameConfig{Mode: variant, MaxSeedsPerSide: opts.maxSeeds},
		eng:     eng,
	}
	switch strings.ToLower(opts.ai) {
	case "white":
		c.aiWhite = true
	case "black":
		c.aiBlack = true
	case "both":
		c.aiWhite, c.aiBlack = true, true
	case "none", "":
	default:
		return nil, fmt.Errorf("unknown -ai side %q", opts.ai)
	}
	if err := c.newGame(opts.fen); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *console) newGame(fen string) error {
	sessionOpts := []session.Option{
		session.WithLogger(c.opts.logger),
		session.WithCallbacks(session.Callbacks{
			OnActionApplied: func(a seedmg.Action) { fmt.Fprintf(c.out, "played %s\n", a) },
			OnStateChanged:  func(s seedmg.GameState) { fmt.Fprintf(c.out, "state %s\n", s) },
		}),
	}
	if fen == "" {
		c.game = session.New(c.gameCfg, c.eng, sessionOpts...)
		return nil
	}
	pos, err := seedmg.ParseFEN(fen, c.gameCfg)
	if err != nil {
		return err
	}
	c.game = session.NewFromPosition(pos, c.eng, sessionOpts...)
	return nil
}

func (c *console) aiToMove() bool {
	if c.game.ToMove() == seedmg.White {
		return c.aiWhite
	}
	return c.aiBlack
}

func (c *console) loop(ctx context.Context, in io.Reader) {
	c.autoplay(ctx)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if quit := c.handle(ctx, tokens); quit {
			return
		}
	}
}

// handle runs one command and reports whether the loop should stop.
func (c *console) handle(ctx context.Context, tokens []string) bool {
	switch strings.ToLower(tokens[0]) {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(c.out, "commands: new [classic|seed], fen <fen>, board, moves <square>, play <action>, go, state, seeds, history, quit")
	case "new":
		if len(tokens) > 1 {
			v, err := seedmg.ParseVariant(tokens[1])
			if err != nil {
				c.errorf("%v", err)
				return false
			}
			c.gameCfg.Mode = v
		}
		if err := c.newGame(""); err != nil {
			c.errorf("%v", err)
			return false
		}
		fmt.Fprintf(c.out, "new %s game\n", c.gameCfg.Mode)
		c.autoplay(ctx)
	case "fen":
		if len(tokens) == 1 {
			fmt.Fprintln(c.out, c.game.FEN())
			return false
		}
		if err := c.newGame(strings.Join(tokens[1:], " ")); err != nil {
			c.errorf("%v", err)
			return false
		}
		c.autoplay(ctx)
	case "board", "d":
		fmt.Fprint(c.out, c.game.Board())
	case "moves":
		if len(tokens) < 2 {
			c.errorf("usage: moves <square>")
			return false
		}
		sq, err := seedmg.ParseSquare(tokens[1])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		actions := c.game.LegalActions(sq)
		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = a.String()
		}
		fmt.Fprintf(c.out, "moves %s: %s\n", sq, strings.Join(names, " "))
	case "play", "move":
		if len(tokens) < 2 {
			c.errorf("usage: play <action>")
			return false
		}
		a, err := seedmg.ParseAction(tokens[1])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		if err := c.game.Apply(a); err != nil {
			c.errorf("%s: %v", tokens[1], err)
			return false
		}
		c.autoplay(ctx)
	case "go":
		c.playAI(ctx)
	case "state":
		fmt.Fprintf(c.out, "state %s, %s to move\n", c.game.State(), c.game.ToMove())
	case "seeds":
		for _, s := range c.game.Seeds() {
			fmt.Fprintf(c.out, "seed %s %s %s turns=%d\n", s.Square, s.Owner, s.Kind, s.TurnsRemaining)
		}
	case "history":
		fmt.Fprintln(c.out, c.game.HistoryKey())
	default:
		c.errorf("unknown command %q", tokens[0])
	}
	return false
}

// autoplay lets the engine move while it owns the side to move.
func (c *console) autoplay(ctx context.Context) {
	for c.aiToMove() && !c.game.State().IsOver() {
		if !c.playAI(ctx) {
			return
		}
	}
}

func (c *console) playAI(ctx context.Context) bool {
	res, err := c.game.PlayAI(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrGameOver) {
			c.errorf("engine: %v", err)
		}
		return false
	}
	fmt.Fprintf(c.out, "info depth %d score %s nodes %d time %d book %v\n",
		res.Depth, engine.FormatScore(res.Score, res.Depth), res.Stats.Nodes, res.Elapsed.Milliseconds(), res.FromBook)
	return true
}

func (c *console) errorf(format string, args ...any) {
	fmt.Fprintf(c.out, "error: "+format+"\n", args...)
}
