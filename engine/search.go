package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"seedchess/seedmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore = 100_000_000
	// MateScore plus the remaining depth is returned for a mated side, so
	// faster mates score further from zero.
	MateScore = 1_000_000
	DrawScore = 0
)

// ctxCheckInterval is how many nodes pass between cancellation checks.
const ctxCheckInterval = 4096

// Engine picks actions for the side to move. One search runs at a time.
type Engine struct {
	cfg    Config
	book   OpeningBook
	logger *slog.Logger
	rng    *rand.Rand
	state  atomic.Int32
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithOpeningBook replaces the built-in book; nil disables it.
func WithOpeningBook(b OpeningBook) Option {
	return func(e *Engine) { e.book = b }
}

// WithRand seeds book choices, for reproducible games.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		book:   DefaultOpeningBook(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

// Result is the outcome of one engine turn.
type Result struct {
	Action   seedmg.Action
	Score    int
	Depth    int
	FromBook bool
	Stats    CutStatistics
	Elapsed  time.Duration
	Err      error
}

// BestAction chooses an action for pos.ToMove: the opening book first in
// classic games, then a fixed-depth search. pos is never modified.
func (e *Engine) BestAction(ctx context.Context, pos *seedmg.Position, history []seedmg.Action) (Result, error) {
	if !e.state.CompareAndSwap(int32(Idle), int32(Searching)) {
		return Result{}, ErrSearchInProgress
	}
	defer e.state.Store(int32(Idle))

	clone := pos.CloneForSearch(e.cfg.SimulateSeedHatchingDuringSearch)
	return e.choose(ctx, clone, history, e.cfg.DepthFor(pos.Config.Mode))
}

// SearchDepth runs the search at an explicit depth, skipping the book.
func (e *Engine) SearchDepth(ctx context.Context, pos *seedmg.Position, depth int) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("%w: depth %d < 1", ErrInvalidConfig, depth)
	}
	if !e.state.CompareAndSwap(int32(Idle), int32(Searching)) {
		return Result{}, ErrSearchInProgress
	}
	defer e.state.Store(int32(Idle))

	clone := pos.CloneForSearch(e.cfg.SimulateSeedHatchingDuringSearch)
	return e.rootsearch(ctx, clone, depth)
}

// choose runs on a private clone.
func (e *Engine) choose(ctx context.Context, pos *seedmg.Position, history []seedmg.Action, depth int) (Result, error) {
	if pos.Config.Mode == seedmg.Classic {
		if res, ok := e.bookAction(pos, history); ok {
			return res, nil
		}
	}
	return e.rootsearch(ctx, pos, depth)
}

func (e *Engine) bookAction(pos *seedmg.Position, history []seedmg.Action) (Result, bool) {
	if e.book == nil {
		return Result{}, false
	}
	key := HistoryKey(history)
	reply, ok := e.book.Lookup(key, e.rng)
	if !ok || !reachedFromStart(pos, history) {
		return Result{}, false
	}
	for _, a := range pos.GenerateActions() {
		if a.Notation() == reply {
			e.logger.Info("book move", "history", key, "action", a.String())
			return Result{Action: a, FromBook: true}, true
		}
	}
	e.logger.Warn("book move not legal here", "history", key, "reply", reply)
	return Result{}, false
}

// reachedFromStart replays history from the initial position and compares the
// result with pos; games set up from a FEN never hit the book.
func reachedFromStart(pos *seedmg.Position, history []seedmg.Action) bool {
	start := seedmg.NewPosition(pos.Config)
	for _, a := range history {
		p := start.Board.At(a.From)
		if p == nil || p.IsSeed || p.Color != start.ToMove {
			return false
		}
		legal := false
		for _, l := range start.LegalActions(p) {
			legal = legal || l == a
		}
		if !legal {
			return false
		}
		start.MakeAction(a)
	}
	return start.ToMove == pos.ToMove && start.Board.Equal(pos.Board)
}

type searcher struct {
	ctx       context.Context
	pos       *seedmg.Position
	discount  float64
	rootDepth int
	stats     CutStatistics
	err       error

	// killers is nil unless Config.KillerMoves is set.
	killers *KillerStruct
}

func (e *Engine) rootsearch(ctx context.Context, pos *seedmg.Position, depth int) (Result, error) {
	start := time.Now()
	s := &searcher{ctx: ctx, pos: pos, discount: e.cfg.SeedValueDiscountBase, rootDepth: depth}
	if e.cfg.KillerMoves {
		s.killers = new(KillerStruct)
	}

	actions := pos.GenerateActions()
	if len(actions) == 0 {
		return Result{}, ErrNoLegalAction
	}
	maximizing := pos.ToMove == seedmg.White
	alpha, beta := -MaxScore, MaxScore
	bestScore := MaxScore
	if maximizing {
		bestScore = -MaxScore
	}
	var bestAction seedmg.Action

	for _, a := range OrderActions(pos.Board, actions) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		u := pos.MakeAction(a)
		score := s.minimax(depth-1, alpha, beta)
		pos.UnmakeAction(u)
		if s.err != nil {
			return Result{}, s.err
		}

		// Strict comparison keeps the first of equally scored actions.
		if maximizing && score > bestScore {
			bestScore, bestAction = score, a
			alpha = Max(alpha, score)
		} else if !maximizing && score < bestScore {
			bestScore, bestAction = score, a
			beta = Min(beta, score)
		}
	}

	res := Result{
		Action:  bestAction,
		Score:   bestScore,
		Depth:   depth,
		Stats:   s.stats,
		Elapsed: time.Since(start),
	}
	e.logger.Info("search done",
		"depth", depth,
		"score", FormatScore(bestScore, depth),
		"action", bestAction.String(),
		"time", res.Elapsed,
		"stats", s.stats,
	)
	return res, nil
}

// minimax returns the score of s.pos with White maximizing.
func (s *searcher) minimax(depth, alpha, beta int) int {
	s.stats.Nodes++
	if s.stats.Nodes%ctxCheckInterval == 0 && s.err == nil {
		s.err = s.ctx.Err()
	}
	if s.err != nil {
		return DrawScore
	}

	pos := s.pos
	if depth == 0 {
		return Evaluate(pos.Board, pos.Seeds, s.discount)
	}

	actions := pos.GenerateActions()
	if len(actions) == 0 {
		if pos.InCheck(pos.ToMove) {
			s.stats.MateScores++
			if pos.ToMove == seedmg.White {
				return -(MateScore + depth)
			}
			return MateScore + depth
		}
		s.stats.Stalemates++
		return DrawScore
	}

	ply := s.rootDepth - depth
	moves := scoreMovesList(pos.Board, actions)
	if s.killers != nil {
		s.killers.applyKillers(&moves, ply)
	}
	maximizing := pos.ToMove == seedmg.White
	best := MaxScore
	if maximizing {
		best = -MaxScore
	}
	for i := range moves.moves {
		orderNextMove(i, &moves)
		u := pos.MakeAction(moves.moves[i].action)
		score := s.minimax(depth-1, alpha, beta)
		pos.UnmakeAction(u)

		if maximizing {
			best = Max(best, score)
			alpha = Max(alpha, best)
		} else {
			best = Min(best, score)
			beta = Min(beta, best)
		}
		if alpha >= beta {
			s.stats.BetaCutoffs++
			if s.killers != nil && moves.moves[i].score < plantOffset {
				s.killers.InsertKiller(moves.moves[i].action, ply)
			}
			break
		}
	}
	return best
}

// FormatScore renders "mate N" for forced mates (negative when Black mates)
// and "cp N" otherwise. depth is the depth the score was searched at.
func FormatScore(score, depth int) string {
	if Abs(score) < MateScore {
		return fmt.Sprintf("cp %d", score)
	}
	remaining := Abs(score) - MateScore
	pliesToMate := Max(depth-remaining, 0)
	mateInN := (pliesToMate + 1) / 2
	if score < 0 {
		mateInN = -mateInN
	}
	return fmt.Sprintf("mate %d", mateInN)
}
