// Package session owns one interactive game: the live position, its move
// history and the engine that answers for the AI side.
package session

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"seedchess/engine"
	"seedchess/seedmg"
)

// Callbacks let a presentation layer follow the game. Both run after the
// session lock is released, so they may call back into the session.
type Callbacks struct {
	OnStateChanged  func(seedmg.GameState)
	OnActionApplied func(seedmg.Action)
}

type Option func(*Session)

func WithCallbacks(cb Callbacks) Option {
	return func(s *Session) { s.cb = cb }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session is safe for concurrent use.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	pos     *seedmg.Position
	engine  *engine.Engine
	history []seedmg.Action
	cb      Callbacks
	logger  *slog.Logger
}

// New starts a game from the standard position.
func New(cfg seedmg.GameConfig, eng *engine.Engine, opts ...Option) *Session {
	return NewFromPosition(seedmg.NewPosition(cfg), eng, opts...)
}

// NewFromPosition starts a game from pos, which the session takes over.
func NewFromPosition(pos *seedmg.Position, eng *engine.Engine, opts ...Option) *Session {
	s := &Session{
		ID:     uuid.New(),
		pos:    pos,
		engine: eng,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.ID.String())
	s.logger.Info("game started", "mode", pos.Config.Mode, "fen", pos.FEN(), "state", pos.State())
	return s
}

// LegalActions lists what the piece on sq may do. It is empty for an empty
// square, a seed marker or a piece of the side not to move.
func (s *Session) LegalActions(sq seedmg.Square) []seedmg.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pos.Board.At(sq)
	if p == nil || p.IsSeed || p.Color != s.pos.ToMove || s.pos.State().IsOver() {
		return nil
	}
	return s.pos.LegalActions(p)
}

// Apply plays a for the side to move. a is matched against the legal list by
// squares and, for plants, seed kind, so a parsed "e1g1" resolves to castling.
// A promotion kind on a overrides the default queen.
func (s *Session) Apply(a seedmg.Action) error {
	s.mu.Lock()
	applied, state, changed, err := s.applyLocked(a)
	cb := s.cb
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if cb.OnActionApplied != nil {
		cb.OnActionApplied(applied)
	}
	if changed && cb.OnStateChanged != nil {
		cb.OnStateChanged(state)
	}
	return nil
}

func (s *Session) applyLocked(a seedmg.Action) (seedmg.Action, seedmg.GameState, bool, error) {
	prev := s.pos.State()
	if prev.IsOver() {
		return a, prev, false, ErrGameOver
	}
	p := s.pos.Board.At(a.From)
	if p == nil || p.IsSeed {
		return a, prev, false, ErrIllegalAction
	}
	if p.Color != s.pos.ToMove {
		return a, prev, false, ErrNotYourTurn
	}

	legal, ok := matchAction(s.pos.LegalActions(p), a)
	if !ok {
		s.logger.Debug("illegal action", "action", a.String())
		return a, prev, false, ErrIllegalAction
	}
	if legal.IsPromotion() && a.IsPromotion() && a.Promotion != legal.Promotion {
		var err error
		if legal, err = legal.WithPromotion(a.Promotion); err != nil {
			return a, prev, false, ErrIllegalAction
		}
	}

	mover := s.pos.ToMove
	u := s.pos.MakeAction(legal)
	s.history = append(s.history, legal)
	for _, h := range u.Hatched() {
		s.logger.Info("seed hatched", "square", h.Square.String(), "kind", h.Kind, "owner", h.Owner)
	}

	state := s.pos.State()
	s.logger.Info("action applied", "side", mover, "action", legal.String(), "ply", len(s.history), "state", state)
	return legal, state, state != prev, nil
}

func matchAction(legal []seedmg.Action, a seedmg.Action) (seedmg.Action, bool) {
	for _, l := range legal {
		if l.From == a.From && l.To == a.To && l.IsPlant() == a.IsPlant() && l.Seed == a.Seed {
			return l, true
		}
	}
	return seedmg.Action{}, false
}

// RequestAIAction starts the engine on the current position. The result is
// not applied; pass it to Apply, or use PlayAI.
func (s *Session) RequestAIAction(ctx context.Context) (<-chan engine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos.State().IsOver() {
		return nil, ErrGameOver
	}
	return s.engine.Think(ctx, s.pos, s.history)
}

// PlayAI asks the engine for the side to move and applies its answer.
func (s *Session) PlayAI(ctx context.Context) (engine.Result, error) {
	ch, err := s.RequestAIAction(ctx)
	if err != nil {
		return engine.Result{}, err
	}
	res := <-ch
	if res.Err != nil {
		return res, res.Err
	}
	s.logger.Info("engine answered",
		"action", res.Action.String(),
		"score", engine.FormatScore(res.Score, res.Depth),
		"book", res.FromBook,
		"elapsed", res.Elapsed,
	)
	return res, s.Apply(res.Action)
}

// AIThinking reports whether an engine request is in flight.
func (s *Session) AIThinking() bool { return s.engine.State() != engine.Idle }

// State classifies the live position on every call; it is never cached.
func (s *Session) State() seedmg.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.State()
}

func (s *Session) ToMove() seedmg.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.ToMove
}

// History returns the applied actions in order.
func (s *Session) History() []seedmg.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]seedmg.Action(nil), s.history...)
}

// HistoryKey is the history in opening-book notation.
func (s *Session) HistoryKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.HistoryKey(s.history)
}

// Snapshot returns a deep copy of the live position.
func (s *Session) Snapshot() *seedmg.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Clone()
}

// Seeds lists the live growing seeds.
func (s *Session) Seeds() []seedmg.Seed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Seeds.Seeds()
}

func (s *Session) HasSeed(c seedmg.Color) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Seeds.HasSeed(c)
}

func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.FEN()
}

func (s *Session) Board() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Board.String()
}
