package engine

import (
	"context"
	"time"

	"seedchess/seedmg"
)

// ThinkState is the engine's per-turn state machine.
type ThinkState int32

const (
	Idle ThinkState = iota
	Searching
	Delaying
)

func (s ThinkState) String() string {
	switch s {
	case Searching:
		return "searching"
	case Delaying:
		return "delaying"
	}
	return "idle"
}

func (e *Engine) State() ThinkState { return ThinkState(e.state.Load()) }

// Think starts BestAction in the background. pos is cloned before Think
// returns, so the caller may keep using it. The channel yields exactly one
// Result and is then closed. A second Think while one is running fails with
// ErrSearchInProgress.
func (e *Engine) Think(ctx context.Context, pos *seedmg.Position, history []seedmg.Action) (<-chan Result, error) {
	if !e.state.CompareAndSwap(int32(Idle), int32(Searching)) {
		return nil, ErrSearchInProgress
	}
	clone := pos.CloneForSearch(e.cfg.SimulateSeedHatchingDuringSearch)
	hist := append([]seedmg.Action(nil), history...)
	depth := e.cfg.DepthFor(pos.Config.Mode)

	out := make(chan Result, 1)
	go func() {
		var th TimeHandler
		th.StartTime(e.cfg.ThinkingDelay())

		res, err := e.choose(ctx, clone, hist, depth)
		res.Err = err
		if err == nil {
			if wait := th.Remaining(); wait > 0 {
				e.state.Store(int32(Delaying))
				res.Err = e.delay(ctx, wait)
			}
		}
		res.Elapsed = th.Elapsed()

		e.state.Store(int32(Idle))
		out <- res
		close(out)
	}()
	return out, nil
}

func (e *Engine) delay(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
