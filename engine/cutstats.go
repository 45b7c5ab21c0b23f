package engine

import "log/slog"

// CutStatistics collects counters for one search.
type CutStatistics struct {
	Nodes       uint64
	BetaCutoffs uint64
	MateScores  uint64
	Stalemates  uint64
}

// LogValue groups the counters under one slog attribute.
func (c CutStatistics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("nodes", c.Nodes),
		slog.Uint64("beta_cutoffs", c.BetaCutoffs),
		slog.Uint64("mates", c.MateScores),
		slog.Uint64("stalemates", c.Stalemates),
	)
}
