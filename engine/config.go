package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"seedchess/seedmg"
)

// Config holds the search knobs. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	ClassicDepth                     int     `json:"classic_depth"`
	SeedDepth                        int     `json:"seed_depth"`
	SimulateSeedHatchingDuringSearch bool    `json:"simulate_seed_hatching_during_search"`
	SeedValueDiscountBase            float64 `json:"seed_value_discount_base"`
	AIThinkingDelaySeconds           float64 `json:"ai_thinking_delay_seconds"`

	// KillerMoves lifts quiet actions that recently cut off at the same ply
	// ahead of other quiet actions below the root.
	KillerMoves bool `json:"killer_moves"`
}

func DefaultConfig() Config {
	return Config{
		ClassicDepth: 4,
		// planting multiplies the branching factor
		SeedDepth:                        3,
		SimulateSeedHatchingDuringSearch: true,
		SeedValueDiscountBase:            0.8,
		AIThinkingDelaySeconds:           0,
		KillerMoves:                      false,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.ClassicDepth < 1:
		return fmt.Errorf("%w: classic_depth %d < 1", ErrInvalidConfig, c.ClassicDepth)
	case c.SeedDepth < 1:
		return fmt.Errorf("%w: seed_depth %d < 1", ErrInvalidConfig, c.SeedDepth)
	case c.SeedValueDiscountBase <= 0 || c.SeedValueDiscountBase >= 1:
		return fmt.Errorf("%w: seed_value_discount_base %v not in (0,1)", ErrInvalidConfig, c.SeedValueDiscountBase)
	case c.AIThinkingDelaySeconds < 0:
		return fmt.Errorf("%w: ai_thinking_delay_seconds %v < 0", ErrInvalidConfig, c.AIThinkingDelaySeconds)
	}
	return nil
}

// DepthFor returns the search depth configured for the variant.
func (c Config) DepthFor(v seedmg.Variant) int {
	if v == seedmg.SeedChess {
		return c.SeedDepth
	}
	return c.ClassicDepth
}

// ThinkingDelay is the minimum wall time an AI turn should appear to take.
func (c Config) ThinkingDelay() time.Duration {
	return time.Duration(c.AIThinkingDelaySeconds * float64(time.Second))
}

// ParseConfig decodes a JSON document over DefaultConfig, so omitted fields
// keep their defaults. Unknown fields are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}
