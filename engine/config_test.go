package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seedchess/seedmg"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.DepthFor(seedmg.Classic) <= cfg.DepthFor(seedmg.SeedChess) {
		t.Fatalf("classic depth should exceed seed depth")
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(`{"classic_depth": 5, "ai_thinking_delay_seconds": 1.5}`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.ClassicDepth != 5 || cfg.SeedDepth != 3 || cfg.SeedValueDiscountBase != 0.8 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := cfg.ThinkingDelay(); got != 1500*time.Millisecond {
		t.Fatalf("ThinkingDelay: got %v", got)
	}
}

func TestParseConfigRejects(t *testing.T) {
	for _, doc := range []string{
		`{"classic_depht": 5}`,
		`{"seed_depth": 0}`,
		`{"seed_value_discount_base": 1}`,
		`{"seed_value_discount_base": 0}`,
		`{"ai_thinking_delay_seconds": -1}`,
		`not json`,
	} {
		if _, err := ParseConfig(strings.NewReader(doc)); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("ParseConfig(%s): got %v want ErrInvalidConfig", doc, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{"seed_depth": 2, "simulate_seed_hatching_during_search": false}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SeedDepth != 2 || cfg.SimulateSeedHatchingDuringSearch {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file should fail")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClassicDepth = 0
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New: got %v want ErrInvalidConfig", err)
	}
}
