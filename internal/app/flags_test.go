package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"torus-life/internal/game"
	"torus-life/internal/sims/life"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestResolveFlags(t *testing.T) {
	cfg, err := parse(t, "-seed", "7", "-interval", "300", "-count", "evaluated", "-paused").Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 7 || cfg.Interval != 300*time.Millisecond || cfg.CountMode != life.CountEvaluated || !cfg.StartPaused {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestResolveRejectsBadValues(t *testing.T) {
	if _, err := parse(t, "-count", "maybe").Resolve(); !errors.Is(err, game.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
	if _, err := parse(t, "-interval", "50").Resolve(); !errors.Is(err, game.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"interval_ms": 800, "density": 0.3, "seed": 11}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := parse(t, "-config", path, "-interval", "200").Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Interval != 200*time.Millisecond {
		t.Fatalf("explicit flag should win, interval = %v", cfg.Interval)
	}
	if cfg.Density != 0.3 || cfg.Seed != 11 {
		t.Fatalf("file values should apply where no flag was given: %+v", cfg)
	}
}

func TestBindSessionOmitsWindowFlags(t *testing.T) {
	fs := flag.NewFlagSet("life-term", flag.ContinueOnError)
	NewConfig().BindSession(fs)
	if fs.Lookup("scale") != nil || fs.Lookup("hud") != nil {
		t.Fatal("session flags must not include window flags")
	}
	if fs.Lookup("seed") == nil || fs.Lookup("count") == nil {
		t.Fatal("session flags missing")
	}
}
