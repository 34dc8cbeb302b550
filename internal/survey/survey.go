// Package survey runs many independent headless games and summarises how
// they end.
package survey

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"torus-life/internal/game"
	"torus-life/internal/sims/life"
)

// Options controls a survey run.
type Options struct {
	Games          int
	Workers        int
	MaxGenerations int
	BaseSeed       int64
	Game           game.Config
}

// Result records how one game ended.
type Result struct {
	Seed        int64
	Reason      life.Reason
	Generations int
	Live        int
}

// Summary aggregates the results of a run.
type Summary struct {
	Results []Result
	// Counts maps each end reason to the number of games; games that hit
	// MaxGenerations are counted under life.ReasonNone.
	Counts          map[life.Reason]int
	MeanLifetime    float64
	LongestSeed     int64
	LongestLifetime int
}

// Play runs a single game to completion or the generation cap.
func Play(cfg game.Config, maxGenerations int) (Result, error) {
	cfg.StartPaused = false
	s, err := game.New(cfg, nil)
	if err != nil {
		return Result{}, err
	}
	for s.Generation() < maxGenerations {
		reason, err := s.Step()
		if err != nil {
			return Result{}, errors.Wrapf(err, "seed %d generation %d", cfg.Seed, s.Generation())
		}
		if reason.Over() {
			break
		}
	}
	return Result{Seed: cfg.Seed, Reason: s.Reason(), Generations: s.Generation(), Live: s.Grid().LiveCount()}, nil
}

// Run plays opts.Games games seeded BaseSeed, BaseSeed+1, ... on a bounded
// pool of workers. Each game stays on one goroutine.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Games <= 0 {
		return Summary{}, errors.Errorf("survey: games must be positive, got %d", opts.Games)
	}
	if opts.MaxGenerations <= 0 {
		return Summary{}, errors.Errorf("survey: max generations must be positive, got %d", opts.MaxGenerations)
	}
	if err := opts.Game.Validate(); err != nil {
		return Summary{}, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Games)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range results {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := opts.Game
			cfg.Seed = opts.BaseSeed + int64(i)
			res, err := Play(cfg, opts.MaxGenerations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	return Summarize(results), nil
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	sum := Summary{Results: results, Counts: map[life.Reason]int{}}
	if len(results) == 0 {
		return sum
	}
	total := 0
	for _, r := range results {
		sum.Counts[r.Reason]++
		total += r.Generations
		if r.Generations > sum.LongestLifetime {
			sum.LongestLifetime = r.Generations
			sum.LongestSeed = r.Seed
		}
	}
	sum.MeanLifetime = float64(total) / float64(len(results))
	return sum
}
