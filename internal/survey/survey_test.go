package survey

import (
	"context"
	"testing"

	"torus-life/internal/game"
	"torus-life/internal/sims/life"
)

func smallGame() game.Config {
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = 12, 12
	cfg.Density = 0.35
	return cfg
}

func TestPlayEmptyBoardGoesExtinct(t *testing.T) {
	cfg := smallGame()
	cfg.Density = 0
	res, err := Play(cfg, 50)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != life.ReasonExtinct || res.Generations != 1 {
		t.Fatalf("result = %+v, want extinct after one step", res)
	}
}

func TestPlayRespectsCap(t *testing.T) {
	res, err := Play(smallGame(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Generations != 1 {
		t.Fatalf("generations = %d, want 1", res.Generations)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Games: 8, Workers: 3, MaxGenerations: 300, BaseSeed: 100, Game: smallGame()}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Results {
		if a.Results[i] != b.Results[i] {
			t.Fatalf("game %d differs across worker counts: %+v vs %+v", i, a.Results[i], b.Results[i])
		}
		if a.Results[i].Seed != 100+int64(i) {
			t.Fatalf("game %d seed = %d", i, a.Results[i].Seed)
		}
	}
	total := 0
	for _, n := range a.Counts {
		total += n
	}
	if total != 8 {
		t.Fatalf("counts cover %d games, want 8", total)
	}
}

func TestRunValidates(t *testing.T) {
	if _, err := Run(context.Background(), Options{Games: 0, MaxGenerations: 1, Game: smallGame()}); err == nil {
		t.Fatal("zero games should fail")
	}
	if _, err := Run(context.Background(), Options{Games: 1, MaxGenerations: 0, Game: smallGame()}); err == nil {
		t.Fatal("zero generation cap should fail")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Options{Games: 4, MaxGenerations: 10, Game: smallGame()}); err == nil {
		t.Fatal("cancelled context should abort the run")
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]Result{
		{Seed: 1, Reason: life.ReasonExtinct, Generations: 10},
		{Seed: 2, Reason: life.ReasonPeriodic, Generations: 30},
		{Seed: 3, Reason: life.ReasonPeriodic, Generations: 20},
	})
	if sum.Counts[life.ReasonPeriodic] != 2 || sum.Counts[life.ReasonExtinct] != 1 {
		t.Fatalf("counts = %v", sum.Counts)
	}
	if sum.MeanLifetime != 20 || sum.LongestSeed != 2 || sum.LongestLifetime != 30 {
		t.Fatalf("summary = %+v", sum)
	}
}
