package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"torus-life/internal/app"
	"torus-life/internal/sims/life"
	"torus-life/internal/survey"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindSession(flag.CommandLine)
	games := flag.Int("games", 200, "number of games to play")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel games")
	maxGen := flag.Int("max-generations", 5000, "generation cap per game")
	verbose := flag.Bool("v", false, "print every game")
	flag.Parse()

	gameCfg, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := survey.Run(ctx, survey.Options{
		Games:          *games,
		Workers:        *workers,
		MaxGenerations: *maxGen,
		BaseSeed:       gameCfg.Seed,
		Game:           gameCfg,
	})
	if err != nil {
		log.Fatalf("survey: %v", err)
	}

	if *verbose {
		for _, r := range sum.Results {
			fmt.Printf("seed %d: %s after %d generations, %d live\n", r.Seed, r.Reason, r.Generations, r.Live)
		}
	}
	fmt.Printf("%d games on %dx%d, density %.2f, counting %s\n",
		len(sum.Results), gameCfg.Width, gameCfg.Height, gameCfg.Density, gameCfg.CountMode)
	for _, reason := range []life.Reason{life.ReasonExtinct, life.ReasonPeriodic, life.ReasonStatic, life.ReasonNone} {
		label := reason.String()
		if reason == life.ReasonNone {
			label = "capped"
		}
		fmt.Printf("  %-9s %d\n", label, sum.Counts[reason])
	}
	fmt.Printf("mean lifetime %.1f generations, longest %d (seed %d)\n",
		sum.MeanLifetime, sum.LongestLifetime, sum.LongestSeed)
}
