//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gameCfg, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	session, err := game.New(gameCfg, log.New(os.Stderr, "life: ", log.LstdFlags))
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	g := app.New(session, cfg.Scale, cfg.HUDWidth)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
