package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/app"
	"torus-life/internal/game"
	"torus-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindSession(flag.CommandLine)
	frame := flag.Duration("frame", 20*time.Millisecond, "input and redraw period")
	logPath := flag.String("log", "", "append session log lines to this file")
	flag.Parse()

	gameCfg, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *log.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "life: ", log.LstdFlags)
	}

	session, err := game.New(gameCfg, logger)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := term.New(screen, session).Run(ctx, *frame)
	stop()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
