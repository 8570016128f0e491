package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"math-snake/config"
	"math-snake/game"
	"math-snake/term"
	"math-snake/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	frontend := flag.String("frontend", "", "Frontend to play in: raylib or term (overrides config)")
	tick := flag.Duration("tick", 0, "Time between snake steps, e.g. 200ms (overrides config)")
	seed := flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock (overrides config)")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		glog.Exitf("%v", err)
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *tick != 0 {
		cfg.TickInterval = *tick
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		glog.Exitf("invalid configuration: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	glog.Infof("starting %s frontend, seed %d, tick %s", cfg.Frontend, cfg.Seed, cfg.TickInterval)

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := game.NewGame(cfg.Game, cfg.Window, rng)

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(g, cfg.TickInterval)
	default:
		err = ui.Run(g, cfg.TickInterval)
	}
	if err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Infof("played %d games, best score %d", g.GamesPlayed(), g.HighScore())
}

func runTerminal(g *game.Game, interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return term.NewApp(screen, g, interval).Run(ctx)
}
