package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-network/internal/config"
	"github.com/olivierh59500/particle-network/internal/game"
	"github.com/olivierh59500/particle-network/internal/network"
	"github.com/olivierh59500/particle-network/internal/term"
)

var (
	configPath = flag.String("config", "", "JSON config file (missing file uses defaults)")
	backend    = flag.String("backend", "", "Host: ebiten or terminal")
	seed       = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	count      = flag.Int("n", 0, "Number of particles")
	tint       = flag.String("tint", "", "Particle tint: solid or noise")
	hud        = flag.Bool("hud", false, "Show frame statistics")
	logFile    = flag.String("log", "", "Log file for the terminal host")
	dumpConfig = flag.String("dump-config", "", "Write the effective config to this file and exit")
)

func main() {
	log.SetPrefix("particle-network: ")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if *dumpConfig != "" {
		if err := cfg.Save(*dumpConfig); err != nil {
			log.Fatal(err)
		}
		return
	}

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))
	palette, err := network.NewPalette(cfg.Network, s)
	if err != nil {
		log.Fatal(err)
	}

	switch cfg.Backend {
	case config.BackendTerminal:
		err = runTerminal(cfg, rng, palette)
	default:
		err = runWindow(cfg, rng, palette)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig layers defaults, the optional config file and flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, os.ErrNotExist):
			log.Printf("%v, using defaults", err)
		default:
			return cfg, err
		}
	}

	if *backend != "" {
		cfg.Backend = *backend
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *count > 0 {
		cfg.Network.Count = *count
	}
	if *tint != "" {
		cfg.Network.Tint = *tint
	}
	if *hud {
		cfg.HUD = true
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	return cfg, cfg.Validate()
}

func runWindow(cfg config.Config, rng *rand.Rand, palette network.Palette) error {
	g, err := game.New(cfg, *configPath, rng, palette)
	if err != nil {
		return err
	}
	return game.Run(g)
}

func runTerminal(cfg config.Config, rng *rand.Rand, palette network.Palette) error {
	// The screen owns the terminal; keep log output off it
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app, err := term.New(screen, cfg, rng, palette)
	if err != nil {
		return err
	}
	app.Run()
	return nil
}
