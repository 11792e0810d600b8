package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-network/internal/config"
	"github.com/olivierh59500/particle-network/internal/network"
)

// Game hosts the particle network in an ebiten window
type Game struct {
	cfg        config.Config
	configPath string // Target of the save key, empty disables saving

	engine  *network.Engine
	surface *surface
	clock   *network.FrameQueue
	events  *network.Events
	tracker network.CursorTracker

	mounted  bool
	disabled bool // Mount failed, the effect is not rendered
	hud      bool
}

// New creates the window host and its engine
func New(cfg config.Config, configPath string, rng network.Rand, palette network.Palette) (*Game, error) {
	bg, err := network.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", cfg.Background, err)
	}

	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		surface:    &surface{w: cfg.Width, h: cfg.Height, bg: bg},
		clock:      network.NewFrameQueue(),
		events:     network.NewEvents(),
		hud:        cfg.HUD,
	}
	g.engine = network.New(cfg.Network, network.Host{
		Surface: g.surface,
		Clock:   g.clock,
		Pointer: g.events,
		Resize:  g.events,
	}, rng, palette)
	return g, nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveConfig()
	}

	mx, my := ebiten.CursorPosition()
	g.tracker.Update(g.events, float64(mx), float64(my), float64(g.surface.w), float64(g.surface.h), ebiten.IsFocused())
	return nil
}

// Draw is called each frame by Ebitengine and drives the frame clock
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	defer func() { g.surface.dst = nil }()

	switch {
	case g.disabled:
	case !g.mounted:
		if err := g.engine.Mount(); err != nil {
			log.Printf("particle network disabled: %v", err)
			g.disabled = true
			break
		}
		g.mounted = true
		// Update polls before the first Draw; report the cursor again now
		// that the engine is listening
		g.tracker.Reset()
	default:
		g.clock.Fire()
	}

	if g.hud {
		st := g.engine.Stats()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  particles %d  links %d  near pointer %d",
			ebiten.ActualFPS(), st.Particles, st.Links, st.Influenced), 8, 8)
	}
}

// Layout follows the window size; a change regenerates the network
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.surface.w || outsideHeight != g.surface.h {
		g.surface.w, g.surface.h = outsideWidth, outsideHeight
		g.events.Resized()
	}
	return outsideWidth, outsideHeight
}

// Close stops the engine; no frame is drawn afterwards
func (g *Game) Close() {
	g.engine.Dispose()
}

// saveConfig writes the running configuration back to its file
func (g *Game) saveConfig() {
	if g.configPath == "" {
		return
	}
	if err := g.cfg.Save(g.configPath); err != nil {
		log.Printf("save config: %v", err)
		return
	}
	log.Printf("config saved to %s", g.configPath)
}

// Run opens the window and blocks until it is closed
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TPS)

	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
