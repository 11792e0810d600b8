package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-network/internal/config"
	"github.com/olivierh59500/particle-network/internal/network"
)

// pointerIdle is how long the mouse may stay silent before the pointer is
// treated as gone. Terminals report no event when the mouse leaves them.
const pointerIdle = 3 * time.Second

// App hosts the particle network on a terminal screen.
// Every method except Run's event pump runs on the loop goroutine.
type App struct {
	screen  tcell.Screen
	cfg     config.Config
	surface *Surface
	clock   *network.FrameQueue
	events  *network.Events
	engine  *network.Engine
	hud     bool

	now       func() time.Time
	pointer   bool // A move was published since the last leave
	lastMouse time.Time
}

// New wraps an initialized screen
func New(screen tcell.Screen, cfg config.Config, rng network.Rand, palette network.Palette) (*App, error) {
	bg, err := network.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", cfg.Background, err)
	}

	a := &App{
		screen:  screen,
		cfg:     cfg,
		surface: NewSurface(screen, cfg.CellWidth, cfg.CellHeight, bg),
		clock:   network.NewFrameQueue(),
		events:  network.NewEvents(),
		hud:     cfg.HUD,
		now:     time.Now,
	}
	a.engine = network.New(cfg.Network, network.Host{
		Surface: a.surface,
		Clock:   a.clock,
		Pointer: a.events,
		Resize:  a.events,
	}, rng, palette)
	return a, nil
}

// Start enables mouse and focus reporting and mounts the engine.
// A failed mount leaves the screen blank but the app keeps running.
func (a *App) Start() {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.EnableFocus()
	a.screen.Clear()

	if err := a.engine.Mount(); err != nil {
		log.Printf("particle network disabled: %v", err)
	}
	a.show()
}

// Engine exposes the hosted engine
func (a *App) Engine() *network.Engine {
	return a.engine
}

// HandleEvent applies one terminal event and reports whether to keep running
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				a.hud = !a.hud
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		w, h := a.screen.Size()
		if x < 0 || y < 0 || x >= w || y >= h {
			a.leave()
			break
		}
		a.pointer = true
		a.lastMouse = a.now()
		a.events.Move(a.surface.CellCenter(x, y))

	case *tcell.EventFocus:
		if !ev.Focused {
			a.leave()
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.surface.Sync()
		a.events.Resized()
	}
	return true
}

// Tick fires the pending frame and presents it. A pointer idle for
// pointerIdle is reported as having left first.
func (a *App) Tick() {
	if a.pointer && a.now().Sub(a.lastMouse) >= pointerIdle {
		a.leave()
	}
	if a.clock.Fire() {
		a.show()
	}
}

func (a *App) leave() {
	a.pointer = false
	a.events.Leave()
}

func (a *App) show() {
	if a.hud {
		st := a.engine.Stats()
		a.drawText(0, 0, fmt.Sprintf(" particles %d  links %d  near pointer %d ", st.Particles, st.Links, st.Influenced))
	}
	a.screen.Show()
}

func (a *App) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Close stops the engine
func (a *App) Close() {
	a.engine.Dispose()
}

// Run drives frames from a ticker until a quit key is pressed
func (a *App) Run() {
	a.Start()
	defer a.Close()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.Tick()
		}
	}
}
