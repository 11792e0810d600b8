package network

import (
	"errors"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-network/internal/config"
)

var (
	ErrNoSurface = errors.New("network: no drawing surface")
	ErrNoClock   = errors.New("network: no frame clock")
)

// Status is the scheduler state of an Engine
type Status int

const (
	Stopped Status = iota
	Running
)

func (s Status) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// State is the simulation state owned by an Engine
type State struct {
	Particles     []Particle
	Pointer       Pointer
	Width, Height float64
}

// Stats describes the most recent frame
type Stats struct {
	Frames     uint64
	Particles  int
	Links      int
	Influenced int
}

// Engine runs the particle network on a host.
// All methods must be called from the host's loop goroutine.
type Engine struct {
	cfg     config.Network
	host    Host
	rng     Rand
	palette Palette

	state  State
	status Status
	frame  FrameID
	detach []func()

	links []Link // reused across frames
	stats Stats
}

// New creates a stopped engine. A nil palette paints everything white.
func New(cfg config.Network, host Host, rng Rand, palette Palette) *Engine {
	if palette == nil {
		palette = SolidPalette{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	}
	return &Engine{
		cfg:     cfg,
		host:    host,
		rng:     rng,
		palette: palette,
		state:   State{Pointer: NoPointer},
	}
}

// Mount sizes the surface, creates the population, subscribes to the
// host's events and draws the first frame. Without a surface or clock
// the engine stays stopped.
func (e *Engine) Mount() error {
	if e.status == Running {
		return nil
	}
	if e.host.Surface == nil {
		return ErrNoSurface
	}
	if e.host.Clock == nil {
		return ErrNoClock
	}

	e.Resize()
	e.state.Pointer = NoPointer

	if e.host.Pointer != nil {
		e.detach = append(e.detach, e.host.Pointer.AddPointerListener(e))
	}
	if e.host.Resize != nil {
		e.detach = append(e.detach, e.host.Resize.AddResizeListener(e.Resize))
	}

	e.status = Running
	e.draw()
	return nil
}

// Dispose cancels the pending frame and detaches all listeners.
// Calling it more than once is harmless.
func (e *Engine) Dispose() {
	if e.status != Running {
		return
	}
	e.status = Stopped
	e.host.Clock.CancelFrame(e.frame)
	e.frame = 0
	for _, fn := range e.detach {
		fn()
	}
	e.detach = nil
}

// Resize re-reads the surface size and replaces the whole population
func (e *Engine) Resize() {
	if e.host.Surface == nil {
		return
	}
	w, h := e.host.Surface.Size()
	e.state.Width, e.state.Height = w, h
	e.state.Particles = Populate(e.rng, e.cfg, w, h)
}

// PointerMove records the pointer position in surface coordinates
func (e *Engine) PointerMove(x, y float64) {
	e.state.Pointer = Pointer{Pos: r2.Vec{X: x, Y: y}, Present: true}
}

// PointerLeave marks the pointer absent and parks it far outside the surface
func (e *Engine) PointerLeave() {
	e.state.Pointer = NoPointer
}

// Status reports whether the frame loop is active
func (e *Engine) Status() Status {
	return e.status
}

// Particles returns a copy of the current population
func (e *Engine) Particles() []Particle {
	return append([]Particle(nil), e.state.Particles...)
}

// Pointer returns the last known pointer state
func (e *Engine) Pointer() Pointer {
	return e.state.Pointer
}

// Size returns the surface dimensions used by the simulation
func (e *Engine) Size() (w, h float64) {
	return e.state.Width, e.state.Height
}

// Stats returns counters for the last drawn frame
func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) draw() {
	if e.status != Running {
		return
	}
	e.render()
	e.frame = e.host.Clock.RequestFrame(e.draw)
}

// render performs one frame step: clear, links, pointer effects and
// bodies, then integration.
func (e *Engine) render() {
	s := e.host.Surface
	cfg := e.cfg
	ps := e.state.Particles
	w, h := e.state.Width, e.state.Height
	pointer := e.state.Pointer

	s.ClearRect(0, 0, w, h)

	e.links = appendLinks(e.links[:0], ps, cfg)
	for _, l := range e.links {
		a, b := ps[l.A].Pos, ps[l.B].Pos
		s.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.LinkWidth, e.palette.At(a.X, a.Y), l.Alpha)
	}

	influenced := 0
	for i := range ps {
		p := &ps[i]
		d := Influence(*p, pointer, cfg)
		c := e.palette.At(p.Pos.X, p.Pos.Y)
		if d.Influence {
			influenced++
			s.StrokeLine(pointer.Pos.X, pointer.Pos.Y, p.Pos.X, p.Pos.Y, cfg.PointerLinkWidth, c, d.LinkAlpha)
			p.Vel = r2.Add(p.Vel, d.Pull)
		}
		s.FillCircle(p.Pos.X, p.Pos.Y, d.Radius, c, d.Opacity)
		Integrate(p, w, h, cfg)
	}

	e.stats.Frames++
	e.stats.Particles = len(ps)
	e.stats.Links = len(e.links)
	e.stats.Influenced = influenced
}
