package network

// Events fans pointer and resize notifications out to subscribers.
// It implements both PointerSource and ResizeSource.
type Events struct {
	nextID  int
	pointer map[int]PointerListener
	resize  map[int]func()
}

// NewEvents creates an empty registry
func NewEvents() *Events {
	return &Events{
		pointer: make(map[int]PointerListener),
		resize:  make(map[int]func()),
	}
}

// AddPointerListener subscribes l to Move and Leave
func (ev *Events) AddPointerListener(l PointerListener) func() {
	ev.nextID++
	id := ev.nextID
	ev.pointer[id] = l
	return func() { delete(ev.pointer, id) }
}

// AddResizeListener subscribes fn to Resized
func (ev *Events) AddResizeListener(fn func()) func() {
	ev.nextID++
	id := ev.nextID
	ev.resize[id] = fn
	return func() { delete(ev.resize, id) }
}

// Move publishes a pointer position
func (ev *Events) Move(x, y float64) {
	for _, l := range ev.pointer {
		l.PointerMove(x, y)
	}
}

// Leave publishes the pointer leaving the surface
func (ev *Events) Leave() {
	for _, l := range ev.pointer {
		l.PointerLeave()
	}
}

// Resized publishes a surface size change
func (ev *Events) Resized() {
	for _, fn := range ev.resize {
		fn()
	}
}

// CursorTracker turns a polled cursor position into move and leave edges
// for hosts that have no native leave event.
type CursorTracker struct {
	inside bool
	x, y   float64
}

// Update feeds one poll. The cursor counts as present when the window is
// focused and the position lies within the w×h surface.
func (t *CursorTracker) Update(ev *Events, x, y, w, h float64, focused bool) {
	present := focused && x >= 0 && y >= 0 && x < w && y < h
	if !present {
		if t.inside {
			t.inside = false
			ev.Leave()
		}
		return
	}
	if t.inside && x == t.x && y == t.y {
		return
	}
	t.inside = true
	t.x, t.y = x, y
	ev.Move(x, y)
}

// Reset forgets the last reported position so the next poll is reported
// again, e.g. to a listener that subscribed after earlier polls.
func (t *CursorTracker) Reset() {
	*t = CursorTracker{}
}
