package network

import "image/color"

// Surface is the 2D drawing target supplied by a host
type Surface interface {
	// Size reports the current drawable width and height in surface units
	Size() (w, h float64)
	ClearRect(x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA, alpha float64)
	FillCircle(cx, cy, r float64, c color.RGBA, alpha float64)
}

// FrameID identifies a scheduled frame callback
type FrameID uint64

// FrameClock runs a callback once before the next repaint
type FrameClock interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// PointerListener receives pointer movement in surface coordinates
type PointerListener interface {
	PointerMove(x, y float64)
	PointerLeave()
}

// PointerSource delivers pointer events until the returned func is called
type PointerSource interface {
	AddPointerListener(l PointerListener) (remove func())
}

// ResizeSource announces surface size changes until the returned func is called
type ResizeSource interface {
	AddResizeListener(fn func()) (remove func())
}

// Host bundles the services the engine consumes.
// Pointer and Resize may be nil; the engine then runs without them.
type Host struct {
	Surface Surface
	Clock   FrameClock
	Pointer PointerSource
	Resize  ResizeSource
}
