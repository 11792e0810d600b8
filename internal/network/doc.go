// Package network implements the ambient particle network: a fixed
// population of drifting points joined by proximity lines, drawn toward
// and brightened by the pointer, wrapping around the surface edges.
//
// The Engine owns all simulation state and runs on a host that supplies
// a Surface, a FrameClock and optional pointer and resize sources. Each
// frame clears the surface, draws links, applies pointer influence, draws
// particle bodies, integrates positions and re-arms itself on the clock.
package network
