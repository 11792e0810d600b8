package network

// FrameQueue is a single-slot FrameClock driven by the host's repaint.
// A new request replaces any pending one.
type FrameQueue struct {
	seq     FrameID
	pending FrameID
	fn      func()
}

// NewFrameQueue creates an empty queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame schedules fn for the next Fire
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.seq++
	q.pending = q.seq
	q.fn = fn
	return q.seq
}

// CancelFrame drops the pending callback if id is still pending
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id != 0 && id == q.pending {
		q.pending = 0
		q.fn = nil
	}
}

// Fire runs the pending callback, if any, and reports whether it ran.
// The slot is cleared before the call so the callback can re-arm itself.
func (q *FrameQueue) Fire() bool {
	fn := q.fn
	if fn == nil {
		return false
	}
	q.fn = nil
	q.pending = 0
	fn()
	return true
}
