package content

import "sync/atomic"

// VisitorCounter is the page-load counter. It is the one piece of shared
// mutable state with no backing transaction, so the increment must be
// atomic: simultaneous page loads may not lose counts. Resets to zero on
// restart.
type VisitorCounter struct {
	n atomic.Int64
}

func NewVisitorCounter() *VisitorCounter {
	return &VisitorCounter{}
}

func (c *VisitorCounter) Get() int64 {
	return c.n.Load()
}

// Increment adds one and returns the new count.
func (c *VisitorCounter) Increment() int64 {
	return c.n.Add(1)
}
