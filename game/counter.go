package game

import "sync/atomic"

// Counter tallies successor generations for one game. States of the same
// game share a single Counter; separate games must use separate counters.
type Counter struct {
	successors atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

// Add is a no-op on a nil counter.
func (c *Counter) Add() {
	if c == nil {
		return
	}
	c.successors.Add(1)
}

func (c *Counter) Load() int64 {
	if c == nil {
		return 0
	}
	return c.successors.Load()
}

func (c *Counter) Reset() {
	if c == nil {
		return
	}
	c.successors.Store(0)
}
