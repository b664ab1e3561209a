package state

import "sync/atomic"

// versionClock counts state changes. Readers compare versions to decide
// whether a cached projection is still current.
type versionClock struct {
	n atomic.Uint64
}

func (c *versionClock) tick() uint64 {
	return c.n.Add(1)
}

func (c *versionClock) now() uint64 {
	return c.n.Load()
}
