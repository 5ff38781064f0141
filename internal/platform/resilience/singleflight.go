package resilience

import "sync"

// SingleFlight collapses concurrent calls for the same key into one
// execution; followers receive the leader's result.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*inflight
}

type inflight struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once per key at a time. The bool result reports whether the
// value was shared from another caller's execution.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*inflight)
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}

	c := &inflight{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	c.val, c.err = fn()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	close(c.done)

	return c.val, c.err, false
}
