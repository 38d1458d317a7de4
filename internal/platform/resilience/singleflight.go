package resilience

import (
	"fmt"
	"sync"
)

// Group deduplicates concurrent calls that share a key. Callers arriving while
// a call is in flight wait for it and receive the same result.
type Group[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

type call[T any] struct {
	done chan struct{}
	val  T
	err  error
	dups int
}

// Result is what DoChan delivers.
type Result[T any] struct {
	Val    T
	Err    error
	Shared bool
}

// Do runs fn once per in-flight key. shared reports whether the result was
// handed to more than one caller.
func (g *Group[T]) Do(key string, fn func() (T, error)) (val T, err error, shared bool) {
	c, leader := g.join(key)
	if !leader {
		<-c.done
		return c.val, c.err, true
	}
	shared = g.run(key, c, fn)
	return c.val, c.err, shared
}

// DoChan is Do without blocking the caller. fn runs on its own goroutine, so
// a caller that stops waiting does not stop the call for the others.
func (g *Group[T]) DoChan(key string, fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	c, leader := g.join(key)
	if !leader {
		go func() {
			<-c.done
			ch <- Result[T]{Val: c.val, Err: c.err, Shared: true}
		}()
		return ch
	}

	go func() {
		shared := g.run(key, c, fn)
		ch <- Result[T]{Val: c.val, Err: c.err, Shared: shared}
	}()
	return ch
}

func (g *Group[T]) join(key string) (*call[T], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}
	if c, ok := g.calls[key]; ok {
		c.dups++
		return c, false
	}

	c := &call[T]{done: make(chan struct{})}
	g.calls[key] = c
	return c, true
}

func (g *Group[T]) run(key string, c *call[T], fn func() (T, error)) bool {
	func() {
		defer func() {
			if r := recover(); r != nil {
				c.err = fmt.Errorf("singleflight call panicked: %v", r)
			}
		}()
		c.val, c.err = fn()
	}()

	g.mu.Lock()
	delete(g.calls, key)
	shared := c.dups > 0
	g.mu.Unlock()
	close(c.done)

	return shared
}

// InFlight returns the number of keys currently executing.
func (g *Group[T]) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}
