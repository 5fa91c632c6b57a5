// Package search implements the debounced type-ahead used by the storefront
// navbar and the admin item lookup: keystrokes within the delay window
// coalesce into a single remote query, and only the newest query's result
// ever reaches the caller.
package search

import (
	"context"
	"sync"
	"time"
)

// Outcome is what a Submit waiter eventually receives. Exactly one Outcome
// is delivered per Submit: either the query result, or Superseded when a
// newer keystroke replaced the query before (or while) it ran.
type Outcome[T any] struct {
	Value      T
	Err        error
	Superseded bool
}

type Debouncer[T any] struct {
	mu     sync.Mutex
	delay  time.Duration
	minLen int
	run    func(ctx context.Context, q string) (T, error)
	gen    uint64
	timer  *time.Timer
	waiter chan Outcome[T]
}

func New[T any](delay time.Duration, minLen int, run func(ctx context.Context, q string) (T, error)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, minLen: minLen, run: run}
}

// Submit registers a keystroke's query. Any pending or in-flight older query
// is superseded: its waiter is released with Superseded set and its eventual
// result, if already running, is discarded. Queries shorter than the minimum
// length resolve immediately to an empty value without a remote call.
func (d *Debouncer[T]) Submit(ctx context.Context, q string) <-chan Outcome[T] {
	ch := make(chan Outcome[T], 1)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.waiter != nil {
		d.waiter <- Outcome[T]{Superseded: true}
		d.waiter = nil
	}

	if len([]rune(q)) < d.minLen {
		var zero T
		ch <- Outcome[T]{Value: zero}
		return ch
	}

	d.waiter = ch
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()

		v, err := d.run(ctx, q)

		d.mu.Lock()
		if gen != d.gen {
			// A newer keystroke won while we were in flight; its Submit
			// already released our waiter as superseded.
			d.mu.Unlock()
			return
		}
		d.waiter = nil
		d.mu.Unlock()
		ch <- Outcome[T]{Value: v, Err: err}
	})
	return ch
}

// Registry hands out one Debouncer per browser session so concurrent
// visitors do not cancel each other's searches.
type Registry[T any] struct {
	mu     sync.Mutex
	delay  time.Duration
	minLen int
	run    func(ctx context.Context, q string) (T, error)
	bySID  map[string]*Debouncer[T]
}

func NewRegistry[T any](delay time.Duration, minLen int, run func(ctx context.Context, q string) (T, error)) *Registry[T] {
	return &Registry[T]{delay: delay, minLen: minLen, run: run, bySID: make(map[string]*Debouncer[T])}
}

func (r *Registry[T]) For(sid string) *Debouncer[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.bySID[sid]
	if !ok {
		d = New(r.delay, r.minLen, r.run)
		r.bySID[sid] = d
	}
	return d
}
