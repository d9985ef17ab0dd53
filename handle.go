package ryu

import (
	"context"
	"sync"
)

// State is the terminal state of a Handle. The zero value is Pending.
type State int32

const (
	Pending State = iota
	Done
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Done:
		return "done"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Failure carries the payload of a Failed Handle: the triggering error plus any
// diagnostic tags attached at the call site (spec §4.A).
type Failure struct {
	Err  error
	Tags []string
}

// Handle is a single-assignment, observable result with four mutually exclusive
// terminal states. It is the rendezvous point every operator uses for "end of
// stream" semantics (spec §4.A). A Handle is created pending and never reverts.
type Handle[V any] struct {
	mu       sync.Mutex
	state    State
	value    V
	failure  Failure
	onReady  []func(*Handle[V])
}

// NewHandle returns a fresh pending Handle.
func NewHandle[V any]() *Handle[V] { return &Handle[V]{} }

// Done transitions the handle pending -> done carrying v. It is a no-op if the
// handle is already terminal.
func (h *Handle[V]) Done(v V) {
	h.settle(func() {
		h.state = Done
		h.value = v
	})
}

// Fail transitions the handle pending -> failed carrying err and tags.
func (h *Handle[V]) Fail(err error, tags ...string) {
	h.settle(func() {
		h.state = Failed
		h.failure = Failure{Err: err, Tags: tags}
	})
}

// Cancel transitions the handle pending -> cancelled.
func (h *Handle[V]) Cancel() {
	h.settle(func() {
		h.state = Cancelled
	})
}

// settle performs the one-way pending->terminal transition and fires every
// registered observer exactly once, in registration order. Observers run
// synchronously on the calling goroutine, matching the single-threaded
// cooperative scheduling model (spec §5): there is no suspension here, only a
// direct call into each callback.
func (h *Handle[V]) settle(apply func()) {
	h.mu.Lock()
	if h.state != Pending {
		h.mu.Unlock()
		return
	}
	apply()
	cbs := h.onReady
	h.onReady = nil
	h.mu.Unlock()

	for _, cb := range cbs {
		cb(h)
	}
}

// OnReady registers cb to run when the handle transitions. If the handle is
// already terminal, cb runs immediately, synchronously, before OnReady returns
// (spec §4.A).
func (h *Handle[V]) OnReady(cb func(*Handle[V])) {
	h.mu.Lock()
	if h.state == Pending {
		h.onReady = append(h.onReady, cb)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	cb(h)
}

// IsReady reports whether the handle has transitioned out of Pending.
func (h *Handle[V]) IsReady() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state != Pending
}

// State returns the current terminal state (or Pending).
func (h *Handle[V]) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Handle[V]) IsDone() bool      { return h.State() == Done }
func (h *Handle[V]) IsFailed() bool    { return h.State() == Failed }
func (h *Handle[V]) IsCancelled() bool { return h.State() == Cancelled }

// Value returns the done value and whether the handle is in the Done state.
func (h *Handle[V]) Value() (V, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var zero V
	if h.state != Done {
		return zero, false
	}
	return h.value, true
}

// Failure returns the failure payload and whether the handle is in the Failed
// state.
func (h *Handle[V]) Failure() (Failure, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != Failed {
		return Failure{}, false
	}
	return h.failure, true
}

// Transform returns a new Handle that, when h transitions to done with value v,
// transitions to done with f(v); failed/cancelled propagate unchanged (spec
// §4.A).
func Transform[V, W any](h *Handle[V], f func(V) W) *Handle[W] {
	out := NewHandle[W]()
	h.OnReady(func(h *Handle[V]) {
		switch h.state {
		case Done:
			out.Done(f(h.value))
		case Failed:
			out.Fail(h.failure.Err, h.failure.Tags...)
		case Cancelled:
			out.Cancel()
		}
	})
	return out
}

// Await blocks the calling goroutine until the handle is ready, then returns
// its done value or its failure/cancellation error. It is the only suspension
// point this package introduces (spec §5).
func (h *Handle[V]) Await(ctx context.Context) (V, error) {
	type result struct {
		v   V
		err error
	}
	resCh := make(chan result, 1)
	h.OnReady(func(h *Handle[V]) {
		switch h.state {
		case Done:
			resCh <- result{v: h.value}
		case Failed:
			resCh <- result{err: h.failure.Err}
		case Cancelled:
			resCh <- result{err: context.Canceled}
		}
	})

	select {
	case r := <-resCh:
		return r.v, r.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
