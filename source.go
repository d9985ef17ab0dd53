package ryu

import (
	"sync"

	"github.com/aminmarashi/ryu/metrics"
)

// itemCallback is one registered observer of a source's emissions, keyed by an
// id so it can be spliced out by identity when its owning child completes
// (spec §4.C: "the edge's item-callback is extracted from the parent's on_item
// by identity").
type itemCallback[T any] struct {
	id int
	fn func(T)
}

// Source is a push endpoint holding item-callbacks, a completion handle, a
// (conventionally weak) parent link, and a strong forward ownership list of
// children (spec §3). T is the type of item this source emits.
//
// The zero value is not usable; construct a Source via an Engine factory
// (FromSlice, FromReader, FromHandle, From) or via an operator called on an
// existing *Source.
type Source[T any] struct {
	mu sync.Mutex

	label  string
	engine *Engine

	onItem []itemCallback[T]
	nextID int

	// children tracks the edge ids of sources chained off this one, so that
	// "parent cancelled once its last child completes and it isn't ready
	// itself" (spec §4.C rule 2) can be evaluated without knowing the
	// concrete downstream item type.
	children map[int]struct{}

	// parentDescribe, when non-nil, is the upstream's Describe method,
	// captured at chain time (spec §4.B describe: "parent.describe + '=>' + ...").
	parentDescribe func() string

	// notifyParent, when non-nil, is called exactly once when this source's
	// completion transitions, informing the parent which edge to retire.
	notifyParent func()

	completed *Handle[struct{}]

	// start triggers the root of this chain to begin emitting, exactly once.
	// A factory installs it on the root (spec §3, §4.F: "a source is cold -
	// nothing flows until something pulls on the chain"); chain() propagates
	// the same func down to every descendant so that Get/Await, called on any
	// source in the chain, can kick the whole pipeline off.
	start func()

	paused bool
}

func newSource[T any](e *Engine, label string) *Source[T] {
	if label == "" {
		label = "unknown"
	}
	s := &Source[T]{
		label:    label,
		engine:   e,
		children: make(map[int]struct{}),
	}
	if e != nil && e.completions != nil {
		s.completed = e.completions()
	} else {
		s.completed = NewHandle[struct{}]()
	}
	s.completed.OnReady(func(*Handle[struct{}]) {
		s.mu.Lock()
		s.onItem = nil
		notify := s.notifyParent
		s.mu.Unlock()

		if e != nil {
			e.metrics.UpDownCounter(metricSourcesActive).Add(-1)
		}
		if notify != nil {
			notify()
		}
	})
	if e != nil {
		e.metrics.UpDownCounter(metricSourcesActive).Add(1)
	}
	return s
}

const (
	metricSourcesActive  = "sources.active"
	metricItemsEmitted   = "items.emitted"
	metricOperatorWallMS = "operator.duration_seconds"
)

// Label returns the source's label ("unknown" if never set).
func (s *Source[T]) Label() string { return s.label }

// Completed returns the source's completion handle.
func (s *Source[T]) Completed() *Handle[struct{}] { return s.completed }

// Describe returns "parent.Describe()=>label(state)", or "label(state)" for a
// root (spec §4.B, §6 "Observable state").
func (s *Source[T]) Describe() string {
	state := s.completed.State().String()
	if s.parentDescribe != nil {
		return s.parentDescribe() + "=>" + s.label + "(" + state + ")"
	}
	return s.label + "(" + state + ")"
}

// Finish transitions the source's completion to done.
func (s *Source[T]) Finish() { s.completed.Done(struct{}{}) }

// Fail transitions the source's completion to failed.
func (s *Source[T]) Fail(err error, tags ...string) { s.completed.Fail(err, tags...) }

// Cancel transitions the source's completion to cancelled.
func (s *Source[T]) Cancel() { s.completed.Cancel() }

// IsReady, IsDone, IsFailed, IsCancelled query the completion handle.
func (s *Source[T]) IsReady() bool     { return s.completed.IsReady() }
func (s *Source[T]) IsDone() bool      { return s.completed.IsDone() }
func (s *Source[T]) IsFailed() bool    { return s.completed.IsFailed() }
func (s *Source[T]) IsCancelled() bool { return s.completed.IsCancelled() }

// Failure returns the failure payload, if any.
func (s *Source[T]) Failure() (Failure, bool) { return s.completed.Failure() }

// OnReady registers cb on the completion handle; see Handle.OnReady.
func (s *Source[T]) OnReady(cb func(*Handle[struct{}])) { s.completed.OnReady(cb) }

// Pause/Resume/IsPaused expose the advisory, non-enforcing flag from spec §3/§9.
// Emit never consults it.
func (s *Source[T]) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

func (s *Source[T]) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

func (s *Source[T]) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Each appends cb to this source's own item-callback list and returns self,
// for wiring a terminal sink without creating a new chained Source (spec §4.B).
func (s *Source[T]) Each(cb func(T)) *Source[T] {
	s.addItemCallback(cb)
	return s
}

func (s *Source[T]) addItemCallback(fn func(T)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.onItem = append(s.onItem, itemCallback[T]{id: id, fn: fn})
	return id
}

func (s *Source[T]) removeItemCallback(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cb := range s.onItem {
		if cb.id == id {
			s.onItem = append(s.onItem[:i:i], s.onItem[i+1:]...)
			return
		}
	}
}

func (s *Source[T]) snapshotCallbacks() []itemCallback[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]itemCallback[T], len(s.onItem))
	copy(out, s.onItem)
	return out
}

func (s *Source[T]) registerChild(edgeID int) {
	s.mu.Lock()
	s.children[edgeID] = struct{}{}
	s.mu.Unlock()
}

// childCompleted implements spec §4.C rule 2: remove the child, and if no
// children remain and this source is not itself ready, cancel it.
func (s *Source[T]) childCompleted(edgeID int) {
	s.mu.Lock()
	delete(s.children, edgeID)
	empty := len(s.children) == 0
	s.mu.Unlock()

	if s.completed.IsReady() {
		return
	}
	if empty {
		s.Cancel()
	}
}

// metricsProvider returns the engine's metrics provider, or a no-op if this
// source has no engine (should not normally happen outside tests).
func (s *Source[T]) metricsProvider() metrics.Provider {
	if s.engine == nil {
		return metrics.NewNoopProvider()
	}
	return s.engine.metrics
}

func (s *Source[T]) logger() Logger {
	if s.engine == nil {
		return NoopLogger{}
	}
	return s.engine.logger
}
