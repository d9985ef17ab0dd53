package ryu

import (
	"errors"
	"sync"
)

// Merge builds a child that emits every item any of sources emits, in
// whatever order they arrive, and completes once every source has settled:
// Done if all of them finished, Failed with the joined errors of every
// source that failed otherwise (spec §6 "merge"). sources must share an
// Engine.
func Merge[T any](sources ...*Source[T]) *Source[T] {
	child := newSource[T](enginesOf(sources), "merge")
	child.start = func() {
		for _, p := range sources {
			if p.start != nil {
				p.start()
			}
		}
	}
	for _, p := range sources {
		p := p
		eachWhileSource(p, child, func(v T) {
			if err := child.Emit(v); err != nil {
				return
			}
		})
	}
	trackCompletions(sources, child)
	return child
}

// trackCompletions is the "wrap and count completions" idiom: settle child
// once every parent has settled, joining any failures (merge and apply
// complete this way; combine_latest and with_latest_from do not).
func trackCompletions[T, U any](parents []*Source[T], child *Source[U]) {
	var mu sync.Mutex
	remaining := len(parents)
	var errs []error
	anyCancelled := false

	for _, p := range parents {
		p.Completed().OnReady(func(h *Handle[struct{}]) {
			mu.Lock()
			remaining--
			switch h.State() {
			case Failed:
				f, _ := h.Failure()
				errs = append(errs, f.Err)
			case Cancelled:
				anyCancelled = true
			}
			done := remaining == 0
			mu.Unlock()

			if !done || child.IsReady() {
				return
			}
			switch {
			case len(errs) > 0:
				child.Fail(errors.Join(errs...))
			case anyCancelled:
				child.Cancel()
			default:
				child.Finish()
			}
		})
	}
}

func enginesOf[T any](sources []*Source[T]) *Engine {
	for _, s := range sources {
		if s.engine != nil {
			return s.engine
		}
	}
	return nil
}

// latestValue is a small monitor for the "most recent item" each source in
// combine_latest/with_latest_from tracks.
type latestValue[T any] struct {
	mu  sync.Mutex
	v   T
	has bool
}

func (l *latestValue[T]) set(v T) {
	l.mu.Lock()
	l.v, l.has = v, true
	l.mu.Unlock()
}

func (l *latestValue[T]) get() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v, l.has
}

// Combined2 is the tuple CombineLatest2 emits: the most recent value of each
// upstream at the time either one produced a new item.
type Combined2[A, B any] struct {
	A A
	B B
}

// CombineLatest2 builds a child that emits a Combined2 every time a or b
// emits, once both have emitted at least once (spec §6 "combine_latest"
// awaiting_all_seen -> saturated state machine). It completes the instant
// either upstream settles, adopting that upstream's terminal state.
func CombineLatest2[A, B any](a *Source[A], b *Source[B]) *Source[Combined2[A, B]] {
	child := newSource[Combined2[A, B]](a.engine, "combine_latest")
	child.start = func() {
		if a.start != nil {
			a.start()
		}
		if b.start != nil {
			b.start()
		}
	}
	var latestA latestValue[A]
	var latestB latestValue[B]

	emitIfSaturated := func() {
		va, okA := latestA.get()
		vb, okB := latestB.get()
		if !okA || !okB {
			return
		}
		if err := child.Emit(Combined2[A, B]{A: va, B: vb}); err != nil {
			return
		}
	}

	idA := a.addItemCallback(func(v A) { latestA.set(v); emitIfSaturated() })
	a.registerChild(idA)
	idB := b.addItemCallback(func(v B) { latestB.set(v); emitIfSaturated() })
	b.registerChild(idB)

	child.notifyParent = func() {
		a.removeItemCallback(idA)
		a.childCompleted(idA)
		b.removeItemCallback(idB)
		b.childCompleted(idB)
	}

	settleFromFirst := func(h *Handle[struct{}]) {
		if child.IsReady() {
			return
		}
		switch h.State() {
		case Done:
			child.Finish()
		case Failed:
			f, _ := h.Failure()
			child.Fail(f.Err, f.Tags...)
		case Cancelled:
			child.Cancel()
		}
	}
	a.Completed().OnReady(settleFromFirst)
	b.Completed().OnReady(settleFromFirst)
	return child
}

// WithLatestFrom builds a child that emits a Combined2 every time main
// emits, paired with the most recent value other has produced so far (or
// never, if other hasn't emitted yet - such ticks are dropped). It completes
// when main completes (spec §6 "with_latest_from"); other is sampled, not
// awaited.
func WithLatestFrom[A, B any](main *Source[A], other *Source[B]) *Source[Combined2[A, B]] {
	child := chain[A, Combined2[A, B]](main, "with_latest_from")
	mainStart := child.start
	child.start = func() {
		if mainStart != nil {
			mainStart()
		}
		if other.start != nil {
			other.start()
		}
	}
	var latestB latestValue[B]

	otherID := other.addItemCallback(func(v B) { latestB.set(v) })
	other.registerChild(otherID)

	eachWhileSource(main, child, func(v A) {
		vb, ok := latestB.get()
		if !ok {
			return
		}
		if err := child.Emit(Combined2[A, B]{A: v, B: vb}); err != nil {
			return
		}
	})

	parentNotify := child.notifyParent
	child.notifyParent = func() {
		other.removeItemCallback(otherID)
		other.childCompleted(otherID)
		if parentNotify != nil {
			parentNotify()
		}
	}

	forwardCompletion(main, child)
	return child
}
