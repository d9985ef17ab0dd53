package ryu

import "sync"

type orderedFuture[U any] struct {
	ready bool
	value U
}

// OrderedFutures builds a child that, for every item v parent emits, calls
// fn(v) to obtain a *Handle[U] and emits each future's value as soon as that
// future settles Done, so values come out in completion order, not in the
// order v arrived in (spec §6 "ordered_futures"). Outstanding futures are
// kept in a queue only so that the child finishes once parent is Done and
// every queued future has been emitted. Any future's failure (or
// cancellation) fails the whole child immediately.
func OrderedFutures[T, U any](parent *Source[T], fn func(T) *Handle[U]) *Source[U] {
	child := chain[T, U](parent, "ordered_futures")

	var mu sync.Mutex
	var queue []*orderedFuture[U]
	parentDone := false

	drainLocked := func() {
		for {
			i := 0
			for i < len(queue) && !queue[i].ready {
				i++
			}
			if i == len(queue) {
				break
			}
			f := queue[i]
			queue = append(queue[:i:i], queue[i+1:]...)
			mu.Unlock()
			err := child.Emit(f.value)
			mu.Lock()
			if err != nil {
				return
			}
		}
		if parentDone && len(queue) == 0 && !child.IsReady() {
			mu.Unlock()
			child.Finish()
			mu.Lock()
		}
	}

	eachWhileSource(parent, child, func(v T) {
		f := &orderedFuture[U]{}
		mu.Lock()
		queue = append(queue, f)
		mu.Unlock()

		h := fn(v)
		h.OnReady(func(h *Handle[U]) {
			switch h.State() {
			case Done:
				val, _ := h.Value()
				mu.Lock()
				f.value, f.ready = val, true
				drainLocked()
				mu.Unlock()
			case Failed:
				ff, _ := h.Failure()
				child.Fail(ff.Err, ff.Tags...)
			case Cancelled:
				child.Cancel()
			}
		})
	})

	onParentDone(parent, child, func() {
		mu.Lock()
		parentDone = true
		drainLocked()
		mu.Unlock()
	})
	// Only Failed/Cancelled forward automatically: a Done parent's child-Finish
	// decision belongs to drainLocked above, which must wait for any future
	// still outstanding in the queue rather than finish the instant parent does.
	forwardFailure(parent, child)
	return child
}
