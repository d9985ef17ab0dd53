package ryu

import "sync"

// Apply builds a child that passes every item of parent through unchanged,
// while also calling each of factories once with parent itself to obtain a
// tracked sub-source; D completes once parent and every tracked sub-source
// have completed (spec §6 "apply").
func Apply[T, X any](parent *Source[T], factories ...func(*Source[T]) *Source[X]) *Source[T] {
	child := chain[T, T](parent, "apply")
	eachWhileSource(parent, child, func(v T) {
		if err := child.Emit(v); err != nil {
			return
		}
	})

	tracked := make([]*Source[X], 0, len(factories))
	for _, f := range factories {
		tracked = append(tracked, f(parent))
	}

	onParentDone(parent, child, func() {
		if len(tracked) == 0 {
			child.Finish()
			return
		}
		trackCompletions(tracked, child)
	})
	forwardFailure(parent, child)
	return child
}

// EachAsSource builds a child that passes every item of parent through
// unchanged, while also calling each of factories with that item to obtain
// a tracked sub-source; D finishes once parent has completed and every
// tracked sub-source (including ones spawned after parent completed) has
// settled (spec §6 "each_as_source").
func EachAsSource[T, X any](parent *Source[T], factories ...func(T) *Source[X]) *Source[T] {
	child := chain[T, T](parent, "each_as_source")

	var mu sync.Mutex
	var tracked []*Source[X]
	parentDone := false

	checkDone := func() {
		if !parentDone || child.IsReady() {
			return
		}
		allSettled := true
		for _, s := range tracked {
			if !s.IsReady() {
				allSettled = false
				break
			}
		}
		if allSettled {
			child.Finish()
		}
	}

	eachWhileSource(parent, child, func(v T) {
		if err := child.Emit(v); err != nil {
			return
		}
		for _, f := range factories {
			s := f(v)
			mu.Lock()
			tracked = append(tracked, s)
			mu.Unlock()
			s.Completed().OnReady(func(*Handle[struct{}]) {
				mu.Lock()
				defer mu.Unlock()
				checkDone()
			})
		}
	})

	onParentDone(parent, child, func() {
		mu.Lock()
		parentDone = true
		checkDone()
		mu.Unlock()
	})
	forwardFailure(parent, child)
	return child
}
