package ryu

import "fmt"

// Empty builds a root source that is already Done and emits nothing (spec
// §5 "empty").
func Empty[T any](e *Engine) *Source[T] {
	s := newSource[T](e, "empty")
	s.Finish()
	return s
}

// Never builds a root source that never completes and never emits (spec §5
// "never"). Useful as a placeholder upstream in tests for operators that
// only care about item flow, not completion.
func Never[T any](e *Engine) *Source[T] {
	return newSource[T](e, "never")
}

// Throw builds a root source that is already Failed with err (spec §5
// "throw").
func Throw[T any](e *Engine, err error) *Source[T] {
	s := newSource[T](e, "throw")
	s.Fail(err)
	return s
}

// Print registers a sink on parent that writes every item to standard
// output via fmt.Println, and returns parent unchanged for further chaining
// (spec §5 "print").
func Print[T any](parent *Source[T]) *Source[T] {
	return parent.Each(func(v T) { fmt.Println(v) })
}

// Say registers a sink on parent that writes every item to standard output
// with the given label prefix, and returns parent unchanged (spec §5
// "say").
func Say[T any](parent *Source[T], label string) *Source[T] {
	return parent.Each(func(v T) { fmt.Printf("%s: %v\n", label, v) })
}

// Then registers onDone to run when parent completes Done, and onFail (if
// non-nil) to run with the failure error when parent completes Failed;
// neither runs when parent is Cancelled. Returns parent unchanged (spec §5
// "then").
func Then[T any](parent *Source[T], onDone func(), onFail func(error)) *Source[T] {
	parent.Completed().OnReady(func(h *Handle[struct{}]) {
		switch h.State() {
		case Done:
			if onDone != nil {
				onDone()
			}
		case Failed:
			if onFail != nil {
				f, _ := h.Failure()
				onFail(f.Err)
			}
		}
	})
	return parent
}

// Else registers onFail to run with the failure error when parent completes
// Failed; returns parent unchanged (spec §5 "else").
func Else[T any](parent *Source[T], onFail func(error)) *Source[T] {
	return Then(parent, nil, onFail)
}
