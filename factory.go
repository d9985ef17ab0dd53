package ryu

import (
	"context"
	"io"
	"sync"
)

// Go methods can't carry their own type parameters, so the generic factories
// take the *Engine they're attached to as their first argument rather than
// being methods on Engine. FromReader needs no such parameter since it's
// pinned to []byte.

// FromSlice builds a root source that, once started by a Get/Await
// anywhere downstream, emits every item of items in order and then
// finishes (spec §4.F).
func FromSlice[T any](e *Engine, items []T) *Source[T] {
	root := newSource[T](e, "from_slice")
	root.start = sync.OnceFunc(func() {
		for _, v := range items {
			if err := root.Emit(v); err != nil {
				return
			}
		}
		root.Finish()
	})
	return root
}

// FromHandle builds a root source that, once started, waits for h to settle
// and then emits its value (Done), fails, or cancels to match (spec §4.F).
func FromHandle[V any](e *Engine, h *Handle[V]) *Source[V] {
	root := newSource[V](e, "from_handle")
	root.start = sync.OnceFunc(func() {
		h.OnReady(func(h *Handle[V]) {
			switch h.State() {
			case Done:
				v, _ := h.Value()
				if err := root.Emit(v); err != nil {
					return
				}
				root.Finish()
			case Failed:
				f, _ := h.Failure()
				root.Fail(f.Err, f.Tags...)
			case Cancelled:
				root.Cancel()
			}
		})
	})
	return root
}

// FromReader builds a root source that, once started, reads r in
// fixed-size chunks via the engine's buffer pool and emits each chunk as a
// []byte, finishing on io.EOF and failing on any other read error (spec
// §4.E). The read loop runs on a detached goroutine, since a blocking
// io.Reader can't otherwise be driven from a pull.
func FromReader(e *Engine, r io.Reader) *Source[[]byte] {
	root := newSource[[]byte](e, "from_reader")

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	teardown := newReaderTeardown(cancel, &wg)
	pump := newReaderPump(root, r, e.buffers)

	root.start = sync.OnceFunc(func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pump.run(ctx)
		}()
	})

	root.Completed().OnReady(func(*Handle[struct{}]) {
		go teardown.Close()
	})

	return root
}

// anyHandle lets From recognize a *Handle[V] for an erased V: Go generics
// give From no way to type-switch on "*Handle[V] for some V", so Handle
// exposes this one unexported method to let From observe its settlement
// without knowing V.
type anyHandle interface {
	onReadyAny(func(state State, value any, failure Failure))
}

func (h *Handle[V]) onReadyAny(cb func(state State, value any, failure Failure)) {
	h.OnReady(func(h *Handle[V]) {
		switch h.State() {
		case Done:
			v, _ := h.Value()
			cb(Done, v, Failure{})
		case Failed:
			f, _ := h.Failure()
			cb(Failed, nil, f)
		case Cancelled:
			cb(Cancelled, nil, Failure{})
		}
	})
}

// From dynamically dispatches on the concrete type of v (spec §4.F "From",
// spec.md §9 "FromInput tagged variant"): []any becomes FromSlice, io.Reader
// becomes FromReader, *Handle[V] becomes FromHandle. Any other shape returns
// ErrUnsupportedInput, including slices whose element type is not any.
func From(e *Engine, v any) (*Source[any], error) {
	switch t := v.(type) {
	case []any:
		return FromSlice(e, t), nil
	case io.Reader:
		bytes := FromReader(e, t)
		out := chain[[]byte, any](bytes, "as_any")
		eachWhileSource(bytes, out, func(chunk []byte) {
			if err := out.Emit(any(chunk)); err != nil {
				return
			}
		})
		forwardCompletion(bytes, out)
		return out, nil
	case anyHandle:
		root := newSource[any](e, "from_handle")
		root.start = sync.OnceFunc(func() {
			t.onReadyAny(func(state State, value any, failure Failure) {
				switch state {
				case Done:
					if err := root.Emit(value); err != nil {
						return
					}
					root.Finish()
				case Failed:
					root.Fail(failure.Err, failure.Tags...)
				case Cancelled:
					root.Cancel()
				}
			})
		})
		return root, nil
	default:
		return nil, ErrUnsupportedInput
	}
}
