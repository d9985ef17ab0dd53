package ryu

import "context"

// Get starts the chain (if not already started) and blocks until this
// source completes, returning every item it emitted to an Each callback
// registered internally for exactly this purpose (spec §4.F "the blocking
// bridge"). On Failed it returns the failure error; on Cancelled it returns
// context.Canceled if ctx wasn't itself the cause, else ctx.Err().
func (s *Source[T]) Get(ctx context.Context) ([]T, error) {
	var items []T
	s.Each(func(v T) { items = append(items, v) })

	if err := s.Await(ctx); err != nil {
		return items, err
	}
	return items, nil
}

// Await starts the chain (if not already started) and blocks until this
// source reaches a terminal state, returning nil on Done, the failure error
// on Failed, context.Canceled on Cancelled, and ctx.Err() if ctx itself
// expires first.
func (s *Source[T]) Await(ctx context.Context) error {
	if s.start != nil {
		s.start()
	}

	type result struct{ err error }
	resCh := make(chan result, 1)
	s.Completed().OnReady(func(h *Handle[struct{}]) {
		switch h.State() {
		case Done:
			resCh <- result{}
		case Failed:
			f, _ := h.Failure()
			resCh <- result{err: f.Err}
		case Cancelled:
			resCh <- result{err: context.Canceled}
		}
	})

	select {
	case r := <-resCh:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
