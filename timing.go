package ryu

import "time"

// Debounce is deferred to a future extension package: the engine's
// scheduling model is synchronous and single-threaded (spec §9), and a true
// debounce needs a real timer wheel driving Emit from outside any caller's
// stack. Returns ErrNotImplemented immediately rather than silently
// behaving like an identity operator.
func Debounce[T any](parent *Source[T], _ time.Duration) (*Source[T], error) {
	return nil, ErrNotImplemented
}

// Interval is deferred for the same reason as Debounce: it has no upstream
// to chain from and needs a timer-driven root, which isn't part of this
// engine's synchronous emission model yet.
func Interval(_ time.Duration) (*Source[time.Time], error) {
	return nil, ErrNotImplemented
}
