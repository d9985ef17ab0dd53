// Package ryu implements a reactive source-chain engine: pipelines of push-based
// event streams ("sources") composed by chaining operators. Each source emits an
// ordered sequence of items and terminates exactly once, in one of three terminal
// states: done, failed, or cancelled.
//
// Construction
//   - New(opts ...Option) *Engine builds an immutable engine that owns the
//     process-wide, read-mostly state (the completion-handle factory and the codec
//     registry). A zero-value Engine is not usable; call New() or Default().
//   - FromSlice, FromReader, FromHandle, and From, each taking the *Engine as its
//     first argument, are the root-source factory entry points.
//
// Chaining
// Every operator takes an upstream *Source[T] and returns a downstream *Source[U]
// that observes the upstream via a per-stage item callback and propagates terminal
// state. Chaining never blocks: all operator wiring happens synchronously at call
// time, and all item delivery happens synchronously on whichever goroutine calls
// Emit. The only suspension point in the whole engine is Get/Await.
//
// Completion
// Completion flows down the chain (upstream terminal causes downstream terminal).
// Child cancellation bubbles up only through the parent/child bookkeeping: when a
// parent's last child completes and the parent itself is not yet ready, the parent
// is cancelled. See Handle and Source for the full contract.
//
// Scheduling
// This engine has no internal concurrency. Parallelism, if any, is introduced only
// by factory sources backed by asynchronous I/O (FromReader, FromHandle); those
// sources serialize their own callbacks into a single Emit per delivered item, so
// the cooperative single-threaded model holds from the first Emit onward.
package ryu
