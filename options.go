package ryu

import (
	"github.com/aminmarashi/ryu/codec"
	"github.com/aminmarashi/ryu/metrics"
	"github.com/aminmarashi/ryu/pool"
)

// Option configures an Engine. Use New(opts...) to construct one.
type Option func(*Engine)

// WithCompletionFactory installs a custom constructor for the completion
// handle every Source built from this Engine uses (spec.md §6 "Completion-
// handle factory: a replaceable builder"). Defaults to NewHandle[struct{}].
func WithCompletionFactory(f func() *Handle[struct{}]) Option {
	return func(e *Engine) {
		if f == nil {
			panic(Namespace + ": nil completion factory")
		}
		e.completions = f
	}
}

// WithCodecRegistry installs a custom codec registry instead of the default
// utf8/json/base64 registrations (spec §6 "Codec registry: a replaceable
// builder"). Installing a registry after sources have already been built from
// this Engine has no effect on those sources; see spec §5.
func WithCodecRegistry(r *codec.Registry) Option {
	return func(e *Engine) {
		if r == nil {
			panic(Namespace + ": nil codec registry")
		}
		e.codecs = r
	}
}

// WithLogger installs the Logger used to report item-callback failures
// (spec §4.B: emit logs a warning before failing the source).
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l == nil {
			panic(Namespace + ": nil logger")
		}
		e.logger = l
	}
}

// WithMetrics installs a metrics.Provider used to instrument source lifecycle
// and emission counts. Defaults to metrics.NewNoopProvider().
func WithMetrics(p metrics.Provider) Option {
	return func(e *Engine) {
		if p == nil {
			panic(Namespace + ": nil metrics provider")
		}
		e.metrics = p
	}
}

// WithBufferPool installs a custom pool.Pool used by FromReader to recycle
// 4096-byte chunk buffers between reads. Defaults to a dynamic (sync.Pool-backed)
// pool; see pool.NewDynamic.
func WithBufferPool(p pool.Pool) Option {
	return func(e *Engine) {
		if p == nil {
			panic(Namespace + ": nil buffer pool")
		}
		e.buffers = p
	}
}
