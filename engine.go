package ryu

import (
	"github.com/aminmarashi/ryu/codec"
	"github.com/aminmarashi/ryu/metrics"
	"github.com/aminmarashi/ryu/pool"
)

// Engine owns the process-wide, read-mostly state a chain of sources is built
// from: the codec registry, the logging sink, and the metrics provider (spec
// §5, "Shared resources: codec registries and the completion-handle factory
// are process-wide read-mostly... installation is not synchronized and must
// happen before any source is constructed"). An Engine is built once via New
// and treated as immutable afterward; construct it before building any Source.
//
// A zero-value Engine is not ready for use — call New() or Default().
type Engine struct {
	codecs      *codec.Registry
	logger      Logger
	metrics     metrics.Provider
	buffers     pool.Pool                // recycles []byte chunk buffers for FromReader
	completions func() *Handle[struct{}] // builds the completion handle every Source uses
}

// New builds an Engine from functional options. Unset fields default to a
// no-op logger, a no-op metrics provider, the default codec registry
// (utf8/json/base64 pre-registered), and NewHandle[struct{}] as the
// completion-handle factory.
func New(opts ...Option) *Engine {
	e := &Engine{
		codecs:      codec.Default(),
		logger:      NoopLogger{},
		metrics:     metrics.NewNoopProvider(),
		completions: NewHandle[struct{}],
	}
	for _, opt := range opts {
		if opt == nil {
			panic(Namespace + ": nil engine option")
		}
		opt(e)
	}
	if e.buffers == nil {
		e.buffers = pool.NewDynamic(func() interface{} { return make([]byte, defaultReadChunkSize) })
	}
	return e
}

var defaultEngine = New()

// Default returns a package-level Engine built once by New() with no options.
func Default() *Engine { return defaultEngine }
