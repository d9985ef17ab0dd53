package pool

import "sync"

// NewDynamic is an unbounded pool backed by sync.Pool: items not currently
// checked out may be garbage-collected under memory pressure.
func NewDynamic(newFn func() interface{}) Pool {
	return &sync.Pool{New: newFn}
}
