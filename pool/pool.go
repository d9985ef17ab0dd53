// Package pool provides a pluggable recycling pool, used by the engine to
// reuse the byte buffers a reader-backed source reads chunks into.
package pool

// Pool is an interface over a recyclable pool of values.
type Pool interface {
	// Get returns a value from the pool, allocating a new one if empty.
	Get() interface{}

	// Put returns a value back to the pool for reuse.
	Put(interface{})
}
