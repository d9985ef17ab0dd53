package ryu

// Map builds a child that emits fn(v) for every v parent emits (spec §6
// "map"). fn runs inside parent's item callback, so if fn panics the panic
// is caught by parent's Emit, which fails parent; the failure then reaches
// the child through forwardCompletion.
func Map[T, U any](parent *Source[T], fn func(T) U) *Source[U] {
	child := chain[T, U](parent, "map")
	eachWhileSource(parent, child, func(v T) {
		if err := child.Emit(fn(v)); err != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}
