package ryu

// FlatMap builds a child that, for every item parent emits, calls fn to get
// a slice of items and emits each of them in order (spec §6 "flat_map").
func FlatMap[T, U any](parent *Source[T], fn func(T) []U) *Source[U] {
	child := chain[T, U](parent, "flat_map")
	eachWhileSource(parent, child, func(v T) {
		for _, out := range fn(v) {
			if err := child.Emit(out); err != nil {
				return
			}
		}
	})
	forwardCompletion(parent, child)
	return child
}
