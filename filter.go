package ryu

// Filter builds a child that emits only the items of parent for which pred
// returns true (spec §6 "filter").
func Filter[T any](parent *Source[T], pred func(T) bool) *Source[T] {
	child := chain[T, T](parent, "filter")
	eachWhileSource(parent, child, func(v T) {
		if !pred(v) {
			return
		}
		if err := child.Emit(v); err != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}
