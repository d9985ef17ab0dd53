package ryu

// SwitchStr builds a child that, for every item parent emits, resolves
// key(item) against branches and emits branches[key](item); when key(item)
// isn't in branches, emits def(item) if provided, or silently drops the
// item otherwise (spec §6 "switch_str"). A dropped item is not reported:
// ErrNoSuchKey names the case but is never returned or used to fail the
// child.
func SwitchStr[T, U any](parent *Source[T], key func(T) string, branches map[string]func(T) U, def func(T) U) *Source[U] {
	child := chain[T, U](parent, "switch_str")
	eachWhileSource(parent, child, func(v T) {
		k := key(v)
		fn, ok := branches[k]
		if !ok {
			if def == nil {
				return
			}
			fn = def
		}
		if err := child.Emit(fn(v)); err != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}
