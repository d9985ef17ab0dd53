package ryu

// Some builds a child that emits true as soon as pred matches any item
// parent emits (and finishes immediately, short-circuiting), or emits false
// and finishes once parent completes Done having never matched (spec §6
// "some").
func Some[T any](parent *Source[T], pred func(T) bool) *Source[bool] {
	child := chain[T, bool](parent, "some")
	eachWhileSource(parent, child, func(v T) {
		if !pred(v) {
			return
		}
		emitThenFinish(child, true)
	})
	onParentDone(parent, child, func() { emitThenFinish(child, false) })
	forwardCompletion(parent, child)
	return child
}

// Every builds a child that emits false as soon as pred fails to match any
// item parent emits (and finishes immediately), or emits true and finishes
// once parent completes Done having matched every item (spec §6 "every").
func Every[T any](parent *Source[T], pred func(T) bool) *Source[bool] {
	child := chain[T, bool](parent, "every")
	eachWhileSource(parent, child, func(v T) {
		if pred(v) {
			return
		}
		emitThenFinish(child, false)
	})
	onParentDone(parent, child, func() { emitThenFinish(child, true) })
	forwardCompletion(parent, child)
	return child
}
