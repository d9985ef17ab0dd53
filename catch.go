package ryu

// Catch builds a child that passes through every item parent emits
// unchanged. On a Failed parent, handler is called with the failure's
// error: if it returns a non-nil source, that source's items are spliced
// into the child and the child inherits its completion; if handler returns
// nil, the failure propagates to the child as usual (spec §6 "catch").
func Catch[T any](parent *Source[T], handler func(err error) *Source[T]) *Source[T] {
	child := chain[T, T](parent, "catch")
	eachWhileSource(parent, child, func(v T) {
		if err := child.Emit(v); err != nil {
			return
		}
	})

	parent.Completed().OnReady(func(h *Handle[struct{}]) {
		if child.IsReady() {
			return
		}
		switch h.State() {
		case Done:
			child.Finish()
			return
		case Cancelled:
			child.Cancel()
			return
		}
		f, _ := h.Failure()
		sub := handler(f.Err)
		if sub == nil {
			child.Fail(f.Err, f.Tags...)
			return
		}

		id := sub.addItemCallback(func(v T) {
			if err := child.Emit(v); err != nil {
				return
			}
		})
		sub.registerChild(id)

		prevNotify := child.notifyParent
		child.notifyParent = func() {
			if prevNotify != nil {
				prevNotify()
			}
			sub.removeItemCallback(id)
			sub.childCompleted(id)
		}

		forwardCompletion(sub, child)
		if sub.start != nil {
			sub.start()
		}
	})
	return child
}
