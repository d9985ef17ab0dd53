package ryu

// chain constructs a new child source downstream of parent, wiring only the
// describe-chain, engine inheritance, and the root's start trigger (spec
// §4.B "describe"). Callers then
// use eachWhileSource and/or forwardCompletion to wire item flow and
// completion propagation, per the operator's entry in the operator table.
func chain[T, U any](parent *Source[T], label string) *Source[U] {
	child := newSource[U](parent.engine, label)
	child.parentDescribe = parent.Describe
	child.start = parent.start
	return child
}

// eachWhileSource is the canonical "wire an operator" primitive (spec §4.C):
// it registers cb on parent's item-callback list, records the edge on
// parent.children (by id, type-erased), and arranges for child's completion
// to retire that edge - removing cb from parent.onItem and, if parent has no
// remaining children and isn't itself ready, cancelling parent.
func eachWhileSource[T, U any](parent *Source[T], child *Source[U], cb func(T)) {
	id := parent.addItemCallback(cb)
	parent.registerChild(id)
	child.notifyParent = func() {
		parent.removeItemCallback(id)
		parent.childCompleted(id)
	}
}

// forwardCompletion propagates parent's completion (Done/Failed/Cancelled) to
// child once parent settles, unless child is already ready by then (spec
// §4.C rule 3: "forward via on_ready of upstream completion"). This is
// independent of eachWhileSource's edge bookkeeping - nearly every operator
// wires both.
func forwardCompletion[T, U any](parent *Source[T], child *Source[U]) {
	parent.Completed().OnReady(func(h *Handle[struct{}]) {
		if child.IsReady() {
			return
		}
		switch h.State() {
		case Done:
			child.Finish()
		case Failed:
			f, _ := h.Failure()
			child.Fail(f.Err, f.Tags...)
		case Cancelled:
			child.Cancel()
		}
	})
}

// forwardFailure is forwardCompletion restricted to the Failed/Cancelled
// cases, for operators (ordered_futures, apply, each_as_source) whose own
// completion logic already decides when a Done parent finishes the child -
// such an operator must not
// also let forwardCompletion race it to Finish on Done, but still needs
// upstream failure/cancellation to propagate immediately.
func forwardFailure[T, U any](parent *Source[T], child *Source[U]) {
	parent.Completed().OnReady(func(h *Handle[struct{}]) {
		if child.IsReady() {
			return
		}
		switch h.State() {
		case Failed:
			f, _ := h.Failure()
			child.Fail(f.Err, f.Tags...)
		case Cancelled:
			child.Cancel()
		}
	})
}
