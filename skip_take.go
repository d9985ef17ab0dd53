package ryu

// Skip builds a child that drops the first n items parent emits and passes
// the rest through unchanged (spec §6 "skip"). n<0 is treated as 0.
func Skip[T any](parent *Source[T], n int) *Source[T] {
	child := chain[T, T](parent, "skip")
	if n < 0 {
		n = 0
	}
	seen := 0
	eachWhileSource(parent, child, func(v T) {
		if seen < n {
			seen++
			return
		}
		if err := child.Emit(v); err != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}

// SkipLast builds a child that withholds the most recent n items parent
// emits, so each item is only forwarded once n further items have arrived
// behind it; any residue still buffered when parent completes is discarded
// (spec §6 "skip_last").
func SkipLast[T any](parent *Source[T], n int) *Source[T] {
	child := chain[T, T](parent, "skip_last")
	if n <= 0 {
		eachWhileSource(parent, child, func(v T) {
			if err := child.Emit(v); err != nil {
				return
			}
		})
		forwardCompletion(parent, child)
		return child
	}

	buf := make([]T, 0, n+1)
	eachWhileSource(parent, child, func(v T) {
		buf = append(buf, v)
		if len(buf) <= n {
			return
		}
		out := buf[0]
		buf = buf[1:]
		if err := child.Emit(out); err != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}

// Take builds a child that emits at most the first n items parent emits and
// then finishes, cancelling its upstream edge immediately (spec §6 "take").
// take(0) is the one operator whose child starts out already Done, per spec
// §4.C's note that a zero-count terminal can be satisfied without ever
// observing an upstream item.
func Take[T any](parent *Source[T], n int) *Source[T] {
	child := chain[T, T](parent, "take")
	if n <= 0 {
		child.Finish()
		return child
	}

	taken := 0
	eachWhileSource(parent, child, func(v T) {
		if taken >= n {
			return
		}
		taken++
		if err := child.Emit(v); err != nil {
			return
		}
		if taken >= n {
			child.Finish()
		}
	})
	forwardCompletion(parent, child)
	return child
}
