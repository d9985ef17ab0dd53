package ryu

import "strings"

// AsList builds a child that emits a single []T containing every item
// parent emitted, in order, once parent completes Done (spec §6 "as_list").
func AsList[T any](parent *Source[T]) *Source[[]T] {
	child := chain[T, []T](parent, "as_list")
	var buf []T
	eachWhileSource(parent, child, func(v T) { buf = append(buf, v) })
	onParentDone(parent, child, func() { emitThenFinish(child, buf) })
	forwardCompletion(parent, child)
	return child
}

// AsString builds a child that emits the concatenation of every string
// parent emitted, once parent completes Done (spec §6 "as_string").
func AsString(parent *Source[string]) *Source[string] {
	child := chain[string, string](parent, "as_string")
	var buf strings.Builder
	eachWhileSource(parent, child, func(v string) { buf.WriteString(v) })
	onParentDone(parent, child, func() { emitThenFinish(child, buf.String()) })
	forwardCompletion(parent, child)
	return child
}
