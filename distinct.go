package ryu

import "fmt"

// Distinct builds a child that emits only the first occurrence of each
// distinct value parent emits, comparing by == (spec §6 "distinct").
func Distinct[T comparable](parent *Source[T]) *Source[T] {
	child := chain[T, T](parent, "distinct")
	seen := make(map[T]struct{})
	eachWhileSource(parent, child, func(v T) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		if err := child.Emit(v); err != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}

// DistinctBy builds a child that emits only the first item whose key(item)
// hasn't been seen before, for non-comparable or structured T.
func DistinctBy[T any, K comparable](parent *Source[T], key func(T) K) *Source[T] {
	child := chain[T, T](parent, "distinct_by")
	seen := make(map[K]struct{})
	eachWhileSource(parent, child, func(v T) {
		k := key(v)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		if err := child.Emit(v); err != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}

// DistinctUntilChanged builds a child that emits x iff it's the first item,
// or differs from the immediately preceding item - unlike Distinct, a value
// that recurs after something else was seen in between is emitted again
// (spec §6 "distinct_until_changed", compared via fmt's %v rendering so it
// also covers non-comparable T).
func DistinctUntilChanged[T any](parent *Source[T]) *Source[T] {
	child := chain[T, T](parent, "distinct_until_changed")
	first := true
	var prev string
	eachWhileSource(parent, child, func(v T) {
		cur := fmt.Sprintf("%v", v)
		if !first && cur == prev {
			return
		}
		first = false
		prev = cur
		if err := child.Emit(v); err != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}
