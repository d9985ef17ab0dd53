package ryu

import "sort"

// SortBy builds a child that buffers every item parent emits and, once
// parent completes Done, emits them all in ascending order of less(a, b)
// (spec §6 "sort_by"). Sorting is necessarily a barrier: nothing is emitted
// until parent finishes.
func SortBy[T any](parent *Source[T], less func(a, b T) bool) *Source[T] {
	return sortCollected(parent, "sort_by", less)
}

// RevSortBy is SortBy with the ordering reversed.
func RevSortBy[T any](parent *Source[T], less func(a, b T) bool) *Source[T] {
	return sortCollected(parent, "rev_sort_by", func(a, b T) bool { return less(b, a) })
}

// NSortBy builds a child that buffers every item and, once parent completes
// Done, emits them in ascending order of key(item) (spec §6 "nsort_by").
func NSortBy[T any, K ordered](parent *Source[T], key func(T) K) *Source[T] {
	return sortCollected(parent, "nsort_by", func(a, b T) bool { return key(a) < key(b) })
}

// RevNSortBy is NSortBy with the ordering reversed.
func RevNSortBy[T any, K ordered](parent *Source[T], key func(T) K) *Source[T] {
	return sortCollected(parent, "rev_nsort_by", func(a, b T) bool { return key(a) > key(b) })
}

type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

func sortCollected[T any](parent *Source[T], label string, less func(a, b T) bool) *Source[T] {
	child := chain[T, T](parent, label)
	var buf []T

	eachWhileSource(parent, child, func(v T) {
		buf = append(buf, v)
	})

	parent.Completed().OnReady(func(h *Handle[struct{}]) {
		if child.IsReady() || h.State() != Done {
			return
		}
		sort.SliceStable(buf, func(i, j int) bool { return less(buf[i], buf[j]) })
		for _, v := range buf {
			if err := child.Emit(v); err != nil {
				return
			}
		}
		child.Finish()
	})
	forwardCompletion(parent, child)
	return child
}
