package ryu

import "math"

// Count builds a child that emits the number of items parent emitted, once
// parent completes Done (spec §6 "count").
func Count[T any](parent *Source[T]) *Source[int] {
	child := chain[T, int](parent, "count")
	n := 0
	eachWhileSource(parent, child, func(T) { n++ })
	onParentDone(parent, child, func() { emitThenFinish(child, n) })
	forwardCompletion(parent, child)
	return child
}

// Sum builds a child that emits the sum of every numeric value() of the
// items parent emitted, once parent completes Done (spec §6 "sum").
func Sum[T any, N ordered](parent *Source[T], value func(T) N) *Source[N] {
	child := chain[T, N](parent, "sum")
	var total N
	eachWhileSource(parent, child, func(v T) { total += value(v) })
	onParentDone(parent, child, func() { emitThenFinish(child, total) })
	forwardCompletion(parent, child)
	return child
}

// Mean builds a child that emits the arithmetic mean of every numeric
// value() of the items parent emitted, once parent completes Done (spec §6
// "mean": divides by max(count, 1), so an empty stream emits 0 rather than
// nothing).
func Mean[T any, N numeric](parent *Source[T], value func(T) N) *Source[float64] {
	child := chain[T, float64](parent, "mean")
	var total float64
	count := 0
	eachWhileSource(parent, child, func(v T) {
		total += float64(value(v))
		count++
	})
	onParentDone(parent, child, func() {
		denom := count
		if denom < 1 {
			denom = 1
		}
		emitThenFinish(child, total/float64(denom))
	})
	forwardCompletion(parent, child)
	return child
}

// Min builds a child that emits the smallest value() seen, once parent
// completes Done (spec §6 "min"). Finishes without emitting if parent
// emitted nothing.
func Min[T any, N ordered](parent *Source[T], value func(T) N) *Source[N] {
	return extremum(parent, "min", value, func(cur, v N) bool { return v < cur })
}

// Max builds a child that emits the largest value() seen, once parent
// completes Done (spec §6 "max"). Finishes without emitting if parent
// emitted nothing.
func Max[T any, N ordered](parent *Source[T], value func(T) N) *Source[N] {
	return extremum(parent, "max", value, func(cur, v N) bool { return v > cur })
}

func extremum[T any, N ordered](parent *Source[T], label string, value func(T) N, better func(cur, v N) bool) *Source[N] {
	child := chain[T, N](parent, label)
	var best N
	seen := false
	eachWhileSource(parent, child, func(v T) {
		n := value(v)
		if !seen || better(best, n) {
			best = n
			seen = true
		}
	})
	onParentDone(parent, child, func() {
		if seen {
			emit(child, best)
		}
		child.Finish()
	})
	forwardCompletion(parent, child)
	return child
}

// Statistics is the result of the Statistics aggregate operator (spec §6
// "statistics"): count, sum, mean, min, and max of the stream in one pass.
type Statistics struct {
	Count int
	Sum   float64
	Mean  float64
	Min   float64
	Max   float64
}

// StatisticsBy builds a child that emits one Statistics value summarizing
// every numeric value() of the items parent emitted, once parent completes
// Done.
func StatisticsBy[T any, N numeric](parent *Source[T], value func(T) N) *Source[Statistics] {
	child := chain[T, Statistics](parent, "statistics")
	var sum float64
	count := 0
	min := math.Inf(1)
	max := math.Inf(-1)

	eachWhileSource(parent, child, func(v T) {
		f := float64(value(v))
		sum += f
		count++
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	})

	onParentDone(parent, child, func() {
		if count == 0 {
			child.Finish()
			return
		}
		emitThenFinish(child, Statistics{
			Count: count,
			Sum:   sum,
			Mean:  sum / float64(count),
			Min:   min,
			Max:   max,
		})
	})
	forwardCompletion(parent, child)
	return child
}

// numeric is the subset of ordered that converts to float64, as Mean and
// StatisticsBy require.
type numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// onParentDone registers fn to run exactly when parent completes Done and
// child isn't already ready (e.g. via a mid-stream Failed forwarded early).
func onParentDone[T, U any](parent *Source[T], child *Source[U], fn func()) {
	parent.Completed().OnReady(func(h *Handle[struct{}]) {
		if child.IsReady() || h.State() != Done {
			return
		}
		fn()
	})
}

func emit[U any](child *Source[U], v U) {
	_ = child.Emit(v)
}

func emitThenFinish[U any](child *Source[U], v U) {
	if err := child.Emit(v); err != nil {
		return
	}
	child.Finish()
}
