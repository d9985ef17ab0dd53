package ryu

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	e := New()
	a := newSource[int](e, "a")
	b := newSource[int](e, "b")
	out := Merge(a, b)

	var got []int
	out.Each(func(v int) { got = append(got, v) })

	_ = a.Emit(1)
	_ = b.Emit(2)
	_ = a.Emit(3)
	a.Finish()
	b.Finish()

	assert.ElementsMatch(t, []int{1, 2, 3}, got)
	assert.True(t, out.IsDone())
}

func TestMergeJoinsFailures(t *testing.T) {
	e := New()
	a := newSource[int](e, "a")
	b := newSource[int](e, "b")
	out := Merge(a, b)

	errA := errors.New("a failed")
	errB := errors.New("b failed")
	a.Fail(errA)
	b.Fail(errB)

	require.True(t, out.IsFailed())
	f, _ := out.Failure()
	assert.ErrorIs(t, f.Err, errA)
	assert.ErrorIs(t, f.Err, errB)
}

func TestWithLatestFrom(t *testing.T) {
	e := New()
	main := newSource[int](e, "main")
	other := newSource[string](e, "other")
	out := WithLatestFrom(main, other)

	var got []Combined2[int, string]
	out.Each(func(v Combined2[int, string]) { got = append(got, v) })

	_ = main.Emit(1) // other hasn't emitted yet: dropped
	_ = other.Emit("x")
	_ = main.Emit(2) // paired with "x"
	_ = other.Emit("y")
	_ = main.Emit(3) // paired with "y"
	main.Finish()

	require.Len(t, got, 2)
	assert.Equal(t, Combined2[int, string]{A: 2, B: "x"}, got[0])
	assert.Equal(t, Combined2[int, string]{A: 3, B: "y"}, got[1])
	assert.True(t, out.IsDone())
}

func TestApply(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2, 3})

	var sideRan bool
	out := Apply(root, func(p *Source[int]) *Source[int] {
		side := Count(p)
		side.Each(func(int) { sideRan = true })
		return side
	})

	got := collect(t, out)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.True(t, sideRan)
	assert.True(t, out.IsDone())
}

func TestEachAsSource(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2})

	var spawned []int
	out := EachAsSource(root, func(v int) *Source[int] {
		s := newSource[int](e, "spawned")
		spawned = append(spawned, v)
		s.Finish()
		return s
	})

	got := collect(t, out)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{1, 2}, spawned)
	assert.True(t, out.IsDone())
}

func TestSum(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2, 3})
	out := Sum(root, func(v int) int { return v })
	assert.Equal(t, []int{6}, collect(t, out))
}

func TestMean(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{2, 4, 6})
	out := Mean(root, func(v int) int { return v })
	assert.Equal(t, []float64{4}, collect(t, out))
}

func TestMeanEmptyEmitsZero(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{})
	out := Mean(root, func(v int) int { return v })
	assert.Equal(t, []float64{0}, collect(t, out))
	assert.True(t, out.IsDone())
}

func TestMinMax(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{5, 1, 9, 3})
	assert.Equal(t, []int{1}, collect(t, Min(root, func(v int) int { return v })))

	root2 := FromSlice(e, []int{5, 1, 9, 3})
	assert.Equal(t, []int{9}, collect(t, Max(root2, func(v int) int { return v })))
}

func TestStatisticsBy(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2, 3, 4})
	out := StatisticsBy(root, func(v int) int { return v })
	got := collect(t, out)
	require.Len(t, got, 1)
	assert.Equal(t, Statistics{Count: 4, Sum: 10, Mean: 2.5, Min: 1, Max: 4}, got[0])
}

func TestOrderedFuturesResolvesAfterParentCompletes(t *testing.T) {
	e := New()
	root := newSource[int](e, "manual")

	var pending *Handle[int]
	out := OrderedFutures(root, func(v int) *Handle[int] {
		pending = NewHandle[int]()
		return pending
	})

	var got []int
	out.Each(func(v int) { got = append(got, v) })

	_ = root.Emit(1)
	root.Finish() // parent completes while the one future is still outstanding

	assert.False(t, out.IsReady(), "child must not finish while a queued future is still outstanding")
	assert.Empty(t, got)

	pending.Done(10) // resolves after parent already completed

	assert.Equal(t, []int{10}, got)
	assert.True(t, out.IsDone())
}

func TestSome(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 3, 4, 5})
	out := Some(root, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []bool{true}, collect(t, out))
}

func TestSomeNeverMatches(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 3, 5})
	out := Some(root, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []bool{false}, collect(t, out))
}

func TestEvery(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{2, 4, 6})
	out := Every(root, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []bool{true}, collect(t, out))
}

func TestEveryShortCircuits(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{2, 3, 4})
	out := Every(root, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []bool{false}, collect(t, out))
}

func TestSkip(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2, 3, 4, 5})
	out := Skip(root, 2)
	assert.Equal(t, []int{3, 4, 5}, collect(t, out))
}

func TestSkipLast(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2, 3, 4, 5})
	out := SkipLast(root, 2)
	assert.Equal(t, []int{1, 2, 3}, collect(t, out))
}

func TestPrefixSuffixChomp(t *testing.T) {
	e := New()
	root := FromSlice(e, []string{"a", "b"})
	assert.Equal(t, []string{">a", ">b"}, collect(t, Prefix(root, ">")))

	root2 := FromSlice(e, []string{"a", "b"})
	assert.Equal(t, []string{"a!", "b!"}, collect(t, Suffix(root2, "!")))

	root3 := FromSlice(e, []string{"line\n", "bare"})
	assert.Equal(t, []string{"line", "bare"}, collect(t, Chomp(root3)))
}

func TestSplit(t *testing.T) {
	e := New()
	root := FromSlice(e, []string{"a,b,c"})
	out := Split(root, ",")
	assert.Equal(t, []string{"a", "b", "c"}, collect(t, out))
}

func TestFlatMap(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2})
	out := FlatMap(root, func(v int) []int { return []int{v, v * 10} })
	assert.Equal(t, []int{1, 10, 2, 20}, collect(t, out))
}

func TestSwitchStr(t *testing.T) {
	e := New()
	root := FromSlice(e, []string{"a", "b", "z"})
	out := SwitchStr(root,
		func(s string) string { return s },
		map[string]func(string) string{
			"a": func(string) string { return "A" },
			"b": func(string) string { return "B" },
		},
		func(s string) string { return "?" },
	)
	assert.Equal(t, []string{"A", "B", "?"}, collect(t, out))
}

func TestSwitchStrDropsUnmatchedWithoutDefault(t *testing.T) {
	e := New()
	root := FromSlice(e, []string{"a", "z"})
	out := SwitchStr(root,
		func(s string) string { return s },
		map[string]func(string) string{"a": func(string) string { return "A" }},
		nil,
	)
	assert.Equal(t, []string{"A"}, collect(t, out))
}

func TestExtractAll(t *testing.T) {
	e := New()
	re := regexp.MustCompile(`(?P<word>\w+)=(?P<val>\d+)`)
	root := FromSlice(e, []string{"x=1 y=2"})
	out := ExtractAll(root, re)
	got := collect(t, out)
	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{"word": "x", "val": "1"}, got[0])
	assert.Equal(t, map[string]string{"word": "y", "val": "2"}, got[1])
}

func TestEmptyNeverThrow(t *testing.T) {
	e := New()
	assert.True(t, Empty[int](e).IsDone())
	assert.False(t, Never[int](e).Completed().IsReady())

	boom := errors.New("boom")
	th := Throw[int](e, boom)
	require.True(t, th.IsFailed())
	f, _ := th.Failure()
	assert.ErrorIs(t, f.Err, boom)
}

func TestThenElse(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1})

	var doneRan bool
	Then(root, func() { doneRan = true }, func(error) { t.Fatal("should not fail") })
	_, err := root.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, doneRan)

	failRoot := newSource[int](e, "manual")
	var gotErr error
	Else(failRoot, func(err error) { gotErr = err })
	wantErr := errors.New("oops")
	failRoot.Fail(wantErr)
	assert.ErrorIs(t, gotErr, wantErr)
}
