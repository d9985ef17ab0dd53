package ryu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_EmitDeliversInOrder(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2, 3})

	var got []int
	root.Each(func(v int) { got = append(got, v) })

	require.NoError(t, root.Await(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.True(t, root.IsDone())
}

func TestSource_EmitFailsAfterCompletion(t *testing.T) {
	e := New()
	root := newSource[int](e, "manual")
	var got []int
	root.Each(func(v int) { got = append(got, v) })

	root.Finish()
	assert.ErrorIs(t, root.Emit(99), ErrAlreadyCompleted)
	assert.Empty(t, got)
}

func TestSource_ChainCleansUpOnChildCompletion(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1, 2, 3, 4})
	doubled := Map(root, func(v int) int { return v * 2 })

	_, err := doubled.Get(context.Background())
	require.NoError(t, err)

	root.mu.Lock()
	nChildren := len(root.children)
	nCallbacks := len(root.onItem)
	root.mu.Unlock()

	assert.Zero(t, nChildren, "root should have retired the map edge once it completed")
	assert.Zero(t, nCallbacks, "root's item-callbacks are cleared once root itself completes")
}

func TestSource_ParentCancelsWhenLastChildCompletesEarly(t *testing.T) {
	e := New()
	root := Never[int](e)
	child := chain[int, int](root, "probe")
	eachWhileSource(root, child, func(v int) {})

	child.Cancel()

	assert.True(t, root.IsCancelled(), "root with no remaining children and not itself ready should auto-cancel")
}

func TestSource_FailurePropagatesToChild(t *testing.T) {
	e := New()
	wantErr := errors.New("upstream exploded")
	root := newSource[int](e, "manual")
	child := Map(root, func(v int) int { return v })

	root.Fail(wantErr)

	assert.True(t, child.IsFailed())
	f, ok := child.Failure()
	require.True(t, ok)
	assert.ErrorIs(t, f.Err, wantErr)
}

func TestSource_Describe(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1})
	mapped := Map(root, func(v int) int { return v })

	assert.Equal(t, "from_slice(pending)", root.Describe())
	assert.Equal(t, "from_slice(pending)=>map(pending)", mapped.Describe())

	_, _ = mapped.Get(context.Background())
	assert.Equal(t, "from_slice(done)=>map(done)", mapped.Describe())
}

func TestSource_CallbackPanicFailsChain(t *testing.T) {
	e := New()
	root := FromSlice(e, []int{1})
	root.Each(func(v int) { panic("kaboom") })

	err := root.Await(context.Background())
	require.Error(t, err)

	var ce CallbackError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "exception in on_item callback", ce.Site())
	assert.Equal(t, "from_slice(pending)", ce.Describe())
}
