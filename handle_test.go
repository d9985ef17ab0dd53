package ryu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_DoneIsSingleAssignment(t *testing.T) {
	h := NewHandle[int]()
	h.Done(1)
	h.Done(2) // second settle is a no-op
	h.Fail(errors.New("too late"))

	v, ok := h.Value()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, h.IsDone())
	assert.False(t, h.IsFailed())
}

func TestHandle_OnReadyFiresImmediatelyWhenAlreadyTerminal(t *testing.T) {
	h := NewHandle[string]()
	h.Done("x")

	called := false
	h.OnReady(func(h *Handle[string]) { called = true })
	assert.True(t, called)
}

func TestHandle_OnReadyQueuesUntilSettled(t *testing.T) {
	h := NewHandle[int]()
	var seen int
	h.OnReady(func(h *Handle[int]) {
		v, _ := h.Value()
		seen = v
	})
	assert.Equal(t, 0, seen)
	h.Done(42)
	assert.Equal(t, 42, seen)
}

func TestHandle_Await(t *testing.T) {
	h := NewHandle[int]()
	go func() {
		time.Sleep(time.Millisecond)
		h.Done(7)
	}()

	v, err := h.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestHandle_AwaitContextCancelled(t *testing.T) {
	h := NewHandle[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandle_AwaitFailurePropagates(t *testing.T) {
	wantErr := errors.New("boom")
	h := NewHandle[int]()
	h.Fail(wantErr)

	_, err := h.Await(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestTransform(t *testing.T) {
	h := NewHandle[int]()
	out := Transform(h, func(v int) string { return "<" + string(rune('0'+v)) + ">" })
	h.Done(3)

	v, ok := out.Value()
	require.True(t, ok)
	assert.Equal(t, "<3>", v)
}
