package ryu

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	e := New()
	out, err := From(e, []any{1, 2, 3})
	require.NoError(t, err)
	got, err := out.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)
}

func TestFromReader(t *testing.T) {
	e := New()
	out, err := From(e, strings.NewReader("hi"))
	require.NoError(t, err)
	got, err := out.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hi", string(got[0].([]byte)))
}

func TestFromHandleDone(t *testing.T) {
	e := New()
	h := NewHandle[int]()
	h.Done(42)

	out, err := From(e, h)
	require.NoError(t, err)
	got, err := out.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{42}, got)
}

func TestFromHandleFailed(t *testing.T) {
	e := New()
	h := NewHandle[string]()
	wantErr := assertError("future failed")
	h.Fail(wantErr)

	out, err := From(e, h)
	require.NoError(t, err)
	_, getErr := out.Get(context.Background())
	assert.ErrorIs(t, getErr, wantErr)
}

func TestFromUnsupported(t *testing.T) {
	e := New()
	_, err := From(e, 123)
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestWithCompletionFactory(t *testing.T) {
	var built int
	e := New(WithCompletionFactory(func() *Handle[struct{}] {
		built++
		return NewHandle[struct{}]()
	}))

	FromSlice(e, []int{1})
	FromSlice(e, []int{2})
	assert.Equal(t, 2, built, "the custom factory must back every source's completion handle")
}
