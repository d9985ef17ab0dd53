package ryu

import (
	"context"
	"sync"
)

// readerTeardown coordinates shutting down a reader-backed root's background
// pump goroutine: cancel its context, then wait for it to actually exit,
// exactly once, regardless of whether the pump stopped itself (EOF/error) or
// was stopped externally (the source was cancelled while reading).
type readerTeardown struct {
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	once   sync.Once
}

func newReaderTeardown(cancel context.CancelFunc, wg *sync.WaitGroup) *readerTeardown {
	return &readerTeardown{cancel: cancel, wg: wg}
}

// Close cancels the pump's context and waits for it to exit. Safe to call
// more than once or concurrently; the sequence runs exactly once.
func (t *readerTeardown) Close() {
	t.once.Do(func() {
		t.cancel()
		t.wg.Wait()
	})
}
