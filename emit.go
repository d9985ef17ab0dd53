package ryu

import (
	"time"

	"github.com/aminmarashi/ryu/metrics"
)

// Emit delivers v to every currently-registered item-callback, in
// registration order, then records the emission in the engine's metrics
// (spec §4.B). Emit is synchronous and single-threaded: a callback that
// chains further operators or calls Each runs to completion, including any
// downstream Emit it triggers, before this call returns.
//
// If the source is already ready (Done/Failed/Cancelled), Emit fails with
// ErrAlreadyCompleted and delivers to no callback (spec §3/§7(b)).
//
// If a callback panics, Emit converts the panic into a CallbackError, logs a
// warning, fails this source's completion with it, and returns the error
// without invoking any remaining callbacks for this call.
func (s *Source[T]) Emit(v T) error {
	if s.completed.IsReady() {
		return ErrAlreadyCompleted
	}

	hist := s.metricsProvider().Histogram(metricOperatorWallMS, metrics.WithUnit("seconds"))
	for _, cb := range s.snapshotCallbacks() {
		start := time.Now()
		err := invoke(s.Describe(), cb.fn, v)
		hist.Record(time.Since(start).Seconds())
		if err != nil {
			s.logger().Warn("ryu: item callback failed", "source", s.label, "error", err)
			s.Fail(err)
			return err
		}
	}

	s.metricsProvider().Counter(metricItemsEmitted, metrics.WithUnit("1")).Add(1)
	return nil
}
