package sched

// Outcome reports the completion of one send so that stateful policies can
// update their models. Ticks are simulation microseconds; the transport
// layer guarantees outcomes are reported before the next scheduling call
// for the same connection.
type Outcome struct {
	Path        PathID
	SentAt      int64 // tick the data was handed to the path
	CompletedAt int64 // tick the outcome was observed
	Bytes       int64
}

// FeedbackSink receives post-send outcomes. The Engine implements it and
// forwards to the active policy when that policy learns from feedback.
type FeedbackSink interface {
	ReportOutcome(o Outcome)
}

// outcomeObserver is implemented by policies that update internal state
// from send outcomes (the Peekaboo bandit). Stateless policies and the
// hysteresis-only policies ignore feedback entirely.
type outcomeObserver interface {
	observeOutcome(o Outcome, paths []PathSnapshot)
}
