// Package sched implements path scheduling for multipath transport: given
// per-path telemetry snapshots it decides, before each send, how to spread
// the next chunk of data across the available paths.
//
// The Engine (engine.go) is the entry point. It pulls snapshots from a
// PathTelemetryProvider, handles the degenerate path counts, and dispatches
// to one of six policies (policy.go):
//
//   - round-robin: cycle through paths, ignoring telemetry
//   - min-rtt: all weight on the lower-RTT path while it has window
//   - blest: min-rtt with head-of-line blocking estimation (blest.go)
//   - ecf: completion-time comparison with waiting hysteresis (ecf.go)
//   - peekaboo: LinUCB contextual bandit over path features (peekaboo.go)
//   - priority-load: softmax blend steered by the application's priority
//     hint (priorityload.go)
//
// Policies are stateful where their algorithm demands it (round-robin
// cursor, BLEST penalty accumulator, ECF waiting flag, bandit models) and
// hold nothing else. Completed-send feedback reaches learning policies
// through the Engine's FeedbackSink side (feedback.go).
package sched
