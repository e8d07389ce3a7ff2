// Package sim provides a discrete-event harness for multipath transfer
// scheduling experiments.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: Event types that drive the simulation (TaskArrival, Ack, PathSample)
//   - simulator.go: The event loop and scenario wiring
//   - sender.go: The connection: send queue, pump loop, and scheduler feedback
//
// # Architecture
//
// A Simulator owns one Connection; the Connection owns its NetPaths and a
// sched.Engine. The Connection implements sched.PathTelemetryProvider, so
// every scheduling decision is made against fresh per-path telemetry
// (netpath.go). Workload generation (workload.go) is deterministic under
// PartitionedRNG (rng.go): task arrivals, sizes, and priorities each draw
// from isolated subsystem streams.
//
// Time is int64 microsecond ticks throughout.
package sim
