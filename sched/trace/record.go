// Package trace provides decision-trace recording for scheduler analysis.
// This package has no dependencies on sim/ — it stores pure data types
// suitable for offline analysis of experiment results.
package trace

// PathStat captures one path's telemetry at a decision or sampling point.
type PathStat struct {
	Path            int
	RTTMs           float64
	CWnd            int64
	BytesInFlight   int64
	AvailableWindow int64
}

// DecisionRecord captures a single scheduling decision: which weights the
// policy produced for which telemetry, and under which priority hint.
type DecisionRecord struct {
	Tick    int64 // simulation time, microseconds
	Policy  string
	Hint    float64
	Chosen  int // index carrying the largest weight
	Weights []float64
	Paths   []PathStat
}

// OutcomeRecord captures a completed send as reported to the feedback sink.
type OutcomeRecord struct {
	Tick      int64
	Path      int
	Bytes     int64
	ElapsedMs float64
}

// SampleRecord captures one path's telemetry from the periodic passive
// sampler, independent of any scheduling decision.
type SampleRecord struct {
	Tick int64
	Stat PathStat
}
