package sched

import "math"

// defaultPriority is the neutral hint used when the application never set one.
const defaultPriority = 0.5

// PriorityHint holds the application's per-granule urgency scalar. The hint
// is attached to data at enqueue time, not to a path, so it survives
// arbitrary path reassignment. Pure state, no side effects.
type PriorityHint struct {
	value float64
	set   bool
}

// Set clamps v to [0,1] and replaces any previous value. NaN resolves to
// the neutral 0.5.
func (p *PriorityHint) Set(v float64) {
	if math.IsNaN(v) {
		v = defaultPriority
	}
	p.value = math.Min(1.0, math.Max(0.0, v))
	p.set = true
}

// Get returns the last set value, defaulting to 0.5 if never set.
func (p *PriorityHint) Get() float64 {
	if !p.set {
		return defaultPriority
	}
	return p.value
}
